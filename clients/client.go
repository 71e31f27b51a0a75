package clients

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/elisiondan/kiwi/log"
	"github.com/lithammer/shortuuid/v3"
)

// Clients holds the plumbing shared by the flights and booking clients: one
// HTTP client and the two base addresses. No timeout is configured; both
// calls block until the remote side answers.
type Clients struct {
	httpClient *http.Client
	searchURL  string
	bookingURL string
}

func New(searchURL, bookingURL string) (*Clients, error) {
	if searchURL == "" {
		return nil, errors.New("search API address is empty")
	}
	if bookingURL == "" {
		return nil, errors.New("booking API address is empty")
	}

	return &Clients{
		httpClient: &http.Client{},
		searchURL:  strings.TrimSuffix(searchURL, "/"),
		bookingURL: strings.TrimSuffix(bookingURL, "/"),
	}, nil
}

func (c *Clients) do(req *http.Request) (*http.Response, error) {
	correlationID := log.CorrelationIDFromContext(req.Context())
	if correlationID == "" {
		correlationID = "gen_" + shortuuid.New()
	}
	req.Header.Set("Correlation-ID", correlationID)

	return c.httpClient.Do(req)
}

// StatusError reports a response code outside the success range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}
