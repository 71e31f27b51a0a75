package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/elisiondan/kiwi/entity"
)

const searchDateFormat = "02/01/2006"

type FlightsClient struct {
	clients *Clients
}

func NewFlightsClient(c *Clients) FlightsClient {
	return FlightsClient{
		clients: c,
	}
}

// SearchValues maps resolved search options onto the query parameters the
// flights API expects. The search window is the departure day itself; round
// trips pin the stay to exactly the requested number of nights.
func SearchValues(opts entity.SearchOptions) url.Values {
	date := opts.DepartureDate.Format(searchDateFormat)

	values := url.Values{}
	values.Set("v", "3")
	values.Set("dateFrom", date)
	values.Set("dateTo", date)
	values.Set("flyFrom", opts.FlyFrom)
	values.Set("to", opts.FlyTo)
	values.Set("typeFlight", string(opts.Trip))
	values.Set("adults", "1")
	values.Set("limit", "1")
	values.Set("sort", string(opts.Sort))

	if opts.Trip == entity.TripRound {
		nights := strconv.Itoa(opts.Nights)
		values.Set("daysInDestinationFrom", nights)
		values.Set("daysInDestinationTo", nights)
	}

	return values
}

func (c FlightsClient) Search(ctx context.Context, opts entity.SearchOptions) (entity.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/flights?%s", c.clients.searchURL, SearchValues(opts).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.SearchResult{}, fmt.Errorf("creating search request: %w", err)
	}

	resp, err := c.clients.do(req)
	if err != nil {
		return entity.SearchResult{}, fmt.Errorf("sending search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.SearchResult{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var result entity.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return entity.SearchResult{}, fmt.Errorf("decoding search response: %w", err)
	}

	return result, nil
}
