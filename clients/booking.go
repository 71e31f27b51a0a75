package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elisiondan/kiwi/entity"
)

type BookingClient struct {
	clients *Clients
}

func NewBookingClient(c *Clients) BookingClient {
	return BookingClient{
		clients: c,
	}
}

func (c BookingClient) Book(ctx context.Context, booking entity.BookingRequest) (entity.Booking, error) {
	if len(booking.Passengers) == 0 {
		return entity.Booking{}, errors.New("booking request needs at least one passenger")
	}

	body, err := json.Marshal(booking)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("encoding booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.clients.bookingURL+"/booking", bytes.NewReader(body))
	if err != nil {
		return entity.Booking{}, fmt.Errorf("creating booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.clients.do(req)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("sending booking request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Booking{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var b entity.Booking
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return entity.Booking{}, fmt.Errorf("decoding booking response: %w", err)
	}

	if b.Status == "" {
		return entity.Booking{}, errors.New("booking response missing status")
	}
	if b.Status == entity.StatusConfirmed && b.PNR == "" {
		return entity.Booking{}, errors.New("booking response missing pnr")
	}

	return b, nil
}
