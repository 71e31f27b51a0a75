package tests_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/elisiondan/kiwi/clients"
	"github.com/elisiondan/kiwi/entity"
	"github.com/elisiondan/kiwi/fakeapi"
	"github.com/elisiondan/kiwi/log"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchOptions() entity.SearchOptions {
	return entity.SearchOptions{
		DepartureDate: time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
		FlyFrom:       "PRG",
		FlyTo:         "LON",
		Trip:          entity.TripOneWay,
		Sort:          entity.SortByPrice,
	}
}

func TestComponent(t *testing.T) {
	server, baseURL := startFakeAPI(t, fakeapi.Config{
		Addr:    getEnvOrDefault("FAKE_API_ADDR", "localhost:18081"),
		Flights: componentFlights(),
		NewPNR:  func() string { return "ABC123" },
	})

	t.Run("books the cheapest flight", func(t *testing.T) {
		var out bytes.Buffer
		svc := newBookingService(t, baseURL, &out)

		ctx := log.ContextWithCorrelationID(context.Background(), shortuuid.New())
		require.NoError(t, svc.Run(ctx, searchOptions()))

		assert.Equal(t,
			"EUR\n"+
				"Flight successfully booked\n"+
				"Price: 100 EUR\n"+
				"Departure: Prague\n"+
				"Arrival: London\n"+
				"Your booking number is ABC123\n",
			out.String(),
		)
		assertBookingRecorded(t, server, "token-cheap")
	})

	t.Run("books the fastest flight", func(t *testing.T) {
		var out bytes.Buffer
		svc := newBookingService(t, baseURL, &out)

		opts := searchOptions()
		opts.Sort = entity.SortByDuration

		require.NoError(t, svc.Run(context.Background(), opts))

		assert.Contains(t, out.String(), "Flight successfully booked")
		assert.Contains(t, out.String(), "Price: 145 EUR")
		assertBookingRecorded(t, server, "token-fast")
	})
}

func TestComponent_BookingNotConfirmed(t *testing.T) {
	_, baseURL := startFakeAPI(t, fakeapi.Config{
		Addr:          getEnvOrDefault("FAKE_API_PENDING_ADDR", "localhost:18082"),
		Flights:       componentFlights(),
		AlwaysPending: true,
	})

	var out bytes.Buffer
	svc := newBookingService(t, baseURL, &out)

	require.NoError(t, svc.Run(context.Background(), searchOptions()))

	assert.Equal(t, "Could not book the flight\n", out.String())
}

func TestComponent_SearchUnavailable(t *testing.T) {
	server, baseURL := startFakeAPI(t, fakeapi.Config{
		Addr:         getEnvOrDefault("FAKE_API_DOWN_ADDR", "localhost:18083"),
		Flights:      componentFlights(),
		SearchStatus: http.StatusInternalServerError,
	})

	var out bytes.Buffer
	svc := newBookingService(t, baseURL, &out)

	err := svc.Run(context.Background(), searchOptions())
	require.Error(t, err)

	var statusErr *clients.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "500")

	assert.Empty(t, out.String())
	assert.Empty(t, server.Bookings())
}
