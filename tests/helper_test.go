package tests_test

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/elisiondan/kiwi/clients"
	"github.com/elisiondan/kiwi/entity"
	"github.com/elisiondan/kiwi/fakeapi"
	"github.com/elisiondan/kiwi/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// startFakeAPI runs the fake flight and booking APIs on cfg.Addr and blocks
// until the server answers health checks. Shutdown happens in test cleanup
// and must finish cleanly.
func startFakeAPI(t *testing.T, cfg fakeapi.Config) (*fakeapi.Server, string) {
	t.Helper()

	server := fakeapi.NewServer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	baseURL := "http://" + cfg.Addr
	waitForHttpServer(t, baseURL)

	return server, baseURL
}

func waitForHttpServer(t *testing.T, baseURL string) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get(baseURL + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

func newBookingService(t *testing.T, baseURL string, out io.Writer) *service.Service {
	t.Helper()

	c, err := clients.New(baseURL, baseURL)
	require.NoError(t, err)

	svc, err := service.New(service.Deps{
		Flights:    clients.NewFlightsClient(c),
		Booking:    clients.NewBookingClient(c),
		Passengers: entity.DefaultPassengers(),
		Out:        out,
	})
	require.NoError(t, err)

	return svc
}

func componentFlights() []entity.Flight {
	return []entity.Flight{
		{
			ID:           "cheap-slow",
			FlyFrom:      "PRG",
			FlyTo:        "LON",
			CityFrom:     "Prague",
			CityTo:       "London",
			Price:        100,
			DTimeUTC:     1630487700,
			ATimeUTC:     1630494300,
			BookingToken: "token-cheap",
		},
		{
			ID:           "fast-pricey",
			FlyFrom:      "PRG",
			FlyTo:        "LON",
			CityFrom:     "Prague",
			CityTo:       "London",
			Price:        145,
			DTimeUTC:     1630481400,
			ATimeUTC:     1630486500,
			BookingToken: "token-fast",
		},
	}
}

func assertBookingRecorded(t *testing.T, server *fakeapi.Server, bookingToken string) {
	t.Helper()

	var booking entity.BookingRequest
	var ok bool
	for _, b := range server.Bookings() {
		if b.BookingToken != bookingToken {
			continue
		}
		booking = b
		ok = true
		break
	}
	require.Truef(t, ok, "booking for token %s not found", bookingToken)

	assert.Equal(t, "EUR", booking.Currency)
	assert.Equal(t, entity.DefaultPassengers(), booking.Passengers)
}
