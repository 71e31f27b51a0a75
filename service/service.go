package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/elisiondan/kiwi/entity"
	"github.com/elisiondan/kiwi/log"
)

// ErrNoFlights is returned when the search succeeds but carries an empty
// result set; there is nothing to book.
var ErrNoFlights = errors.New("search returned no flights")

type FlightSearcher interface {
	Search(ctx context.Context, opts entity.SearchOptions) (entity.SearchResult, error)
}

type FlightBooker interface {
	Book(ctx context.Context, booking entity.BookingRequest) (entity.Booking, error)
}

type Deps struct {
	Flights    FlightSearcher
	Booking    FlightBooker
	Passengers []entity.Passenger
	Out        io.Writer
}

type Service struct {
	flights    FlightSearcher
	booking    FlightBooker
	passengers []entity.Passenger
	out        io.Writer
}

func New(deps Deps) (*Service, error) {
	if deps.Flights == nil {
		return nil, errors.New("flight searcher is required")
	}
	if deps.Booking == nil {
		return nil, errors.New("flight booker is required")
	}
	if len(deps.Passengers) == 0 {
		return nil, errors.New("at least one passenger is required")
	}
	if deps.Out == nil {
		return nil, errors.New("output writer is required")
	}

	return &Service{
		flights:    deps.Flights,
		booking:    deps.Booking,
		passengers: deps.Passengers,
		out:        deps.Out,
	}, nil
}

// Run executes one search-and-book pass: search, take the first result, book
// it, report the outcome.
func (s *Service) Run(ctx context.Context, opts entity.SearchOptions) error {
	logger := log.FromContext(ctx)

	logger.Infof("Searching %s flights %s -> %s", opts.Trip, opts.FlyFrom, opts.FlyTo)
	result, err := s.flights.Search(ctx, opts)
	if err != nil {
		return fmt.Errorf("searching flights: %w", err)
	}
	if len(result.Data) == 0 {
		return ErrNoFlights
	}

	flight := result.Data[0]
	logger.Infof("Booking flight %s -> %s", flight.CityFrom, flight.CityTo)
	booking, err := s.booking.Book(ctx, entity.BookingRequest{
		Currency:     result.Currency,
		Passengers:   s.passengers,
		Bags:         opts.Bags,
		BookingToken: flight.BookingToken,
	})
	if err != nil {
		return fmt.Errorf("booking flight: %w", err)
	}

	s.report(result.Currency, flight, booking)

	return nil
}

func (s *Service) report(currency string, flight entity.Flight, booking entity.Booking) {
	if booking.Status != entity.StatusConfirmed {
		fmt.Fprintln(s.out, "Could not book the flight")
		return
	}

	fmt.Fprintln(s.out, currency)
	fmt.Fprintln(s.out, "Flight successfully booked")
	fmt.Fprintf(s.out, "Price: %v %s\n", flight.Price, currency)
	fmt.Fprintf(s.out, "Departure: %s\n", flight.CityFrom)
	fmt.Fprintf(s.out, "Arrival: %s\n", flight.CityTo)
	fmt.Fprintf(s.out, "Your booking number is %s\n", booking.PNR)
}
