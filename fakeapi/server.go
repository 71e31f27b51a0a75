package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/elisiondan/kiwi/entity"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Config controls the fake. The zero value of SearchStatus and AlwaysPending
// gives the well-behaved server; tests flip them to rehearse failures.
type Config struct {
	Addr     string
	Currency string
	Flights  []entity.Flight

	// NewPNR mints booking references. Defaults to a random six-character
	// code; tests pin it for deterministic output.
	NewPNR func() string

	// SearchStatus forces the flights endpoint to answer with the given
	// status code. Zero disables the override.
	SearchStatus int

	// AlwaysPending makes every booking come back unconfirmed.
	AlwaysPending bool
}

// Server emulates the two remote collaborators: the flight-search API and
// the booking API. State is in memory and lives for the process only.
type Server struct {
	cfg    Config
	echo   *echo.Echo
	tokens map[string]entity.Flight

	lock     sync.Mutex
	bookings []entity.BookingRequest
}

func NewServer(cfg Config) *Server {
	if cfg.Currency == "" {
		cfg.Currency = "EUR"
	}
	if cfg.NewPNR == nil {
		cfg.NewPNR = newPNR
	}

	s := &Server{
		cfg:    cfg,
		tokens: make(map[string]entity.Flight, len(cfg.Flights)),
	}
	for _, f := range cfg.Flights {
		s.tokens[f.BookingToken] = f
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(correlationIDMiddleware, loggerMiddleware)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/flights", s.handleSearch)
	e.POST("/booking", s.handleBooking)

	s.echo = e

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Bookings returns a copy of every booking request received so far.
func (s *Server) Bookings() []entity.BookingRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	bookings := make([]entity.BookingRequest, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

func (s *Server) record(booking entity.BookingRequest) {
	s.lock.Lock()
	s.bookings = append(s.bookings, booking)
	s.lock.Unlock()
}

func (s *Server) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("Starting fake API server on %s...", s.cfg.Addr)
		err := s.echo.Start(s.cfg.Addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logrus.Info("Shutting down fake API server...")
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}

	return nil
}

func newPNR() string {
	return strings.ToUpper(shortuuid.New()[:6])
}
