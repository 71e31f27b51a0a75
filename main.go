package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/elisiondan/kiwi/cli"
	"github.com/elisiondan/kiwi/clients"
	"github.com/elisiondan/kiwi/entity"
	"github.com/elisiondan/kiwi/log"
	"github.com/elisiondan/kiwi/service"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logrus.InfoLevel)

	cfg, shouldExit, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if shouldExit {
		return
	}

	if cfg.Verbose {
		log.Init(logrus.DebugLevel)
	}

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("failed to run")
		os.Exit(1)
	}
}

func run(cfg *cli.Config) error {
	c, err := clients.New(
		getEnvOrDefault("SKYPICKER_URL", "https://api.skypicker.com"),
		getEnvOrDefault("BOOKING_URL", "http://128.199.48.38:8080"),
	)
	if err != nil {
		return fmt.Errorf("creating api clients: %w", err)
	}

	passengers := entity.DefaultPassengers()
	if cfg.PassengersFile != "" {
		passengers, err = cli.LoadPassengers(cfg.PassengersFile)
		if err != nil {
			return fmt.Errorf("loading passengers: %w", err)
		}
	}

	svc, err := service.New(service.Deps{
		Flights:    clients.NewFlightsClient(c),
		Booking:    clients.NewBookingClient(c),
		Passengers: passengers,
		Out:        os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ctx = log.ContextWithCorrelationID(ctx, shortuuid.New())

	return svc.Run(ctx, cfg.Options)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}
