package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/elisiondan/kiwi/fakeapi"
	"github.com/elisiondan/kiwi/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	log.Init(logrus.InfoLevel)

	addr := pflag.String("addr", ":8080", "listen address")
	pflag.Parse()

	if err := run(*addr); err != nil {
		logrus.WithError(err).Error("failed to run")
		os.Exit(1)
	}
}

func run(addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	server := fakeapi.NewServer(fakeapi.Config{
		Addr:    addr,
		Flights: fakeapi.SeedFlights(),
	})

	return server.Run(ctx)
}
