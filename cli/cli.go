package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/elisiondan/kiwi/entity"
	"github.com/spf13/pflag"
)

const dateFormat = "2006-01-02"

// ExitError carries the process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config is the resolved command line for one run.
type Config struct {
	Options        entity.SearchOptions
	PassengersFile string
	Verbose        bool
}

type rawFlags struct {
	date           string
	flyFrom        string
	flyTo          string
	oneWay         bool
	nights         int
	cheapest       bool
	fastest        bool
	bags           int
	passengersFile string
	verbose        bool
}

func (f *rawFlags) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "departure date in yyyy-mm-dd format (required)")
	fs.StringVar(&f.flyFrom, "from", "", "IATA code of the departure airport (required)")
	fs.StringVar(&f.flyTo, "to", "", "IATA code of the arrival airport (required)")
	fs.BoolVar(&f.oneWay, "one-way", false, "book a one-way flight (default)")
	fs.IntVar(&f.nights, "return", 0, "book a return flight staying the given number of nights")
	fs.BoolVar(&f.cheapest, "cheapest", false, "sort flights by price (default)")
	fs.BoolVar(&f.fastest, "fastest", false, "sort flights by duration")
	fs.IntVar(&f.bags, "bags", 0, "number of checked bags")
	fs.StringVar(&f.passengersFile, "passengers", "", "path to a JSON file with the passenger list")
	fs.BoolVar(&f.verbose, "verbose", false, "enable debug logging")
}

// Parse resolves the command line into a Config. The returned bool reports
// a clean exit (help requested). Parse and validation failures print the
// message and usage text to output and come back as an ExitError with a
// non-zero code; the caller only has to exit.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := pflag.NewFlagSet("kiwi", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `Search flights and book the best-ranked one.

Usage:
  kiwi --date=<yyyy-mm-dd> --from=<IATA> --to=<IATA>
       [--one-way | --return=<nights>] [--cheapest | --fastest]
       [--bags=<n>] [--passengers=<file>] [--verbose]

Options:
`)
		fmt.Fprintln(output, flagSet.FlagUsages())
	}

	var f rawFlags
	f.addFlags(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts, err := f.resolve(flagSet)
	if err != nil {
		fmt.Fprintln(output, err)
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &Config{
		Options:        opts,
		PassengersFile: f.passengersFile,
		Verbose:        f.verbose,
	}, false, nil
}

func (f *rawFlags) resolve(flagSet *pflag.FlagSet) (entity.SearchOptions, error) {
	if f.date == "" {
		return entity.SearchOptions{}, errors.New("--date is required")
	}
	if f.flyFrom == "" {
		return entity.SearchOptions{}, errors.New("--from is required")
	}
	if f.flyTo == "" {
		return entity.SearchOptions{}, errors.New("--to is required")
	}

	date, err := time.Parse(dateFormat, f.date)
	if err != nil {
		return entity.SearchOptions{}, fmt.Errorf("parsing --date: %w", err)
	}

	hasReturn := flagSet.Changed("return")
	if f.oneWay && hasReturn {
		return entity.SearchOptions{}, errors.New("--one-way and --return are mutually exclusive")
	}
	if f.cheapest && f.fastest {
		return entity.SearchOptions{}, errors.New("--cheapest and --fastest are mutually exclusive")
	}
	if hasReturn && f.nights < 1 {
		return entity.SearchOptions{}, errors.New("--return must be at least one night")
	}
	if f.bags < 0 {
		return entity.SearchOptions{}, errors.New("--bags must not be negative")
	}

	opts := entity.SearchOptions{
		DepartureDate: date,
		FlyFrom:       f.flyFrom,
		FlyTo:         f.flyTo,
		Trip:          entity.TripOneWay,
		Sort:          entity.SortByPrice,
		Bags:          f.bags,
	}
	if hasReturn {
		opts.Trip = entity.TripRound
		opts.Nights = f.nights
	}
	if f.fastest {
		opts.Sort = entity.SortByDuration
	}

	return opts, nil
}
