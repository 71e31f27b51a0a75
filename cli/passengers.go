package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/elisiondan/kiwi/entity"
)

// LoadPassengers reads a JSON array of passengers from path. The list must
// not be empty; a booking request is invalid without passengers.
func LoadPassengers(path string) ([]entity.Passenger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading passengers file: %w", err)
	}

	var passengers []entity.Passenger
	if err := json.Unmarshal(data, &passengers); err != nil {
		return nil, fmt.Errorf("decoding passengers file: %w", err)
	}

	if len(passengers) == 0 {
		return nil, errors.New("passengers file contains no passengers")
	}

	return passengers, nil
}
