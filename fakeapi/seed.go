package fakeapi

import (
	"github.com/elisiondan/kiwi/entity"
	"github.com/google/uuid"
)

// SeedFlights returns a small timetable: two Prague-London flights where
// the cheaper one is also the slower one, and one unrelated route.
func SeedFlights() []entity.Flight {
	return []entity.Flight{
		{
			ID:           uuid.NewString(),
			FlyFrom:      "PRG",
			FlyTo:        "LON",
			CityFrom:     "Prague",
			CityTo:       "London",
			Price:        100,
			DTimeUTC:     1630487700,
			ATimeUTC:     1630494300,
			BookingToken: uuid.NewString(),
		},
		{
			ID:           uuid.NewString(),
			FlyFrom:      "PRG",
			FlyTo:        "LON",
			CityFrom:     "Prague",
			CityTo:       "London",
			Price:        145,
			DTimeUTC:     1630481400,
			ATimeUTC:     1630486500,
			BookingToken: uuid.NewString(),
		},
		{
			ID:           uuid.NewString(),
			FlyFrom:      "PRG",
			FlyTo:        "BCN",
			CityFrom:     "Prague",
			CityTo:       "Barcelona",
			Price:        80,
			DTimeUTC:     1630489500,
			ATimeUTC:     1630497600,
			BookingToken: uuid.NewString(),
		},
	}
}
