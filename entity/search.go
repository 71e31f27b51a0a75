package entity

import "time"

type TripType string

const (
	TripOneWay TripType = "oneway"
	TripRound  TripType = "round"
)

type SortBy string

const (
	SortByPrice    SortBy = "price"
	SortByDuration SortBy = "duration"
)

// SearchOptions is the resolved CLI input. It is built once per run and not
// mutated afterwards.
type SearchOptions struct {
	DepartureDate time.Time
	FlyFrom       string
	FlyTo         string
	Trip          TripType
	Nights        int
	Sort          SortBy
	Bags          int
}
