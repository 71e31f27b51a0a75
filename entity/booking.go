package entity

const StatusConfirmed = "confirmed"

type Passenger struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	DocumentID string `json:"documentID"`
	Email      string `json:"email"`
	Birthday   string `json:"birthday"`
}

// DefaultPassengers returns the demo passenger record used when no passenger
// file is supplied. A booking request needs at least one passenger.
func DefaultPassengers() []Passenger {
	return []Passenger{
		{
			Title:      "Mr",
			FirstName:  "John",
			LastName:   "Doe",
			DocumentID: "111",
			Email:      "test@test.com",
			Birthday:   "1980-01-01",
		},
	}
}

type BookingRequest struct {
	Currency     string      `json:"currency"`
	Passengers   []Passenger `json:"passengers"`
	Bags         int         `json:"bags"`
	BookingToken string      `json:"booking_token"`
}

type Booking struct {
	Status string `json:"status"`
	PNR    string `json:"pnr"`
}
