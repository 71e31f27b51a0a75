package entity

type Flight struct {
	ID           string  `json:"id"`
	FlyFrom      string  `json:"flyFrom"`
	FlyTo        string  `json:"flyTo"`
	CityFrom     string  `json:"cityFrom"`
	CityTo       string  `json:"cityTo"`
	Price        float64 `json:"price"`
	DTimeUTC     int64   `json:"dTimeUTC"`
	ATimeUTC     int64   `json:"aTimeUTC"`
	BookingToken string  `json:"booking_token"`
}

type SearchResult struct {
	Currency string   `json:"currency"`
	Data     []Flight `json:"data"`
}
