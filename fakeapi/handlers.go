package fakeapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/elisiondan/kiwi/entity"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleSearch(c echo.Context) error {
	if s.cfg.SearchStatus != 0 && s.cfg.SearchStatus != http.StatusOK {
		return c.String(s.cfg.SearchStatus, "search unavailable")
	}

	flyFrom := c.QueryParam("flyFrom")
	flyTo := c.QueryParam("to")
	if flyFrom == "" || flyTo == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flyFrom and to are required")
	}

	flights := make([]entity.Flight, 0, len(s.cfg.Flights))
	for _, f := range s.cfg.Flights {
		if f.FlyFrom == flyFrom && f.FlyTo == flyTo {
			flights = append(flights, f)
		}
	}

	switch c.QueryParam("sort") {
	case string(entity.SortByDuration):
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].ATimeUTC-flights[i].DTimeUTC < flights[j].ATimeUTC-flights[j].DTimeUTC
		})
	default:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}

	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 && limit < len(flights) {
		flights = flights[:limit]
	}

	return c.JSON(http.StatusOK, entity.SearchResult{
		Currency: s.cfg.Currency,
		Data:     flights,
	})
}

func (s *Server) handleBooking(c echo.Context) error {
	var booking entity.BookingRequest
	if err := c.Bind(&booking); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	if len(booking.Passengers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one passenger is required")
	}

	s.record(booking)

	_, known := s.tokens[booking.BookingToken]
	if !known || s.cfg.AlwaysPending {
		return c.JSON(http.StatusOK, entity.Booking{Status: "pending"})
	}

	return c.JSON(http.StatusOK, entity.Booking{
		Status: entity.StatusConfirmed,
		PNR:    s.cfg.NewPNR(),
	})
}
