package bookings

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

// SevaAmount prices a seva booking from the live catalog cost. Quantity is
// validated (>= 1) before it gets here.
func SevaAmount(cost float64, quantity int) float64 {
	return cost * float64(quantity)
}

// Nights is the whole number of nights between check-in and check-out.
// Computed from calendar days, not time.Duration, which saturates on ranges
// past ~292 years. Inputs are UTC midnights, so the division is exact.
func Nights(checkIn, checkOut time.Time) int {
	const day = 24 * 60 * 60
	return int((checkOut.Unix() - checkIn.Unix()) / day)
}

// RoomAmount prices a stay at price-per-night times nights. Check-out must
// be strictly after check-in.
func RoomAmount(price float64, checkIn, checkOut time.Time) (float64, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrInvalidRange
	}
	// unreachable after the range check; kept in case that check is ever
	// relaxed to allow same-day stays
	if nights < 1 {
		nights = 1
	}
	return price * float64(nights), nil
}
