package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSevaAmount(t *testing.T) {
	assert.Equal(t, 300.0, SevaAmount(100, 3))
	assert.Equal(t, 100.0, SevaAmount(100, 1))
	assert.Equal(t, 0.0, SevaAmount(0, 5))
}

func TestRoomAmount_TwoNights(t *testing.T) {
	amount, err := RoomAmount(800, day("2024-01-01"), day("2024-01-03"))

	require.NoError(t, err)
	assert.Equal(t, 1600.0, amount)
}

func TestRoomAmount_SingleNight(t *testing.T) {
	amount, err := RoomAmount(1500, day("2024-05-10"), day("2024-05-11"))

	require.NoError(t, err)
	assert.Equal(t, 1500.0, amount)
}

func TestRoomAmount_SameDayRejected(t *testing.T) {
	_, err := RoomAmount(800, day("2024-01-01"), day("2024-01-01"))

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRoomAmount_InvertedRangeRejected(t *testing.T) {
	_, err := RoomAmount(800, day("2024-01-03"), day("2024-01-01"))

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(day("2024-01-01"), day("2024-01-03")))
	assert.Equal(t, 0, Nights(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, -2, Nights(day("2024-01-03"), day("2024-01-01")))
}

func TestNights_LongRange(t *testing.T) {
	// 1000 Gregorian years = 365000 days + 242 leap days, far past the
	// ~292-year ceiling of time.Duration
	assert.Equal(t, 365242, Nights(day("1000-01-01"), day("2000-01-01")))
}
