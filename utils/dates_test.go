package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	start := time.Date(2024, time.March, 1, 23, 50, 0, 0, jakarta)
	end := time.Date(2024, time.March, 5, 0, 10, 0, 0, jakarta)

	assert.Equal(t, 4, DaysBetween(start, end), "time-of-day does not affect the count")
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, time.March, 15, 13, 45, 12, 0, time.UTC)

	begin := BeginningOfDay(at)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), begin)

	end := EndOfDay(at)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC), end)
}
