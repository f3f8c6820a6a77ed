package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDateNormalize(t *testing.T) {
	assert.Equal(t, CalendarDate("2025-01-05"), CalendarDate("2025-1-5").Normalize())
	assert.Equal(t, CalendarDate("2025-12-31"), CalendarDate("2025-12-31").Normalize())
	assert.Equal(t, CalendarDate("next friday"), CalendarDate("next friday").Normalize())
}

func TestClockTimeNormalize(t *testing.T) {
	assert.Equal(t, ClockTime("09:00"), ClockTime("9:00").Normalize())
	assert.Equal(t, ClockTime("18:00"), ClockTime("18:00").Normalize())
	assert.Equal(t, ClockTime("07:30:15"), ClockTime("7:30:15").Normalize())
	assert.Equal(t, ClockTime("25:00"), ClockTime("25:00").Normalize())
}
