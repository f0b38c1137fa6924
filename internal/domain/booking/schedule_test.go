package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

func TestWeekdayName(t *testing.T) {
	date, err := time.Parse("2006-01-02", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "Monday", WeekdayName(date))

	date, err = time.Parse("2006-01-02", "2026-09-06")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", WeekdayName(date))
}

func TestResolveDay(t *testing.T) {
	schedule := models.WeekSchedule{
		{Day: "Monday", IsOpen: true, OpeningTime: "06:00", ClosingTime: "23:00"},
		{Day: "Tuesday", IsOpen: false},
	}

	monday, _ := time.Parse("2006-01-02", "2026-08-31")
	tuesday, _ := time.Parse("2006-01-02", "2026-09-01")
	wednesday, _ := time.Parse("2006-01-02", "2026-09-02")

	open := ResolveDay(schedule, monday)
	assert.True(t, open.Open)
	assert.Equal(t, "06:00", open.OpeningTime)
	assert.Equal(t, "23:00", open.ClosingTime)

	closed := ResolveDay(schedule, tuesday)
	assert.False(t, closed.Open)
	assert.Equal(t, ClosedReason, closed.Reason)

	// A missing weekday entry counts as closed, not as an error.
	missing := ResolveDay(schedule, wednesday)
	assert.False(t, missing.Open)
	assert.Equal(t, ClosedReason, missing.Reason)
}

func TestValidateWeekSchedule(t *testing.T) {
	valid := models.WeekSchedule{
		{Day: "Monday", IsOpen: true, OpeningTime: "06:00", ClosingTime: "23:00"},
		{Day: "Tuesday", IsOpen: false},
	}
	assert.NoError(t, ValidateWeekSchedule(valid))

	inverted := models.WeekSchedule{
		{Day: "Monday", IsOpen: true, OpeningTime: "23:00", ClosingTime: "06:00"},
	}
	err := ValidateWeekSchedule(inverted)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidSchedule))

	garbage := models.WeekSchedule{
		{Day: "Monday", IsOpen: true, OpeningTime: "dawn", ClosingTime: "dusk"},
	}
	err = ValidateWeekSchedule(garbage)
	assert.True(t, httperr.IsBusiness(err, CodeInvalidSchedule))

	// Closed days are not validated; their times may be empty.
	closedOnly := models.WeekSchedule{
		{Day: "Sunday", IsOpen: false},
	}
	assert.NoError(t, ValidateWeekSchedule(closedOnly))
}
