package booking

import (
	"time"

	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

// ClosedReason is the designated reason surfaced with an empty slot list
// when the court simply is not open that day. It is not an error.
const ClosedReason = "Court is closed on this day"

// WeekdayName derives the Monday..Sunday name for a calendar date.
// time.Weekday is locale-independent and Gregorian, so the result does
// not depend on the process environment.
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// DayWindow is the outcome of resolving a weekly schedule for one date:
// either closed (with a reason) or an open wall-clock window.
type DayWindow struct {
	Open        bool
	OpeningTime string
	ClosingTime string
	Reason      string
}

// ResolveDay looks up the DaySchedule matching the date's weekday.
// A missing entry counts as closed.
func ResolveDay(schedule models.WeekSchedule, date time.Time) DayWindow {
	dayName := WeekdayName(date)

	for _, day := range schedule {
		if day.Day != dayName {
			continue
		}
		if !day.IsOpen {
			return DayWindow{Reason: ClosedReason}
		}
		return DayWindow{
			Open:        true,
			OpeningTime: day.OpeningTime,
			ClosingTime: day.ClosingTime,
		}
	}

	return DayWindow{Reason: ClosedReason}
}

// ValidateWeekSchedule enforces the schedule invariant on court writes:
// every open day needs parseable times with openingTime < closingTime.
func ValidateWeekSchedule(schedule models.WeekSchedule) error {
	for _, day := range schedule {
		if !day.IsOpen {
			continue
		}

		open, err := minutesOfDay(day.OpeningTime)
		if err != nil {
			return httperr.ErrBusiness(CodeInvalidSchedule)
		}
		close, err := minutesOfDay(day.ClosingTime)
		if err != nil {
			return httperr.ErrBusiness(CodeInvalidSchedule)
		}

		if open >= close {
			return httperr.ErrBusiness(CodeInvalidSchedule)
		}
	}
	return nil
}
