package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playspot/arena-scheduler/internal/models"
)

// Slot is a derived bookable increment inside a court's open window.
// Slots are never persisted; bookings are.
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
}

// NoFitReason is surfaced when the day is open but the slot duration does
// not fit the window even once.
const NoFitReason = "No slots available for this date"

// SlotRequest carries everything the generator needs for one court+date.
type SlotRequest struct {
	Window       DayWindow
	SlotDuration int
	Weekday      string
	BasePrice    int
	DayPrices    []models.DayPrice
	TimePrices   []models.TimeSlabPrice

	// TakenStartTimes holds the startTime strings of non-cancelled
	// bookings for the court+date. Blocking is exact string match on
	// the slot grid; admission only accepts generated slots, so every
	// stored startTime is grid-aligned.
	TakenStartTimes []string
}

// GenerateSlots walks the open window in SlotDuration increments and
// annotates each candidate with its resolved price and availability.
// All candidates are returned, including unavailable ones, so callers
// can render blocked slots rather than hide them. When the result is
// empty the second return value says why.
func GenerateSlots(req SlotRequest) ([]Slot, string) {
	if !req.Window.Open {
		reason := req.Window.Reason
		if reason == "" {
			reason = ClosedReason
		}
		return nil, reason
	}

	duration := req.SlotDuration
	if duration <= 0 {
		duration = 60
	}

	opening, err := minutesOfDay(req.Window.OpeningTime)
	if err != nil {
		return nil, NoFitReason
	}
	closing, err := minutesOfDay(req.Window.ClosingTime)
	if err != nil {
		return nil, NoFitReason
	}

	taken := make(map[string]struct{}, len(req.TakenStartTimes))
	for _, t := range req.TakenStartTimes {
		taken[t] = struct{}{}
	}

	var slots []Slot

	// The last remainder shorter than duration stays unscheduled.
	for current := opening; current+duration <= closing; current += duration {
		start := formatMinutes(current)
		end := formatMinutes(current + duration)

		_, isTaken := taken[start]

		slots = append(slots, Slot{
			StartTime: start,
			EndTime:   end,
			Price:     ResolvePrice(start, req.Weekday, req.TimePrices, req.DayPrices, req.BasePrice),
			Available: !isTaken,
		})
	}

	if len(slots) == 0 {
		return nil, NoFitReason
	}
	return slots, ""
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}

	return hours*60 + minutes, nil
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
