package booking

import (
	"context"
	"time"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	CourtID uint
	Date    string // YYYY-MM-DD
}

// AvailabilityResult is the ordered slot sequence for one court+date.
// Reason is set only when Slots is empty, distinguishing "closed" from
// "duration does not fit the window".
type AvailabilityResult struct {
	Date   string        `json:"date"`
	Slots  []domain.Slot `json:"slots"`
	Reason string        `json:"reason,omitempty"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute is a pure read: no locks are held between this query and any
// later admission attempt, so a slot shown as available can be gone by
// the time it is booked. Admission re-checks.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	court, err := uc.repo.GetCourtByID(ctx, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeCourtNotFound)
	}

	// Dates are venue-local wall-clock strings; no timezone conversion.
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDate)
	}

	window := domain.ResolveDay(court.Schedule, date)
	if !window.Open {
		return &AvailabilityResult{Date: in.Date, Reason: window.Reason}, nil
	}

	taken, err := uc.repo.ListTakenStartTimes(ctx, court.ID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, reason := domain.GenerateSlots(domain.SlotRequest{
		Window:          window,
		SlotDuration:    court.SlotDuration,
		Weekday:         domain.WeekdayName(date),
		BasePrice:       court.BasePrice,
		DayPrices:       court.DayPrices,
		TimePrices:      court.TimePrices,
		TakenStartTimes: taken,
	})

	return &AvailabilityResult{
		Date:   in.Date,
		Slots:  slots,
		Reason: reason,
	}, nil
}
