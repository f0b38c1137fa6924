package booking

import (
	"context"
	"time"

	"github.com/playspot/arena-scheduler/internal/audit"
	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CourtID  uint
	BranchID uint
	ArenaID  uint

	CustomerName  string
	CustomerPhone string

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM, derived from duration when empty
	Duration  int    // minutes
	Price     int

	PaymentReferenceID string
	NumberOfPlayers    int

	// Status is honored verbatim when it is a recognized value;
	// otherwise the booking is persisted as pending. The public flow
	// passes "confirmed" to hold the slot immediately.
	Status string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the write-path admission controller: it re-validates
// context consistency and admits the booking only if no conflicting
// non-cancelled booking exists for the same (court, date, startTime).
type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 0. Required fields
	// --------------------------------------------------
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Court / branch / arena must exist
	// --------------------------------------------------
	court, err := uc.repo.GetCourtByID(ctx, in.CourtID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeCourtNotFound)
	}

	branch, err := uc.repo.GetBranchByID(ctx, in.BranchID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeBranchNotFound)
	}

	arena, err := uc.repo.GetArenaByID(ctx, in.ArenaID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeArenaNotFound)
	}

	// --------------------------------------------------
	// 2. Referential consistency
	// --------------------------------------------------
	if court.BranchID != branch.ID ||
		branch.ArenaID != arena.ID ||
		court.ArenaID != arena.ID {
		return nil, httperr.ErrBusiness(domain.CodeContextMismatch)
	}

	// --------------------------------------------------
	// 3. Slot must be free (pre-check; the storage
	//    constraint is the authoritative guard)
	// --------------------------------------------------
	if existing, err := uc.repo.FindActiveBooking(
		ctx,
		court.ID,
		in.Date,
		in.StartTime,
	); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, httperr.ErrBusiness(domain.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 4. Collision-free reference code
	// --------------------------------------------------
	referenceCode, err := uc.uniqueReferenceCode(ctx)
	if err != nil {
		return nil, err
	}

	endTime := in.EndTime
	if endTime == "" {
		endTime = addMinutes(in.StartTime, in.Duration)
	}

	// --------------------------------------------------
	// 5. Persist (ownerID always comes from the arena)
	// --------------------------------------------------
	b := &models.Booking{
		CourtID:  court.ID,
		BranchID: branch.ID,
		ArenaID:  arena.ID,
		OwnerID:  arena.OwnerID,

		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,

		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   endTime,
		Duration:  in.Duration,
		Price:     in.Price,

		PaymentReferenceID: in.PaymentReferenceID,
		NumberOfPlayers:    in.NumberOfPlayers,

		ReferenceCode: referenceCode,
		Status:        string(domain.InitialStatus(in.Status)),
		WhatsappSent:  false,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ArenaID:  arena.ID,
		OwnerID:  &arena.OwnerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// uniqueReferenceCode retries until the store reports no booking with
// the generated code. The loop is unbounded in principle but terminates
// immediately in practice given the size of the code space.
func (uc *CreateBooking) uniqueReferenceCode(ctx context.Context) (string, error) {
	for {
		code := domain.NewReferenceCode()

		exists, err := uc.repo.ReferenceCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

func validateInput(in CreateBookingInput) error {
	if in.CourtID == 0 || in.BranchID == 0 || in.ArenaID == 0 ||
		in.CustomerName == "" || in.CustomerPhone == "" ||
		in.Date == "" || in.StartTime == "" ||
		in.Duration <= 0 || in.Price < 0 {
		return httperr.ErrBusiness(domain.CodeMissingFields)
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness(domain.CodeInvalidDate)
	}
	return nil
}

func addMinutes(hhmm string, minutes int) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}
