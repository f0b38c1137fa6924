package booking

import (
	"context"

	"github.com/playspot/arena-scheduler/internal/audit"
	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

type UpdateStatusInput struct {
	BookingID uint
	Status    string

	// ActorOwnerID is 0 for admins; owners may only touch their own
	// bookings.
	ActorOwnerID uint
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking to confirmed or cancelled. Bookings are never
// hard-deleted; cancelling frees the slot because the uniqueness guard
// only covers non-cancelled rows.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	target := domain.Status(in.Status)
	if !domain.CanTransitionTo(target) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidStatus)
	}

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if in.ActorOwnerID != 0 && b.OwnerID != in.ActorOwnerID {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	b.Status = string(target)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ArenaID:  b.ArenaID,
		OwnerID:  &b.OwnerID,
		Action:   "booking_" + in.Status,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
