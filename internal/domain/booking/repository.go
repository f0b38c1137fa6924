package booking

import (
	"context"

	"github.com/playspot/arena-scheduler/internal/dto"
	"github.com/playspot/arena-scheduler/internal/models"
)

// BookingFilter narrows owner/admin booking listings.
type BookingFilter struct {
	OwnerID uint
	ArenaID uint
	CourtID uint
	Date    string
}

type Repository interface {
	// -------- Court / Branch / Arena --------
	GetCourtByID(
		ctx context.Context,
		id uint,
	) (*models.Court, error)

	GetBranchByID(
		ctx context.Context,
		id uint,
	) (*models.Branch, error)

	GetArenaByID(
		ctx context.Context,
		id uint,
	) (*models.Arena, error)

	// -------- Public arena page --------
	GetActiveArenaBySlug(
		ctx context.Context,
		slug string,
	) (*models.Arena, error)

	ListApprovedBranches(
		ctx context.Context,
		arenaID uint,
	) ([]models.Branch, error)

	ListActiveCourts(
		ctx context.Context,
		arenaID uint,
	) ([]models.Court, error)

	// -------- Availability --------
	ListTakenStartTimes(
		ctx context.Context,
		courtID uint,
		date string,
	) ([]string, error)

	// -------- Admission --------
	FindActiveBooking(
		ctx context.Context,
		courtID uint,
		date string,
		startTime string,
	) (*models.Booking, error)

	ReferenceCodeExists(
		ctx context.Context,
		code string,
	) (bool, error)

	// CreateBooking is the conditional insert the admission controller
	// relies on. The storage layer enforces at most one non-cancelled
	// booking per (courtID, date, startTime) and reports a violation as
	// a slot_taken business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Lifecycle --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
		filter BookingFilter,
	) ([]dto.BookingListDTO, error)
}
