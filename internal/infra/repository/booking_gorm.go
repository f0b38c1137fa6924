package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/dto"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

// SlotIndexName is the partial unique index enforcing at most one
// non-cancelled booking per (court, date, startTime). Created in db.NewDB.
const SlotIndexName = "idx_bookings_active_slot"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Court / Branch / Arena
// --------------------------------------------------

func (r *BookingGormRepository) GetCourtByID(
	ctx context.Context,
	id uint,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).First(&court, id).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *BookingGormRepository) GetBranchByID(
	ctx context.Context,
	id uint,
) (*models.Branch, error) {

	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BookingGormRepository) GetArenaByID(
	ctx context.Context,
	id uint,
) (*models.Arena, error) {

	var arena models.Arena
	if err := r.db.WithContext(ctx).First(&arena, id).Error; err != nil {
		return nil, err
	}
	return &arena, nil
}

// --------------------------------------------------
// Public arena page
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveArenaBySlug(
	ctx context.Context,
	slug string,
) (*models.Arena, error) {

	var arena models.Arena
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = true AND is_approved = true", slug).
		First(&arena).Error; err != nil {
		return nil, err
	}
	return &arena, nil
}

func (r *BookingGormRepository) ListApprovedBranches(
	ctx context.Context,
	arenaID uint,
) ([]models.Branch, error) {

	var branches []models.Branch
	if err := r.db.WithContext(ctx).
		Where("arena_id = ? AND is_active = true AND is_approved = true", arenaID).
		Order("id ASC").
		Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BookingGormRepository) ListActiveCourts(
	ctx context.Context,
	arenaID uint,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Where("arena_id = ? AND is_active = true", arenaID).
		Order("id ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListTakenStartTimes(
	ctx context.Context,
	courtID uint,
	date string,
) ([]string, error) {

	var startTimes []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"court_id = ? AND date = ? AND status <> ?",
			courtID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Pluck("start_time", &startTimes).Error; err != nil {
		return nil, err
	}

	return startTimes, nil
}

// --------------------------------------------------
// Admission
// --------------------------------------------------

func (r *BookingGormRepository) FindActiveBooking(
	ctx context.Context,
	courtID uint,
	date string,
	startTime string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"court_id = ? AND date = ? AND start_time = ? AND status <> ?",
			courtID, date, startTime, string(domain.StatusCancelled),
		).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ReferenceCodeExists(
	ctx context.Context,
	code string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("reference_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateBooking is a single conditional insert: the partial unique slot
// index makes the second of two concurrent writers fail fast instead of
// silently double-booking.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}

	if httperr.IsUniqueViolation(err, SlotIndexName) {
		return httperr.ErrBusiness(domain.CodeSlotTaken)
	}
	return err
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.BookingFilter,
) ([]dto.BookingListDTO, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(`bookings.id,
			bookings.reference_code,
			bookings.date,
			bookings.start_time,
			bookings.end_time,
			bookings.status,
			bookings.price,
			bookings.customer_name,
			bookings.customer_phone,
			courts.name AS court_name,
			branches.name AS branch_name,
			bookings.created_at`).
		Joins("JOIN courts ON courts.id = bookings.court_id").
		Joins("JOIN branches ON branches.id = bookings.branch_id")

	if filter.OwnerID != 0 {
		q = q.Where("bookings.owner_id = ?", filter.OwnerID)
	}
	if filter.ArenaID != 0 {
		q = q.Where("bookings.arena_id = ?", filter.ArenaID)
	}
	if filter.CourtID != 0 {
		q = q.Where("bookings.court_id = ?", filter.CourtID)
	}
	if filter.Date != "" {
		q = q.Where("bookings.date = ?", filter.Date)
	}

	var rows []dto.BookingListDTO
	if err := q.Order("bookings.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
