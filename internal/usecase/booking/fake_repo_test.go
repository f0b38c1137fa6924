package booking

import (
	"context"
	"errors"
	"sync"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/dto"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository. CreateBooking enforces the same
// at-most-one-active-booking-per-slot rule the partial unique index
// enforces in Postgres, under a mutex, so admission races can be
// exercised with plain goroutines.
type fakeRepo struct {
	mu sync.Mutex

	courts   map[uint]*models.Court
	branches map[uint]*models.Branch
	arenas   map[uint]*models.Arena

	bookings []*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		courts:   make(map[uint]*models.Court),
		branches: make(map[uint]*models.Branch),
		arenas:   make(map[uint]*models.Arena),
		nextID:   1,
	}
}

// seedContext installs one arena -> branch -> court chain with the
// usual ids 1/1/1 and a default all-week schedule.
func (f *fakeRepo) seedContext() {
	f.arenas[1] = &models.Arena{ID: 1, OwnerID: 7, Slug: "city-arena", IsApproved: true, IsActive: true}
	f.branches[1] = &models.Branch{ID: 1, ArenaID: 1, IsApproved: true, IsActive: true}
	f.courts[1] = &models.Court{
		ID:           1,
		BranchID:     1,
		ArenaID:      1,
		BasePrice:    1000,
		SlotDuration: 60,
		Schedule:     models.DefaultWeekSchedule(),
		IsActive:     true,
	}
}

func (f *fakeRepo) GetCourtByID(_ context.Context, id uint) (*models.Court, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.courts[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBranchByID(_ context.Context, id uint) (*models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.branches[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetArenaByID(_ context.Context, id uint) (*models.Arena, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.arenas[id]; ok {
		return a, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetActiveArenaBySlug(_ context.Context, slug string) (*models.Arena, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.arenas {
		if a.Slug == slug && a.IsActive && a.IsApproved {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListApprovedBranches(_ context.Context, arenaID uint) ([]models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Branch
	for _, b := range f.branches {
		if b.ArenaID == arenaID && b.IsActive && b.IsApproved {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveCourts(_ context.Context, arenaID uint) ([]models.Court, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Court
	for _, c := range f.courts {
		if c.ArenaID == arenaID && c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListTakenStartTimes(_ context.Context, courtID uint, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status != string(domain.StatusCancelled) {
			out = append(out, b.StartTime)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindActiveBooking(_ context.Context, courtID uint, date, startTime string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findActiveLocked(courtID, date, startTime), nil
}

func (f *fakeRepo) findActiveLocked(courtID uint, date, startTime string) *models.Booking {
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Date == date && b.StartTime == startTime &&
			b.Status != string(domain.StatusCancelled) {
			return b
		}
	}
	return nil
}

func (f *fakeRepo) ReferenceCodeExists(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ReferenceCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findActiveLocked(b.CourtID, b.Date, b.StartTime) != nil {
		return httperr.ErrBusiness(domain.CodeSlotTaken)
	}

	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.bookings {
		if existing.ID == b.ID {
			f.bookings[i] = b
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListBookings(_ context.Context, filter domain.BookingFilter) ([]dto.BookingListDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rows []dto.BookingListDTO
	for _, b := range f.bookings {
		if filter.OwnerID != 0 && b.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ArenaID != 0 && b.ArenaID != filter.ArenaID {
			continue
		}
		if filter.CourtID != 0 && b.CourtID != filter.CourtID {
			continue
		}
		if filter.Date != "" && b.Date != filter.Date {
			continue
		}
		rows = append(rows, dto.BookingListDTO{
			ID:            b.ID,
			ReferenceCode: b.ReferenceCode,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Status:        b.Status,
			Price:         b.Price,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
		})
	}
	return rows, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
