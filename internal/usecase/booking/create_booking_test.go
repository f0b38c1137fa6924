package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playspot/arena-scheduler/internal/audit"
	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

func newCreateUC(repo domain.Repository) *CreateBooking {
	return NewCreateBooking(repo, audit.NewDispatcher(audit.New(nil)))
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CourtID:       1,
		BranchID:      1,
		ArenaID:       1,
		CustomerName:  "Ali Raza",
		CustomerPhone: "+923001234567",
		Date:          "2026-08-31",
		StartTime:     "18:00",
		Duration:      60,
		Price:         1500,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(7), b.OwnerID, "ownerID must come from the arena, never from input")
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, "19:00", b.EndTime, "endTime derived from duration")
	assert.Regexp(t, `^[A-Z0-9]{6}$`, b.ReferenceCode)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	in := validInput()
	in.CustomerName = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeMissingFields))
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "31-08-2026"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidDate))
}

func TestCreateBooking_MissingContext(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	in := validInput()
	in.CourtID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeCourtNotFound))

	in = validInput()
	in.BranchID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeBranchNotFound))

	in = validInput()
	in.ArenaID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeArenaNotFound))
}

func TestCreateBooking_ContextMismatch(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()

	// A second arena that court 1 and branch 1 do not belong to.
	other := *repo.arenas[1]
	other.ID = 2
	repo.arenas[2] = &other

	uc := newCreateUC(repo)

	in := validInput()
	in.ArenaID = 2

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeContextMismatch))
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, domain.CodeSlotTaken))
}

func TestCreateBooking_CancelledSlotIsFree(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	first.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.UpdateBooking(context.Background(), first))

	_, err = uc.Execute(context.Background(), validInput())
	assert.NoError(t, err, "cancelling must free the slot")
}

func TestCreateBooking_StatusHandling(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	in := validInput()
	in.Status = "confirmed"
	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)

	in = validInput()
	in.StartTime = "19:00"
	in.Status = "vip"
	b, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), b.Status, "unrecognized status falls back to pending")
}

// Two concurrent admissions for the same slot: exactly one wins.
func TestCreateBooking_ConcurrentAdmission(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, httperr.IsBusiness(err, domain.CodeSlotTaken))
		}
	}
	assert.Equal(t, 1, winners)
}

func TestUniqueReferenceCodes(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := newCreateUC(repo)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		code, err := uc.uniqueReferenceCode(context.Background())
		require.NoError(t, err)

		_, dup := seen[code]
		require.False(t, dup, "code %q issued twice", code)
		seen[code] = struct{}{}

		// Register the issued code so the next call regenerates on a
		// collision instead of reissuing it.
		repo.mu.Lock()
		repo.bookings = append(repo.bookings, &models.Booking{ReferenceCode: code})
		repo.mu.Unlock()
	}
}
