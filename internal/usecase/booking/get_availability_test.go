package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/playspot/arena-scheduler/internal/domain/booking"
	"github.com/playspot/arena-scheduler/internal/httperr"
	"github.com/playspot/arena-scheduler/internal/models"
)

func TestGetAvailability_OpenDay(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := NewGetAvailability(repo)

	result, err := uc.Execute(context.Background(), AvailabilityInput{
		CourtID: 1,
		Date:    "2026-08-31",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Reason)
	assert.Len(t, result.Slots, 17) // 06:00-23:00, 60 min
	assert.Equal(t, "06:00", result.Slots[0].StartTime)
}

func TestGetAvailability_BookedSlotMarkedUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()

	create := newCreateUC(repo)
	_, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	uc := NewGetAvailability(repo)
	result, err := uc.Execute(context.Background(), AvailabilityInput{
		CourtID: 1,
		Date:    "2026-08-31",
	})
	require.NoError(t, err)

	for _, slot := range result.Slots {
		if slot.StartTime == "18:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available)
		}
	}
}

// Re-querying must not change anything: availability is a pure read.
func TestGetAvailability_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := NewGetAvailability(repo)

	in := AvailabilityInput{CourtID: 1, Date: "2026-08-31"}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	repo.courts[1].Schedule = models.WeekSchedule{
		{Day: "Monday", IsOpen: false},
	}

	uc := NewGetAvailability(repo)
	result, err := uc.Execute(context.Background(), AvailabilityInput{
		CourtID: 1,
		Date:    "2026-08-31",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Slots)
	assert.Equal(t, domain.ClosedReason, result.Reason)
}

func TestGetAvailability_Errors(t *testing.T) {
	repo := newFakeRepo()
	repo.seedContext()
	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), AvailabilityInput{CourtID: 99, Date: "2026-08-31"})
	assert.True(t, httperr.IsBusiness(err, domain.CodeCourtNotFound))

	_, err = uc.Execute(context.Background(), AvailabilityInput{CourtID: 1, Date: "today"})
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidDate))
}
