package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playspot/arena-scheduler/internal/models"
)

func mondayWindow() DayWindow {
	return DayWindow{Open: true, OpeningTime: "06:00", ClosingTime: "23:00"}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, reason := GenerateSlots(SlotRequest{
		Window:       mondayWindow(),
		SlotDuration: 60,
		Weekday:      "Monday",
		BasePrice:    1000,
		TimePrices: []models.TimeSlabPrice{
			{FromTime: "18:00", ToTime: "22:00", Price: 1500, Days: []string{"Monday"}},
		},
		TakenStartTimes: []string{"19:00"},
	})

	require.Empty(t, reason)
	require.Len(t, slots, 17) // 06:00 .. 22:00 starts

	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, "07:00", slots[0].EndTime)
	assert.Equal(t, 1000, slots[0].Price)
	assert.True(t, slots[0].Available)

	// slab window
	bySlot := make(map[string]Slot, len(slots))
	for _, s := range slots {
		bySlot[s.StartTime] = s
	}

	assert.Equal(t, 1500, bySlot["18:00"].Price)
	assert.True(t, bySlot["18:00"].Available)

	assert.Equal(t, 1500, bySlot["19:00"].Price)
	assert.False(t, bySlot["19:00"].Available, "taken slot must still be listed, marked unavailable")

	assert.Equal(t, 1500, bySlot["21:00"].Price)

	// slab is [from, to): a slot starting exactly at toTime is outside
	assert.Equal(t, 1000, bySlot["22:00"].Price)
}

func TestGenerateSlots_CoversWindowWithoutOverlap(t *testing.T) {
	slots, reason := GenerateSlots(SlotRequest{
		Window:       DayWindow{Open: true, OpeningTime: "08:00", ClosingTime: "12:30"},
		SlotDuration: 90,
		Weekday:      "Tuesday",
		BasePrice:    500,
	})

	require.Empty(t, reason)
	require.Len(t, slots, 3) // 08:00, 09:30, 11:00; the 12:30 remainder does not fit

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
	}
	assert.Equal(t, "12:30", slots[len(slots)-1].EndTime)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	req := SlotRequest{
		Window:          mondayWindow(),
		SlotDuration:    60,
		Weekday:         "Monday",
		BasePrice:       1000,
		TakenStartTimes: []string{"10:00", "15:00"},
	}

	first, _ := GenerateSlots(req)
	second, _ := GenerateSlots(req)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots, reason := GenerateSlots(SlotRequest{
		Window: DayWindow{Reason: ClosedReason},
	})

	assert.Nil(t, slots)
	assert.Equal(t, ClosedReason, reason)
}

func TestGenerateSlots_DurationDoesNotFit(t *testing.T) {
	slots, reason := GenerateSlots(SlotRequest{
		Window:       DayWindow{Open: true, OpeningTime: "09:00", ClosingTime: "10:00"},
		SlotDuration: 90,
		Weekday:      "Friday",
		BasePrice:    800,
	})

	assert.Nil(t, slots)
	assert.Equal(t, NoFitReason, reason)
}

func TestGenerateSlots_ZeroDurationDefaultsToHour(t *testing.T) {
	slots, reason := GenerateSlots(SlotRequest{
		Window:       DayWindow{Open: true, OpeningTime: "09:00", ClosingTime: "12:00"},
		SlotDuration: 0,
		Weekday:      "Friday",
		BasePrice:    800,
	})

	require.Empty(t, reason)
	assert.Len(t, slots, 3)
}

func TestMinutesOfDay(t *testing.T) {
	got, err := minutesOfDay("06:30")
	require.NoError(t, err)
	assert.Equal(t, 390, got)

	_, err = minutesOfDay("24:00")
	assert.Error(t, err)

	_, err = minutesOfDay("nope")
	assert.Error(t, err)
}
