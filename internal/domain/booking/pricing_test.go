package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playspot/arena-scheduler/internal/models"
)

func TestResolvePrice_Priority(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "18:00", ToTime: "22:00", Price: 1500, Days: []string{"Monday"}},
	}
	dayPrices := []models.DayPrice{
		{Day: "Monday", Price: 1200},
	}

	// slab beats day price beats base
	assert.Equal(t, 1500, ResolvePrice("19:00", "Monday", slabs, dayPrices, 1000))
	assert.Equal(t, 1200, ResolvePrice("09:00", "Monday", slabs, dayPrices, 1000))
	assert.Equal(t, 1000, ResolvePrice("19:00", "Tuesday", slabs, dayPrices, 1000))
}

func TestResolvePrice_FirstDeclaredSlabWins(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "17:00", ToTime: "20:00", Price: 1400},
		{FromTime: "18:00", ToTime: "22:00", Price: 1800},
	}

	assert.Equal(t, 1400, ResolvePrice("18:00", "Monday", slabs, nil, 1000))
	assert.Equal(t, 1800, ResolvePrice("21:00", "Monday", slabs, nil, 1000))
}

func TestResolvePrice_EmptyDaysMeansEveryDay(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "18:00", ToTime: "22:00", Price: 1500},
	}

	for _, day := range []string{"Monday", "Saturday", "Sunday"} {
		assert.Equal(t, 1500, ResolvePrice("18:00", day, slabs, nil, 1000))
	}
}

func TestResolvePrice_SlabBoundaryIsHalfOpen(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "18:00", ToTime: "22:00", Price: 1500},
	}

	assert.Equal(t, 1500, ResolvePrice("18:00", "Monday", slabs, nil, 1000))
	assert.Equal(t, 1000, ResolvePrice("22:00", "Monday", slabs, nil, 1000))
}

func TestOverlappingSlabs(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "17:00", ToTime: "20:00", Price: 1400, Days: []string{"Monday"}},
		{FromTime: "19:00", ToTime: "22:00", Price: 1800, Days: []string{"Monday"}},
		{FromTime: "19:00", ToTime: "22:00", Price: 1800, Days: []string{"Tuesday"}},
	}

	overlaps := OverlappingSlabs(slabs)
	assert.Len(t, overlaps, 1)
	assert.Equal(t, 0, overlaps[0].First)
	assert.Equal(t, 1, overlaps[0].Second)
	assert.Equal(t, "Monday", overlaps[0].Day)
}

func TestOverlappingSlabs_AdjacentRangesDoNotOverlap(t *testing.T) {
	slabs := []models.TimeSlabPrice{
		{FromTime: "17:00", ToTime: "20:00", Price: 1400},
		{FromTime: "20:00", ToTime: "22:00", Price: 1800},
	}

	assert.Empty(t, OverlappingSlabs(slabs))
}
