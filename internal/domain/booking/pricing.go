package booking

import "github.com/playspot/arena-scheduler/internal/models"

// ResolvePrice picks the price for a slot starting at startTime on the
// given weekday, in strict priority order:
//
//  1. the first declared TimeSlabPrice whose day set matches and whose
//     [fromTime, toTime) range contains startTime
//  2. the first DayPrice for the weekday
//  3. the court's base price
func ResolvePrice(
	startTime string,
	weekday string,
	slabs []models.TimeSlabPrice,
	dayPrices []models.DayPrice,
	basePrice int,
) int {

	start, err := minutesOfDay(startTime)
	if err != nil {
		return basePrice
	}

	for _, slab := range slabs {
		if !slabAppliesToDay(slab, weekday) {
			continue
		}

		from, err := minutesOfDay(slab.FromTime)
		if err != nil {
			continue
		}
		to, err := minutesOfDay(slab.ToTime)
		if err != nil {
			continue
		}

		if from <= start && start < to {
			return slab.Price
		}
	}

	for _, dp := range dayPrices {
		if dp.Day == weekday {
			return dp.Price
		}
	}

	return basePrice
}

func slabAppliesToDay(slab models.TimeSlabPrice, weekday string) bool {
	if len(slab.Days) == 0 {
		return true
	}
	for _, day := range slab.Days {
		if day == weekday {
			return true
		}
	}
	return false
}

// SlabOverlap describes two slabs that can both match the same
// (day, startTime). The engine always takes the first declared, so an
// overlap is not an error, but court writes surface it as a warning.
type SlabOverlap struct {
	First  int
	Second int
	Day    string
}

// OverlappingSlabs reports every pair of slabs whose day sets intersect
// and whose time ranges overlap.
func OverlappingSlabs(slabs []models.TimeSlabPrice) []SlabOverlap {
	var overlaps []SlabOverlap

	for i := 0; i < len(slabs); i++ {
		for j := i + 1; j < len(slabs); j++ {
			day, shared := sharedDay(slabs[i], slabs[j])
			if !shared {
				continue
			}
			if rangesOverlap(slabs[i], slabs[j]) {
				overlaps = append(overlaps, SlabOverlap{First: i, Second: j, Day: day})
			}
		}
	}

	return overlaps
}

func sharedDay(a, b models.TimeSlabPrice) (string, bool) {
	if len(a.Days) == 0 && len(b.Days) == 0 {
		return "every day", true
	}
	if len(a.Days) == 0 {
		return b.Days[0], true
	}
	if len(b.Days) == 0 {
		return a.Days[0], true
	}
	for _, dayA := range a.Days {
		for _, dayB := range b.Days {
			if dayA == dayB {
				return dayA, true
			}
		}
	}
	return "", false
}

func rangesOverlap(a, b models.TimeSlabPrice) bool {
	aFrom, err := minutesOfDay(a.FromTime)
	if err != nil {
		return false
	}
	aTo, err := minutesOfDay(a.ToTime)
	if err != nil {
		return false
	}
	bFrom, err := minutesOfDay(b.FromTime)
	if err != nil {
		return false
	}
	bTo, err := minutesOfDay(b.ToTime)
	if err != nil {
		return false
	}

	return aFrom < bTo && bFrom < aTo
}
