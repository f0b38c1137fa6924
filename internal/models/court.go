package models

import "time"

// DaySchedule is one weekday entry of a court's weekly schedule.
// Times are venue-local wall-clock "HH:MM" strings. When IsOpen is true
// the court requires OpeningTime < ClosingTime; an all-day court is
// expressed as 00:00-23:59.
type DaySchedule struct {
	Day         string `json:"day"`
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// WeekSchedule holds exactly one DaySchedule per weekday, Monday..Sunday.
type WeekSchedule []DaySchedule

// DayPrice is a flat price override for all slots on a weekday.
type DayPrice struct {
	Day   string `json:"day"`
	Price int    `json:"price"`
}

// TimeSlabPrice overrides the price of slots whose start time falls in
// [FromTime, ToTime) on the listed days. An empty Days set applies every
// day. When several slabs match the same slot, the first declared wins.
type TimeSlabPrice struct {
	FromTime string   `json:"fromTime"`
	ToTime   string   `json:"toTime"`
	Price    int      `json:"price"`
	Days     []string `json:"days,omitempty"`
}

type Court struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint   `gorm:"index" json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ArenaID uint  `gorm:"index" json:"arena_id"`
	Arena   Arena `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string `gorm:"size:100;not null" json:"name"`
	SportType string `gorm:"size:50;not null" json:"sport_type"`

	BasePrice    int `gorm:"not null" json:"base_price"`
	SlotDuration int `gorm:"not null;default:60" json:"slot_duration"`

	Schedule   WeekSchedule    `gorm:"serializer:json" json:"schedule"`
	DayPrices  []DayPrice      `gorm:"serializer:json" json:"day_prices"`
	TimePrices []TimeSlabPrice `gorm:"serializer:json" json:"time_prices"`

	MaxPlayers int      `json:"max_players"`
	Images     []string `gorm:"serializer:json" json:"images"`
	CourtNotes string   `gorm:"size:500" json:"court_notes"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultWeekSchedule is applied to new courts that come in without an
// explicit schedule: open every day 06:00-23:00.
func DefaultWeekSchedule() WeekSchedule {
	days := []string{
		"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday",
	}

	schedule := make(WeekSchedule, 0, len(days))
	for _, day := range days {
		schedule = append(schedule, DaySchedule{
			Day:         day,
			IsOpen:      true,
			OpeningTime: "06:00",
			ClosingTime: "23:00",
		})
	}
	return schedule
}
