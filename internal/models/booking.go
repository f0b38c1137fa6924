package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CourtID  uint `gorm:"index:idx_bookings_court_date" json:"court_id"`
	BranchID uint `gorm:"index" json:"branch_id"`
	ArenaID  uint `gorm:"index" json:"arena_id"`
	OwnerID  uint `gorm:"index" json:"owner_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone"`

	// Venue-local wall-clock strings: "YYYY-MM-DD" and "HH:MM".
	Date      string `gorm:"size:10;not null;index:idx_bookings_court_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Duration int `gorm:"not null" json:"duration"`
	Price    int `gorm:"not null" json:"price"`

	PaymentReferenceID string `gorm:"size:100" json:"payment_reference_id"`

	ReferenceCode string `gorm:"size:12;uniqueIndex;not null" json:"reference_code"`
	Status        string `gorm:"size:20;default:'pending'" json:"status"`

	WhatsappSent    bool `gorm:"default:false" json:"whatsapp_sent"`
	NumberOfPlayers int  `json:"number_of_players"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
