package dto

import "time"

// BookingListDTO is the joined row the owner/admin booking listing
// returns; names come from the courts and branches tables so the
// dashboard does not need follow-up lookups.
type BookingListDTO struct {
	ID            uint      `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	Price         int       `json:"price"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CourtName     string    `json:"court_name"`
	BranchName    string    `json:"branch_name"`
	CreatedAt     time.Time `json:"created_at"`
}
