package models

import "time"

type Branch struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ArenaID uint  `gorm:"index" json:"arena_id"`
	Arena   Arena `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Address        string `gorm:"size:255;not null" json:"address"`
	GoogleMapLink  string `gorm:"size:255" json:"google_map_link"`
	City           string `gorm:"size:100;not null" json:"city"`
	Area           string `gorm:"size:100;not null" json:"area"`
	WhatsappNumber string `gorm:"size:20;not null" json:"whatsapp_number"`

	PaymentBankName      string `gorm:"size:100" json:"payment_bank_name"`
	PaymentAccountNumber string `gorm:"size:50" json:"payment_account_number"`
	PaymentIban          string `gorm:"size:50" json:"payment_iban"`
	PaymentAccountTitle  string `gorm:"size:100" json:"payment_account_title"`
	PaymentOtherMethods  string `gorm:"size:255" json:"payment_other_methods"`

	Images []string `gorm:"serializer:json" json:"images"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
