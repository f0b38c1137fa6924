package models

import "time"

type Arena struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"index" json:"owner_id"`
	Owner   Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:500;not null" json:"description"`
	Logo        string `gorm:"size:255" json:"logo"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
