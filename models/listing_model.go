package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Listing struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HostID        uuid.UUID `gorm:"type:uuid;not null;index" json:"host_id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Location      string    `gorm:"size:200;not null" json:"location"`
	PricePerNight float64   `gorm:"type:numeric(10,2);not null" json:"price_per_night"`

	Host   User    `gorm:"foreignkey:HostID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	Photos []Photo `gorm:"foreignkey:ListingID" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
