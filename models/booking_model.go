package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ListingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"listing_id"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;index" json:"guest_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	TotalPrice float64   `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     string    `gorm:"size:10;not null;default:'pending'" json:"status"`
	Reference  string    `gorm:"size:10;not null;unique" json:"reference"`
	ReceiptURL *string   `gorm:"size:255" json:"receipt_url,omitempty"`

	Listing Listing `gorm:"foreignkey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	Guest   User    `gorm:"foreignkey:GuestID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// CanTransition reports whether a status change is allowed. Confirmed and
// canceled are terminal states.
func (b *Booking) CanTransition(next string) bool {
	if next == b.Status {
		return true
	}
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCanceled
	case BookingStatusConfirmed:
		return next == BookingStatusCanceled
	}
	return false
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}
