package jobs

import (
	"log"
	"time"

	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/stayscout/travel_api/notifications"
)

// ExpireStalePendingBookings cancels bookings that were never confirmed
// before their check-in date.
func ExpireStalePendingBookings() {
	log.Println("Running job: ExpireStalePendingBookings...")

	today := time.Now().Truncate(24 * time.Hour)

	var staleBookings []models.Booking
	err := database.DB.
		Preload("Listing").
		Preload("Guest").
		Where("status = ? AND start_date < ?", models.BookingStatusPending, today).
		Find(&staleBookings).Error
	if err != nil {
		log.Printf("Error checking for stale pending bookings: %v", err)
		return
	}

	if len(staleBookings) == 0 {
		return
	}

	for _, booking := range staleBookings {
		booking.Status = models.BookingStatusCanceled
		if err := database.DB.Save(&booking).Error; err != nil {
			log.Printf("Error canceling stale booking %s: %v", booking.ID, err)
			continue
		}
		go notifications.SendBookingCanceled(booking)
	}

	log.Printf("Canceled %d stale pending booking(s).", len(staleBookings))
}
