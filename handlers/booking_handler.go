package handlers

import (
	"fmt"
	"time"

	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/stayscout/travel_api/notifications"
	"github.com/stayscout/travel_api/services"
	"github.com/stayscout/travel_api/utils"
	"github.com/stayscout/travel_api/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ListingID  string  `json:"listing_id" validate:"required,uuid"`
	StartDate  string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalPrice float64 `json:"total_price" validate:"required,gt=0"`
}

type UpdateBookingRequest struct {
	StartDate  *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	TotalPrice *float64 `json:"total_price" validate:"omitempty,gt=0"`
	Status     *string  `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
}

// ListBookings returns the caller's bookings plus bookings made against
// listings the caller hosts, newest first.
func ListBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var bookings []models.Booking
	err := database.DB.
		Preload("Listing").
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("bookings.guest_id = ? OR listings.host_id = ?", userID, userID).
		Order("bookings.created_at desc").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Listing").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.GuestID != userID && booking.Listing.HostID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this booking"})
	}
	return c.JSON(booking)
}

// CreateBooking records the caller as guest. The referenced listing must
// exist and the stay must end after it starts.
func CreateBooking(c *fiber.Ctx) error {
	guestID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)
	if !endDate.After(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"end_date": "must be after start_date"},
		})
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", req.ListingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			ListingID:  listing.ID,
			GuestID:    guestID,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalPrice: req.TotalPrice,
			Status:     models.BookingStatusPending,
			Reference:  reference,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	booking.Listing = listing
	websocket.PublishBookingEvent(&booking, "booking.created")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func UpdateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Listing").Preload("Guest").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	isGuest := booking.GuestID == userID
	isHost := booking.Listing.HostID == userID
	if !isGuest && !isHost {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this booking"})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	if req.StartDate != nil || req.EndDate != nil || req.TotalPrice != nil {
		if !isGuest {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the guest can amend booking details"})
		}
		if booking.Status != models.BookingStatusPending {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending bookings can be amended"})
		}
	}

	if req.StartDate != nil {
		booking.StartDate, _ = time.Parse(dateLayout, *req.StartDate)
	}
	if req.EndDate != nil {
		booking.EndDate, _ = time.Parse(dateLayout, *req.EndDate)
	}
	if !booking.EndDate.After(booking.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"end_date": "must be after start_date"},
		})
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}

	statusChanged := false
	if req.Status != nil && *req.Status != booking.Status {
		next := *req.Status
		if !booking.CanTransition(next) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot change booking status from %s to %s", booking.Status, next),
			})
		}
		if next == models.BookingStatusConfirmed && !isHost {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the host can confirm a booking"})
		}
		booking.Status = next
		statusChanged = true
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	if statusChanged {
		websocket.PublishBookingEvent(&booking, "booking."+booking.Status)
		switch booking.Status {
		case models.BookingStatusConfirmed:
			go notifications.SendBookingConfirmed(booking)
			go services.GenerateBookingReceipt(booking)
		case models.BookingStatusCanceled:
			go notifications.SendBookingCanceled(booking)
		}
	}

	return c.JSON(booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Listing").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.GuestID != userID && booking.Listing.HostID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this booking"})
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
