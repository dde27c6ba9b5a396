package routes

import (
	"github.com/stayscout/travel_api/handlers"
	"github.com/stayscout/travel_api/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("", handlers.ListBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Put("/:bookingId", handlers.UpdateBooking)
	booking.Patch("/:bookingId", handlers.UpdateBooking)
	booking.Delete("/:bookingId", handlers.DeleteBooking)
}
