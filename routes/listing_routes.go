package routes

import (
	"github.com/stayscout/travel_api/handlers"
	"github.com/stayscout/travel_api/middleware"
	"github.com/gofiber/fiber/v2"
)

func ListingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Browsing is open to everyone, mutations need a logged-in user.
	api.Get("/listings", handlers.ListListings)
	api.Get("/listings/:listingId", handlers.GetListing)
	api.Get("/listings/:listingId/reviews", handlers.ListListingReviews)

	protected := api.Group("/listings", middleware.Protected())
	protected.Post("", handlers.CreateListing)
	protected.Put("/:listingId", handlers.UpdateListing)
	protected.Patch("/:listingId", handlers.UpdateListing)
	protected.Delete("/:listingId", handlers.DeleteListing)
	protected.Post("/:listingId/reviews", handlers.CreateReview)
	protected.Post("/:listingId/photos", handlers.UploadListingPhoto)
}
