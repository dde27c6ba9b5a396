package handlers

import (
	"context"
	"fmt"
	"time"

	config "github.com/stayscout/travel_api/configs"
	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// UploadListingPhoto stores a photo on Cloudinary and attaches it to the
// listing. Host only.
func UploadListingPhoto(c *fiber.Ctx) error {
	userID := currentUserID(c)
	listingID := c.Params("listingId")

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	if listing.HostID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the host can add photos to this listing"})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Photo file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Photo storage is not configured."})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "travel_listing_photos",
		PublicID: fmt.Sprintf("listing_%s_%s", listingID, file.Filename),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo."})
	}

	photo := models.Photo{
		ListingID: listing.ID,
		FileName:  file.Filename,
		FileURL:   uploadResult.SecureURL,
	}
	if err := database.DB.Create(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo."})
	}

	return c.Status(fiber.StatusCreated).JSON(photo)
}
