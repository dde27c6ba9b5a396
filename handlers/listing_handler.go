package handlers

import (
	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/gofiber/fiber/v2"
)

type CreateListingRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Description   string  `json:"description" validate:"required"`
	Location      string  `json:"location" validate:"required,max=200"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

type UpdateListingRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=200"`
	Description   *string  `json:"description" validate:"omitempty,min=1"`
	Location      *string  `json:"location" validate:"omitempty,max=200"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gt=0"`
}

func ListListings(c *fiber.Ctx) error {
	var listings []models.Listing
	if err := database.DB.Preload("Photos").Order("created_at desc").Find(&listings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch listings"})
	}
	return c.JSON(listings)
}

func GetListing(c *fiber.Ctx) error {
	listingID := c.Params("listingId")

	var listing models.Listing
	if err := database.DB.Preload("Photos").First(&listing, "id = ?", listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	return c.JSON(listing)
}

// CreateListing always records the caller as host, whatever the payload says.
func CreateListing(c *fiber.Ctx) error {
	hostID := currentUserID(c)

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	listing := models.Listing{
		HostID:        hostID,
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create listing"})
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

func UpdateListing(c *fiber.Ctx) error {
	userID := currentUserID(c)
	listingID := c.Params("listingId")

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	if listing.HostID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the host can update this listing"})
	}

	var req UpdateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	if req.Name != nil {
		listing.Name = *req.Name
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.PricePerNight != nil {
		listing.PricePerNight = *req.PricePerNight
	}

	if err := database.DB.Save(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update listing"})
	}
	return c.JSON(listing)
}

func DeleteListing(c *fiber.Ctx) error {
	userID := currentUserID(c)
	listingID := c.Params("listingId")

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	if listing.HostID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the host can delete this listing"})
	}

	if err := database.DB.Delete(&listing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete listing"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
