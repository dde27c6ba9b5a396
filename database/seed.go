package database

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/stayscout/travel_api/models"
	"github.com/stayscout/travel_api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SeedOptions struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

var firstNames = []string{
	"John", "Jane", "Mike", "Sarah", "David", "Emma", "Chris", "Lisa", "Tom", "Anna",
	"James", "Mary", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
}

var propertyTypes = []string{
	"Cozy Apartment", "Luxury Villa", "Modern Loft", "Beach House",
	"Mountain Cabin", "City Studio", "Country Cottage", "Penthouse",
	"Townhouse", "Historic Home",
}

var cities = []string{
	"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX",
	"Phoenix, AZ", "Philadelphia, PA", "San Antonio, TX", "San Diego, CA",
	"Dallas, TX", "San Jose, CA", "Austin, TX", "Jacksonville, FL",
	"Fort Worth, TX", "Columbus, OH", "Charlotte, NC", "San Francisco, CA",
}

var amenities = []string{
	"WiFi", "Kitchen", "Air conditioning", "Heating", "Parking",
	"Pool", "Gym", "Balcony", "Garden", "Hot tub", "Fireplace",
	"TV", "Washer", "Dryer",
}

var reviewComments = []string{
	"Amazing place! Highly recommended.",
	"Great location and very clean. Would stay again.",
	"Perfect for a weekend getaway. Host was very responsive.",
	"Beautiful property with all amenities as described.",
	"Good value for money. Close to all attractions.",
	"Lovely place, felt like home. Great experience.",
	"Excellent host and wonderful property. 5 stars!",
	"Very comfortable and well-equipped. Enjoyed our stay.",
	"Nice place but could use some updates. Overall good.",
	"Outstanding property! Exceeded our expectations.",
}

// Seed fills the database with sample users, listings, bookings, and reviews.
func Seed(opts SeedOptions) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.Clear {
		log.Println("Clearing existing data...")
		for _, model := range []interface{}{
			&models.Photo{}, &models.Review{}, &models.Booking{}, &models.Listing{}, &models.User{},
		} {
			if err := DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}
		}
		log.Println("✅ Existing data cleared")
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		users, err := seedUsers(tx, rng, opts.Users)
		if err != nil {
			return err
		}
		log.Printf("✅ Created %d users", len(users))

		listings, err := seedListings(tx, rng, users, opts.Listings)
		if err != nil {
			return err
		}
		log.Printf("✅ Created %d listings", len(listings))

		bookings, err := seedBookings(tx, rng, users, listings, opts.Bookings)
		if err != nil {
			return err
		}
		log.Printf("✅ Created %d bookings", len(bookings))

		reviews, err := seedReviews(tx, rng, users, listings, opts.Reviews)
		if err != nil {
			return err
		}
		log.Printf("✅ Created %d reviews", len(reviews))

		return nil
	})
}

func seedUsers(tx *gorm.DB, rng *rand.Rand, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		user := models.User{
			FullName: fmt.Sprintf("%s %s", first, last),
			Email:    fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Password: string(hashed),
		}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedListings(tx *gorm.DB, rng *rand.Rand, users []models.User, count int) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		host := users[rng.Intn(len(users))]
		propertyType := propertyTypes[rng.Intn(len(propertyTypes))]
		city := cities[rng.Intn(len(cities))]

		listing := models.Listing{
			HostID:        host.ID,
			Name:          fmt.Sprintf("%s in %s", propertyType, strings.SplitN(city, ",", 2)[0]),
			Description:   propertyDescription(rng, propertyType, city),
			Location:      city,
			PricePerNight: float64(50 + rng.Intn(451)),
		}
		if err := tx.Create(&listing).Error; err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func propertyDescription(rng *rand.Rand, propertyType, city string) string {
	picked := make([]string, 0, 6)
	for _, i := range rng.Perm(len(amenities))[:3+rng.Intn(4)] {
		picked = append(picked, amenities[i])
	}
	return fmt.Sprintf(
		"Beautiful %s located in %s. This property features %s. Perfect for travelers looking for comfort and convenience. Close to major attractions and public transportation.",
		strings.ToLower(propertyType),
		strings.SplitN(city, ",", 2)[0],
		strings.Join(picked, ", "),
	)
}

func seedBookings(tx *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, count int) ([]models.Booking, error) {
	// 20% pending, 70% confirmed, 10% canceled.
	statuses := []string{
		models.BookingStatusPending, models.BookingStatusPending,
		models.BookingStatusConfirmed, models.BookingStatusConfirmed, models.BookingStatusConfirmed,
		models.BookingStatusConfirmed, models.BookingStatusConfirmed, models.BookingStatusConfirmed,
		models.BookingStatusConfirmed, models.BookingStatusCanceled,
	}

	bookings := make([]models.Booking, 0, count)
	for i := 0; i < count; i++ {
		guest := users[rng.Intn(len(users))]
		listing := listings[rng.Intn(len(listings))]

		startDate := time.Now().AddDate(0, 0, 1+rng.Intn(180)).Truncate(24 * time.Hour)
		nights := 1 + rng.Intn(14)
		endDate := startDate.AddDate(0, 0, nights)

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return nil, err
		}

		booking := models.Booking{
			ListingID:  listing.ID,
			GuestID:    guest.ID,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalPrice: listing.PricePerNight * float64(nights),
			Status:     statuses[rng.Intn(len(statuses))],
			Reference:  reference,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func seedReviews(tx *gorm.DB, rng *rand.Rand, users []models.User, listings []models.Listing, count int) ([]models.Review, error) {
	type pair struct {
		user    int
		listing int
	}
	seen := make(map[pair]bool)

	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		// Retry a few times to find a user/listing pair not reviewed yet.
		for attempts := 0; attempts < 50; attempts++ {
			u := rng.Intn(len(users))
			l := rng.Intn(len(listings))
			if seen[pair{u, l}] {
				continue
			}
			seen[pair{u, l}] = true

			review := models.Review{
				ListingID: listings[l].ID,
				UserID:    users[u].ID,
				Rating:    1 + rng.Intn(5),
				Comment:   reviewComments[rng.Intn(len(reviewComments))],
			}
			if err := tx.Create(&review).Error; err != nil {
				return nil, err
			}
			reviews = append(reviews, review)
			break
		}
	}
	return reviews, nil
}
