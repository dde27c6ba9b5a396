package main

import (
	"flag"
	"log"

	"github.com/stayscout/travel_api/database"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	listings := flag.Int("listings", 15, "number of listings to create")
	bookings := flag.Int("bookings", 30, "number of bookings to create")
	reviews := flag.Int("reviews", 25, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	flag.Parse()

	database.ConnectDB()
	database.Migrate()

	err := database.Seed(database.SeedOptions{
		Users:    *users,
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	})
	if err != nil {
		log.Fatalf("🔥 Seeding failed: %v", err)
	}
	log.Println("✅ Database seeding completed successfully")
}
