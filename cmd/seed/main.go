// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"critiq/internal/config"
	"critiq/internal/database"
	"critiq/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numTickets := flag.Int("tickets", 100, "Number of tickets to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d tickets, clean=%v\n", *numUsers, *numTickets, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:    *numUsers,
		NumTickets:  *numTickets,
		ShouldClean: *shouldClean,
		MaxRating:   cfg.MaxRating,
	}
	if err := seed.NewSeeder(db, opts).Run(opts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Println("📧 All seeded users have the password: password1234")
}
