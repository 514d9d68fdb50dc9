package seed

import (
	"fmt"
	"log"

	"critiq/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTickets  int
	ShouldClean bool
	MaxRating   int
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	maxRating := opts.MaxRating
	if maxRating <= 0 {
		maxRating = 5
	}
	return &Seeder{db: db, factory: NewFactory(db, maxRating)}
}

// Run seeds users, a follow mesh, tickets and reviews.
func (s *Seeder) Run(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d tickets...", opts.NumUsers, opts.NumTickets)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	follows, err := s.createFollowMesh(users)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	tickets, err := s.createTickets(users, opts.NumTickets)
	if err != nil {
		return fmt.Errorf("failed to create tickets: %w", err)
	}
	log.Printf("✓ %d tickets created", len(tickets))

	reviews, err := s.createReviews(users, tickets)
	if err != nil {
		return fmt.Errorf("failed to create reviews: %w", err)
	}
	log.Printf("✓ %d reviews created", reviews)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE reviews, tickets, user_follows, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// createFollowMesh subscribes every user to a handful of others so that
// flux feeds have content from multiple authors.
func (s *Seeder) createFollowMesh(users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, follower := range users {
		want := s.factory.rng.Intn(5) + 1
		seen := map[uint]bool{follower.ID: true}
		for len(seen)-1 < want && len(seen) < len(users) {
			target := users[s.factory.rng.Intn(len(users))]
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			if _, err := s.factory.CreateFollow(follower, target); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func (s *Seeder) createTickets(users []*models.User, n int) ([]*models.Ticket, error) {
	tickets := make([]*models.Ticket, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		ticket, err := s.factory.CreateTicket(author)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

// createReviews gives roughly two thirds of tickets a review from a user
// who is not the ticket author. One review per (ticket, user) pair.
func (s *Seeder) createReviews(users []*models.User, tickets []*models.Ticket) (int, error) {
	created := 0
	for _, ticket := range tickets {
		if s.factory.rng.Intn(3) == 0 {
			continue
		}
		reviewer := users[s.factory.rng.Intn(len(users))]
		if reviewer.ID == ticket.UserID {
			continue
		}
		if _, err := s.factory.CreateReview(reviewer, ticket); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
