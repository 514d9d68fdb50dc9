package server

import (
	"testing"

	"critiq/internal/config"
	"critiq/internal/database"
	"critiq/internal/featureflags"
	"critiq/internal/repository"
	"critiq/internal/service"
	"critiq/internal/validation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server over an in-memory sqlite database. The
// prometheus middleware is left unset so repeated test runs do not fight
// over collector registration.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(db, 5); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Env:       "test",
		MaxRating: 5,
	}

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	followRepo := repository.NewFollowRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		reviewRepo:   reviewRepo,
		followRepo:   followRepo,
		featureFlags: featureflags.NewManager(""),
	}
	validator := validation.NewReviewValidator(cfg.MaxRating)
	s.ticketService = service.NewTicketService(ticketRepo)
	s.reviewService = service.NewReviewService(reviewRepo, ticketRepo, validator, db)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.feedService = service.NewFeedService(ticketRepo, reviewRepo, followRepo)

	return s, db
}
