// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"critiq/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db        *gorm.DB
	rng       *rand.Rand
	maxRating int
	// hashing every seed password is slow; reuse one hash
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
// All seeded users share the password "password1234".
func NewFactory(db *gorm.DB, maxRating int) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.DefaultCost)
	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		maxRating:    maxRating,
		passwordHash: string(hashed),
	}
}

// pastTime returns a timestamp spread over the last maxDays days so feeds
// have a realistic ordering to exercise.
func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Password: f.passwordHash,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTicket constructs and persists a review request for the given user.
func (f *Factory) CreateTicket(user *models.User, overrides ...func(*models.Ticket)) (*models.Ticket, error) {
	ticket := &models.Ticket{
		Title:       fmt.Sprintf("%s by %s", gofakeit.BookTitle(), gofakeit.BookAuthor()),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/400/600", gofakeit.UUID()),
		UserID:      user.ID,
		CreatedAt:   f.pastTime(90),
	}

	for _, override := range overrides {
		override(ticket)
	}

	if err := f.db.Create(ticket).Error; err != nil {
		return nil, err
	}
	return ticket, nil
}

// CreateReview constructs and persists a review of the given ticket. The
// review timestamp is always after the ticket it responds to.
func (f *Factory) CreateReview(user *models.User, ticket *models.Ticket, overrides ...func(*models.Review)) (*models.Review, error) {
	createdAt := ticket.CreatedAt.Add(time.Duration(f.rng.Intn(72)+1) * time.Hour)
	if createdAt.After(time.Now()) {
		createdAt = time.Now()
	}

	review := &models.Review{
		TicketID:  ticket.ID,
		UserID:    user.ID,
		Headline:  gofakeit.Sentence(6),
		Body:      gofakeit.Paragraph(2, 4, 10, "\n"),
		Rating:    f.rng.Intn(f.maxRating + 1),
		CreatedAt: createdAt,
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateFollow persists a follow edge from follower to followed.
func (f *Factory) CreateFollow(follower, followed *models.User) (*models.UserFollow, error) {
	follow := &models.UserFollow{
		UserID:         follower.ID,
		FollowedUserID: followed.ID,
	}
	if err := f.db.Create(follow).Error; err != nil {
		return nil, err
	}
	return follow, nil
}
