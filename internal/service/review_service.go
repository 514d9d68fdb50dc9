package service

import (
	"context"

	"critiq/internal/models"
	"critiq/internal/repository"
	"critiq/internal/validation"

	"gorm.io/gorm"
)

// ReviewService provides review lifecycle business logic, including the
// one-review-per-author guard and atomic ticket+review pair creation.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	ticketRepo repository.TicketRepository
	validator  validation.ReviewValidator
	db         *gorm.DB
}

// NewReviewService returns a new ReviewService. db is used for the
// ticket+review pair transaction and may be nil in unit tests that do not
// exercise that path.
func NewReviewService(reviewRepo repository.ReviewRepository, ticketRepo repository.TicketRepository, validator validation.ReviewValidator, db *gorm.DB) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		validator:  validator,
		db:         db,
	}
}

// Create validates and stores a review by userID against an existing
// ticket. The pre-check gives a friendly error on the common duplicate
// path; the unique index catches the rest (see repository.Create).
func (s *ReviewService) Create(ctx context.Context, userID, ticketID uint, in validation.ReviewInput) (*models.Review, error) {
	if _, err := s.ticketRepo.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForTicketAndUser(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewAlreadyReviewedError()
	}

	in, err = s.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		TicketID: ticketID,
		UserID:   userID,
		Headline: in.Headline,
		Body:     in.Body,
		Rating:   in.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

// CreateWithTicket creates a ticket and a review against it in one
// transaction, so a failed review submission never leaves an orphan ticket.
func (s *ReviewService) CreateWithTicket(ctx context.Context, userID uint, ticketIn validation.TicketInput, reviewIn validation.ReviewInput) (*models.Review, error) {
	ticketIn, err := validation.ValidateTicket(ticketIn)
	if err != nil {
		return nil, err
	}
	reviewIn, err = s.validator.Validate(reviewIn)
	if err != nil {
		return nil, err
	}

	var reviewID uint
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ticketRepo := repository.NewTicketRepository(tx)
		reviewRepo := repository.NewReviewRepository(tx)

		ticket := &models.Ticket{
			Title:       ticketIn.Title,
			Description: ticketIn.Description,
			ImageURL:    ticketIn.ImageURL,
			UserID:      userID,
		}
		if err := ticketRepo.Create(ctx, ticket); err != nil {
			return err
		}

		review := &models.Review{
			TicketID: ticket.ID,
			UserID:   userID,
			Headline: reviewIn.Headline,
			Body:     reviewIn.Body,
			Rating:   reviewIn.Rating,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}
		reviewID = review.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.reviewRepo.GetByID(ctx, reviewID)
}

// Get fetches a review with its author and ticket loaded.
func (s *ReviewService) Get(ctx context.Context, id uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// Update validates the submission and applies it to a review owned by
// userID. A review owned by someone else reports not-found.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, in validation.ReviewInput) (*models.Review, error) {
	review, err := s.reviewRepo.GetOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	in, err = s.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	review.Headline = in.Headline
	review.Body = in.Body
	review.Rating = in.Rating
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

// Delete removes a review owned by userID.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint) error {
	review, err := s.reviewRepo.GetOwned(ctx, reviewID, userID)
	if err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}
