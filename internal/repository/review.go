package repository

import (
	"context"
	"errors"

	"critiq/internal/models"
	"critiq/internal/observability"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	// GetOwned fetches a review only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID uint) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.Review, error)
	// ListForFlux returns reviews visible in viewerID's flux: authored by
	// any of authorIDs, or attached to a ticket viewerID owns.
	ListForFlux(ctx context.Context, authorIDs []uint, viewerID uint) ([]models.Review, error)
	ExistsForTicketAndUser(ctx context.Context, ticketID, userID uint) (bool, error)
	// ReviewedTicketIDs filters ticketIDs down to those userID has reviewed.
	ReviewedTicketIDs(ctx context.Context, userID uint, ticketIDs []uint) (map[uint]bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review. A unique-index violation on (ticket_id,
// user_id) is the authoritative duplicate signal under concurrent
// submissions and maps to the already-reviewed error.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	defer observability.TrackQuery("create", "reviews")()
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewAlreadyReviewedError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User").
		First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Review, error) {
	var review models.Review
	if err := readDB(r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	defer observability.TrackQuery("update", "reviews")()
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "reviews")()
	if err := r.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User").
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListForFlux(ctx context.Context, authorIDs []uint, viewerID uint) ([]models.Review, error) {
	var reviews []models.Review
	q := readDB(r.db).WithContext(ctx).
		Joins("JOIN tickets ON tickets.id = reviews.ticket_id").
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User").
		Order("reviews.created_at DESC, reviews.id DESC")
	if len(authorIDs) > 0 {
		q = q.Where("reviews.user_id IN ? OR tickets.user_id = ?", authorIDs, viewerID)
	} else {
		q = q.Where("tickets.user_id = ?", viewerID)
	}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsForTicketAndUser(ctx context.Context, ticketID, userID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Review{}).
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) ReviewedTicketIDs(ctx context.Context, userID uint, ticketIDs []uint) (map[uint]bool, error) {
	if len(ticketIDs) == 0 {
		return map[uint]bool{}, nil
	}
	var ids []uint
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND ticket_id IN ?", userID, ticketIDs).
		Pluck("ticket_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	out := make(map[uint]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
