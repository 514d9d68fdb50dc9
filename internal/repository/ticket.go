package repository

import (
	"context"
	"errors"

	"critiq/internal/models"
	"critiq/internal/observability"

	"gorm.io/gorm"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id uint) (*models.Ticket, error)
	// GetOwned fetches a ticket only when it belongs to userID; a ticket
	// owned by someone else is indistinguishable from a missing one.
	GetOwned(ctx context.Context, id, userID uint) (*models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.Ticket, error)
	// ListByAuthors returns tickets whose author is any of authorIDs,
	// newest first. Used by the flux feed.
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Ticket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository returns a new TicketRepository implementation.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	defer observability.TrackQuery("create", "tickets")()
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := readDB(r.db).WithContext(ctx).Preload("User").First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ticket", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ticket, nil
}

func (r *ticketRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := readDB(r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ticket", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ticket, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	defer observability.TrackQuery("update", "tickets")()
	if err := r.db.WithContext(ctx).Save(ticket).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the ticket; its reviews go with it via the cascading
// foreign key.
func (r *ticketRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "tickets")()
	if err := r.db.WithContext(ctx).Delete(&models.Ticket{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&tickets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tickets, nil
}

func (r *ticketRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Ticket, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var tickets []models.Ticket
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&tickets).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tickets, nil
}
