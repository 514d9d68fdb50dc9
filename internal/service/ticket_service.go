// Package service implements business rules on top of the repositories.
package service

import (
	"context"

	"critiq/internal/models"
	"critiq/internal/repository"
	"critiq/internal/validation"
)

// TicketService provides ticket lifecycle business logic.
type TicketService struct {
	ticketRepo repository.TicketRepository
}

// NewTicketService returns a new TicketService.
func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

// Create validates the submission and stores a new ticket for userID.
func (s *TicketService) Create(ctx context.Context, userID uint, in validation.TicketInput) (*models.Ticket, error) {
	in, err := validation.ValidateTicket(in)
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      userID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return s.ticketRepo.GetByID(ctx, ticket.ID)
}

// Get returns a ticket by ID regardless of ownership.
func (s *TicketService) Get(ctx context.Context, id uint) (*models.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

// Update validates the submission and applies it to a ticket owned by
// userID. A ticket owned by someone else reports not-found.
func (s *TicketService) Update(ctx context.Context, userID, ticketID uint, in validation.TicketInput) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetOwned(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}

	in, err = validation.ValidateTicket(in)
	if err != nil {
		return nil, err
	}

	ticket.Title = in.Title
	ticket.Description = in.Description
	ticket.ImageURL = in.ImageURL
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return s.ticketRepo.GetByID(ctx, ticket.ID)
}

// Delete removes a ticket owned by userID along with its reviews.
func (s *TicketService) Delete(ctx context.Context, userID, ticketID uint) error {
	ticket, err := s.ticketRepo.GetOwned(ctx, ticketID, userID)
	if err != nil {
		return err
	}
	return s.ticketRepo.Delete(ctx, ticket.ID)
}
