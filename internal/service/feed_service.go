package service

import (
	"context"

	"critiq/internal/models"
	"critiq/internal/observability"
	"critiq/internal/repository"
)

// FeedService assembles the merged ticket/review feeds.
type FeedService struct {
	ticketRepo repository.TicketRepository
	reviewRepo repository.ReviewRepository
	followRepo repository.FollowRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(ticketRepo repository.TicketRepository, reviewRepo repository.ReviewRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		followRepo: followRepo,
	}
}

// GetPosts returns the viewing user's own tickets and reviews merged,
// newest first.
func (s *FeedService) GetPosts(ctx context.Context, userID uint) ([]models.PostItem, error) {
	tickets, err := s.ticketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := s.merge(ctx, userID, tickets, reviews)
	observability.FeedItemsReturned.WithLabelValues("posts").Observe(float64(len(items)))
	return items, nil
}

// GetFlux returns the viewing user's main feed: tickets authored by the
// user or anyone they follow, and reviews authored by the user, by a
// followed user, or attached to one of the user's own tickets.
func (s *FeedService) GetFlux(ctx context.Context, userID uint) ([]models.PostItem, error) {
	followedIDs, err := s.followRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(followedIDs, userID)

	tickets, err := s.ticketRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListForFlux(ctx, authorIDs, userID)
	if err != nil {
		return nil, err
	}

	items := s.merge(ctx, userID, tickets, reviews)
	observability.FeedItemsReturned.WithLabelValues("flux").Observe(float64(len(items)))
	return items, nil
}

// merge tags both record sets, sorts them newest first and annotates each
// ticket item with whether the viewing user already reviewed it.
func (s *FeedService) merge(ctx context.Context, userID uint, tickets []models.Ticket, reviews []models.Review) []models.PostItem {
	items := make([]models.PostItem, 0, len(tickets)+len(reviews))
	ticketIDs := make([]uint, 0, len(tickets))
	for i := range tickets {
		items = append(items, models.NewTicketItem(&tickets[i]))
		ticketIDs = append(ticketIDs, tickets[i].ID)
	}
	for i := range reviews {
		items = append(items, models.NewReviewItem(&reviews[i]))
	}

	models.SortPostItems(items)

	// Annotation is display-only; a lookup failure degrades to unflagged
	// tickets rather than failing the whole feed.
	reviewed, err := s.reviewRepo.ReviewedTicketIDs(ctx, userID, ticketIDs)
	if err != nil {
		return items
	}
	for i := range items {
		if items[i].Kind == models.PostKindTicket {
			items[i].HasReviewed = reviewed[items[i].Ticket.ID]
		}
	}
	return items
}
