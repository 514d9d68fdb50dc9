package service

import (
	"context"
	"testing"
	"time"

	"critiq/internal/models"
)

func TestFeedServiceGetPostsOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tickets := noopTicketRepo()
	tickets.listByUserFn = func(context.Context, uint) ([]models.Ticket, error) {
		return []models.Ticket{
			{ID: 1, UserID: 5, Title: "First ticket", CreatedAt: base.Add(time.Hour)},
			{ID: 2, UserID: 5, Title: "Second ticket", CreatedAt: base},
		}, nil
	}
	reviews := noopReviewRepo()
	reviews.listByUserFn = func(context.Context, uint) ([]models.Review, error) {
		return []models.Review{
			{ID: 3, UserID: 5, TicketID: 9, CreatedAt: base.Add(2 * time.Hour)},
		}, nil
	}

	svc := NewFeedService(tickets, reviews, noopFollowRepo())
	items, err := svc.GetPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Kind != models.PostKindReview || items[0].Review.ID != 3 {
		t.Fatalf("expected newest review first, got %#v", items[0])
	}
	if items[1].Kind != models.PostKindTicket || items[1].Ticket.ID != 1 {
		t.Fatalf("expected newer ticket second, got %#v", items[1])
	}
	if items[2].Kind != models.PostKindTicket || items[2].Ticket.ID != 2 {
		t.Fatalf("expected oldest ticket last, got %#v", items[2])
	}
}

func TestFeedServiceEqualTimestampsReviewFirst(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tickets := noopTicketRepo()
	tickets.listByUserFn = func(context.Context, uint) ([]models.Ticket, error) {
		return []models.Ticket{{ID: 7, UserID: 5, CreatedAt: at}}, nil
	}
	reviews := noopReviewRepo()
	reviews.listByUserFn = func(context.Context, uint) ([]models.Review, error) {
		return []models.Review{{ID: 2, UserID: 5, TicketID: 7, CreatedAt: at}}, nil
	}

	svc := NewFeedService(tickets, reviews, noopFollowRepo())
	items, err := svc.GetPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Kind != models.PostKindReview {
		t.Fatalf("expected review before ticket at equal timestamps, got %v", items[0].Kind)
	}
}

func TestFeedServiceGetFluxIncludesSelf(t *testing.T) {
	var ticketAuthors []uint
	var reviewAuthors []uint
	var viewer uint

	tickets := noopTicketRepo()
	tickets.listByAuthorsFn = func(_ context.Context, authorIDs []uint) ([]models.Ticket, error) {
		ticketAuthors = authorIDs
		return nil, nil
	}
	reviews := noopReviewRepo()
	reviews.listForFluxFn = func(_ context.Context, authorIDs []uint, viewerID uint) ([]models.Review, error) {
		reviewAuthors = authorIDs
		viewer = viewerID
		return nil, nil
	}
	follows := noopFollowRepo()
	follows.followedIDsFn = func(context.Context, uint) ([]uint, error) {
		return []uint{2, 3}, nil
	}

	svc := NewFeedService(tickets, reviews, follows)
	if _, err := svc.GetFlux(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[uint]bool{2: true, 3: true, 5: true}
	for _, got := range [][]uint{ticketAuthors, reviewAuthors} {
		if len(got) != len(want) {
			t.Fatalf("expected authors 2,3,5, got %v", got)
		}
		for _, id := range got {
			if !want[id] {
				t.Fatalf("unexpected author %d in %v", id, got)
			}
		}
	}
	if viewer != 5 {
		t.Fatalf("expected viewer 5, got %d", viewer)
	}
}

func TestFeedServiceGetFluxNoFollows(t *testing.T) {
	// A user who follows nobody still sees their own posts and reviews of
	// their tickets.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tickets := noopTicketRepo()
	tickets.listByAuthorsFn = func(_ context.Context, authorIDs []uint) ([]models.Ticket, error) {
		if len(authorIDs) != 1 || authorIDs[0] != 5 {
			t.Fatalf("expected only the viewer as author, got %v", authorIDs)
		}
		return []models.Ticket{{ID: 1, UserID: 5, CreatedAt: base}}, nil
	}
	reviews := noopReviewRepo()
	reviews.listForFluxFn = func(context.Context, []uint, uint) ([]models.Review, error) {
		// A stranger's review of the viewer's ticket is still visible.
		return []models.Review{{ID: 9, UserID: 77, TicketID: 1, CreatedAt: base.Add(time.Hour)}}, nil
	}

	svc := NewFeedService(tickets, reviews, noopFollowRepo())
	items, err := svc.GetFlux(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Review == nil || items[0].Review.UserID != 77 {
		t.Fatalf("expected stranger review first, got %#v", items[0])
	}
}

func TestFeedServiceHasReviewedAnnotation(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tickets := noopTicketRepo()
	tickets.listByAuthorsFn = func(context.Context, []uint) ([]models.Ticket, error) {
		return []models.Ticket{
			{ID: 1, UserID: 2, CreatedAt: base},
			{ID: 2, UserID: 3, CreatedAt: base.Add(time.Minute)},
		}, nil
	}
	reviews := noopReviewRepo()
	reviews.reviewedTicketIDsFn = func(context.Context, uint, []uint) (map[uint]bool, error) {
		return map[uint]bool{1: true}, nil
	}

	svc := NewFeedService(tickets, reviews, noopFollowRepo())
	items, err := svc.GetFlux(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range items {
		want := item.Ticket.ID == 1
		if item.HasReviewed != want {
			t.Fatalf("ticket %d: HasReviewed = %v, want %v", item.Ticket.ID, item.HasReviewed, want)
		}
	}
}
