package models

import (
	"sort"
	"time"
)

// PostKind discriminates the two item types a feed can carry.
type PostKind string

const (
	// PostKindTicket marks a feed item wrapping a Ticket.
	PostKindTicket PostKind = "TICKET"
	// PostKindReview marks a feed item wrapping a Review.
	PostKindReview PostKind = "REVIEW"
)

// PostItem is a tagged union over tickets and reviews for feed rendering.
// Exactly one of Ticket or Review is set, matching Kind.
type PostItem struct {
	Kind   PostKind `json:"kind"`
	Ticket *Ticket  `json:"ticket,omitempty"`
	Review *Review  `json:"review,omitempty"`
	// HasReviewed is only meaningful for ticket items: whether the viewing
	// user already posted a review against this ticket.
	HasReviewed bool `json:"has_reviewed,omitempty"`
}

// NewTicketItem wraps a ticket as a feed item.
func NewTicketItem(t *Ticket) PostItem {
	return PostItem{Kind: PostKindTicket, Ticket: t}
}

// NewReviewItem wraps a review as a feed item.
func NewReviewItem(r *Review) PostItem {
	return PostItem{Kind: PostKindReview, Review: r}
}

// CreatedAt returns the creation timestamp of the wrapped record.
func (p PostItem) CreatedAt() time.Time {
	if p.Kind == PostKindReview && p.Review != nil {
		return p.Review.CreatedAt
	}
	if p.Ticket != nil {
		return p.Ticket.CreatedAt
	}
	return time.Time{}
}

// id returns the wrapped record's primary key, used as a sort tie-breaker.
func (p PostItem) id() uint {
	if p.Kind == PostKindReview && p.Review != nil {
		return p.Review.ID
	}
	if p.Ticket != nil {
		return p.Ticket.ID
	}
	return 0
}

// SortPostItems orders feed items newest first. Items sharing a timestamp
// are ordered reviews before tickets, then by descending ID, so feed pages
// are stable across requests regardless of fetch order.
func SortPostItems(items []PostItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].CreatedAt(), items[j].CreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		if items[i].Kind != items[j].Kind {
			return items[i].Kind == PostKindReview
		}
		return items[i].id() > items[j].id()
	})
}
