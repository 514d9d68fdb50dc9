package models

import "time"

// Field length limits shared by the validators and the column definitions.
const (
	ReviewHeadlineMaxLen = 128
	ReviewBodyMaxLen     = 8192
)

// Review is a rated response to a ticket.
//
// The composite unique index on (ticket_id, user_id) enforces the
// one-review-per-author rule at the storage layer; the service pre-check is
// only a fast path for the common case. The rating range constraint is
// installed at migration time from the configured maximum so the validator
// and the schema share one source of truth.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;uniqueIndex:idx_reviews_ticket_user" json:"ticket_id"`
	Ticket    Ticket    `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"ticket"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_ticket_user" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Headline  string    `gorm:"size:128;not null" json:"headline"`
	Body      string    `gorm:"size:8192" json:"body"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Review) TableName() string {
	return "reviews"
}
