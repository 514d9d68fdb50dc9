package models

import "time"

// Field length limits shared by the validators and the column definitions.
const (
	TicketTitleMaxLen       = 128
	TicketDescriptionMaxLen = 2048
)

// Ticket is a request for a review of a book or article.
//
// Tickets are hard-deleted; the reviews foreign key cascades so a deleted
// ticket takes its reviews with it.
type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"size:2048" json:"description"`
	ImageURL    string    `json:"image_url"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}
