// Package validation enforces field constraints on user-submitted values
// before they reach the persistence layer.
package validation

import (
	"fmt"
	"strings"

	"critiq/internal/models"
)

// TicketInput holds raw user-submitted ticket fields.
type TicketInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ValidateTicket checks a ticket submission and returns the normalized
// input, or a validation error carrying a field-level error map.
func ValidateTicket(in TicketInput) (TicketInput, error) {
	fields := models.FieldErrors{}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	if in.Title == "" {
		fields["title"] = "Title is required"
	} else if len(in.Title) > models.TicketTitleMaxLen {
		fields["title"] = fmt.Sprintf("Title must be at most %d characters", models.TicketTitleMaxLen)
	}

	if len(in.Description) > models.TicketDescriptionMaxLen {
		fields["description"] = fmt.Sprintf("Description must be at most %d characters", models.TicketDescriptionMaxLen)
	}

	if len(fields) > 0 {
		return TicketInput{}, models.NewFieldValidationError(fields)
	}
	return in, nil
}
