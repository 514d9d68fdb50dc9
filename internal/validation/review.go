package validation

import (
	"fmt"
	"strings"

	"critiq/internal/models"
)

// ReviewInput holds raw user-submitted review fields.
type ReviewInput struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Rating   int    `json:"rating"`
}

// ReviewValidator validates review submissions against the configured
// maximum rating. The same configured value drives the storage CHECK
// constraint so the two can never drift apart.
type ReviewValidator struct {
	MaxRating int
}

// NewReviewValidator returns a validator bound to the given maximum rating.
func NewReviewValidator(maxRating int) ReviewValidator {
	return ReviewValidator{MaxRating: maxRating}
}

// Validate checks a review submission and returns the normalized input, or
// a validation error carrying a field-level error map.
func (v ReviewValidator) Validate(in ReviewInput) (ReviewInput, error) {
	fields := models.FieldErrors{}

	in.Headline = strings.TrimSpace(in.Headline)
	in.Body = strings.TrimSpace(in.Body)

	if in.Headline == "" {
		fields["headline"] = "Headline is required"
	} else if len(in.Headline) > models.ReviewHeadlineMaxLen {
		fields["headline"] = fmt.Sprintf("Headline must be at most %d characters", models.ReviewHeadlineMaxLen)
	}

	if len(in.Body) > models.ReviewBodyMaxLen {
		fields["body"] = fmt.Sprintf("Body must be at most %d characters", models.ReviewBodyMaxLen)
	}

	if in.Rating < 0 || in.Rating > v.MaxRating {
		fields["rating"] = fmt.Sprintf("Rating must be between 0 and %d", v.MaxRating)
	}

	if len(fields) > 0 {
		return ReviewInput{}, models.NewFieldValidationError(fields)
	}
	return in, nil
}
