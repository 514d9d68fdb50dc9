package server

import (
	"critiq/internal/models"
	"critiq/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// reviewWithTicketRequest carries a ticket and its review created together
// in one step, for reviewing a work nobody has asked about yet.
type reviewWithTicketRequest struct {
	Ticket validation.TicketInput `json:"ticket"`
	Review validation.ReviewInput `json:"review"`
}

// CreateReview posts a review in response to an existing ticket.
func (s *Server) CreateReview(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	ticketID, err := parseID(c, "ticketId")
	if err != nil {
		return nil
	}

	var input validation.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.Create(c.Context(), userID, ticketID, input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// CreateReviewWithTicket creates a ticket and its review atomically.
func (s *Server) CreateReviewWithTicket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req reviewWithTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.CreateWithTicket(c.Context(), userID, req.Ticket, req.Review)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetReview fetches a single review by ID.
func (s *Server) GetReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.Get(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(review)
}

// UpdateReview edits a review owned by the authenticated user.
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var input validation.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.Update(c.Context(), userID, id, input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(review)
}

// DeleteReview removes a review owned by the authenticated user.
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Delete(c.Context(), userID, id); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
