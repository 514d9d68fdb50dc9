package server

import (
	"critiq/internal/models"
	"critiq/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket creates a review request for the authenticated user.
func (s *Server) CreateTicket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var input validation.TicketInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ticket, err := s.ticketService.Create(c.Context(), userID, input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetTicket fetches a single ticket by ID.
func (s *Server) GetTicket(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	ticket, err := s.ticketService.Get(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(ticket)
}

// UpdateTicket edits a ticket owned by the authenticated user.
func (s *Server) UpdateTicket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var input validation.TicketInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ticket, err := s.ticketService.Update(c.Context(), userID, id, input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(ticket)
}

// DeleteTicket removes a ticket owned by the authenticated user, along with
// any reviews attached to it.
func (s *Server) DeleteTicket(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.ticketService.Delete(c.Context(), userID, id); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Ticket deleted"})
}
