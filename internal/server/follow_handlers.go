package server

import (
	"strings"

	"critiq/internal/models"

	"github.com/gofiber/fiber/v2"
)

type followRequest struct {
	Username string `json:"username"`
}

// subscriptionsResponse lists who the user follows and who follows them.
type subscriptionsResponse struct {
	Following []models.UserFollow `json:"following"`
	Followers []models.UserFollow `json:"followers"`
}

// GetSubscriptions returns the authenticated user's follow graph.
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	followers, err := s.followService.Followers(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(subscriptionsResponse{
		Following: following,
		Followers: followers,
	})
}

// FollowUser subscribes the authenticated user to another user by username.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req followRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(models.FieldErrors{
				"username": "is required",
			}))
	}

	follow, err := s.followService.Follow(c.Context(), userID, username)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser removes a subscription to the user with the given ID.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	targetID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), userID, targetID); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
