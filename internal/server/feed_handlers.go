package server

import (
	"github.com/gofiber/fiber/v2"

	"critiq/internal/models"
)

// pageOf applies limit/offset to an in-memory merged feed. The feed is
// assembled from two queries and sorted before paging, so slicing here keeps
// the ordering stable across pages.
func pageOf(items []models.PostItem, limit, offset int) []models.PostItem {
	if offset >= len(items) {
		return []models.PostItem{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// GetPosts returns the authenticated user's own tickets and reviews,
// newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	items, err := s.feedService.GetPosts(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	limit, offset := parsePagination(c)
	page := pageOf(items, limit, offset)
	return c.JSON(fiber.Map{
		"items": page,
		"count": len(page),
		"total": len(items),
	})
}

// GetFlux returns the merged feed: posts from followed users, the viewer's
// own posts and any reviews of the viewer's tickets.
func (s *Server) GetFlux(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	items, err := s.feedService.GetFlux(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	limit, offset := parsePagination(c)
	page := pageOf(items, limit, offset)
	return c.JSON(fiber.Map{
		"items": page,
		"count": len(page),
		"total": len(items),
	})
}
