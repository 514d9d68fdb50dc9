package service

import (
	"context"
	"fmt"

	"critiq/internal/models"
	"critiq/internal/observability"
	"critiq/internal/repository"
)

// FollowService maintains the directed, irreflexive, duplicate-free follow
// graph between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates an edge from followerID to the user named targetUsername.
func (s *FollowService) Follow(ctx context.Context, followerID uint, targetUsername string) (*models.UserFollow, error) {
	follower, err := s.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if follower.Username == targetUsername {
		observability.FollowOperations.WithLabelValues("follow", "self_follow").Inc()
		return nil, models.NewSelfFollowError()
	}

	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		observability.FollowOperations.WithLabelValues("follow", "not_found").Inc()
		return nil, &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("User %s does not exist", targetUsername),
		}
	}
	// Username comparison above covers the common case; the ID check also
	// guards against a rename between lookup and insert.
	if target.ID == followerID {
		observability.FollowOperations.WithLabelValues("follow", "self_follow").Inc()
		return nil, models.NewSelfFollowError()
	}

	exists, err := s.followRepo.Exists(ctx, followerID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		observability.FollowOperations.WithLabelValues("follow", "duplicate").Inc()
		return nil, models.NewAlreadyFollowingError(target.Username)
	}

	follow := &models.UserFollow{
		UserID:         followerID,
		FollowedUserID: target.ID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		// The unique index is the authority under concurrent submissions.
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeAlreadyFollowing {
			observability.FollowOperations.WithLabelValues("follow", "duplicate").Inc()
			return nil, models.NewAlreadyFollowingError(target.Username)
		}
		return nil, err
	}

	observability.FollowOperations.WithLabelValues("follow", "ok").Inc()
	follow.FollowedUser = *target
	return follow, nil
}

// Unfollow removes the edge from followerID to targetUserID.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetUserID uint) error {
	removed, err := s.followRepo.Delete(ctx, followerID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		observability.FollowOperations.WithLabelValues("unfollow", "not_found").Inc()
		return models.NewFollowNotFoundError()
	}
	observability.FollowOperations.WithLabelValues("unfollow", "ok").Inc()
	return nil
}

// Following returns the edges where userID is the follower.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	return s.followRepo.Following(ctx, userID)
}

// Followers returns the edges where userID is the followed user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	return s.followRepo.Followers(ctx, userID)
}
