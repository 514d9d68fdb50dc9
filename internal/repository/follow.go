package repository

import (
	"context"

	"critiq/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	// Create inserts the edge; a duplicate pair surfaces as an
	// already-following error via the unique index.
	Create(ctx context.Context, follow *models.UserFollow) error
	// Delete removes the edge from follower to followed and reports
	// whether an edge existed.
	Delete(ctx context.Context, followerID, followedID uint) (bool, error)
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	// Following returns edges where userID is the follower, insertion order.
	Following(ctx context.Context, userID uint) ([]models.UserFollow, error)
	// Followers returns edges where userID is the followed user.
	Followers(ctx context.Context, userID uint) ([]models.UserFollow, error)
	// FollowedIDs returns the IDs of all users userID follows.
	FollowedIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.UserFollow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewAlreadyFollowingError("")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND followed_user_id = ?", followerID, followedID).
		Delete(&models.UserFollow{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("user_id = ? AND followed_user_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	var follows []models.UserFollow
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("FollowedUser").
		Order("id").
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]models.UserFollow, error) {
	var follows []models.UserFollow
	if err := readDB(r.db).WithContext(ctx).
		Where("followed_user_id = ?", userID).
		Preload("User").
		Order("id").
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) FollowedIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("user_id = ?", userID).
		Pluck("followed_user_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
