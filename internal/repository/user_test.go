package repository

import (
	"context"
	"testing"

	"critiq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "marcel", Email: "marcel@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	dup := &models.User{Username: "marcel", Email: "other@example.com", Password: "x"}
	err := repo.Create(ctx, dup)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "marcel", Email: "marcel@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	byUsername, err := repo.GetByUsername(ctx, "marcel")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := repo.GetByEmail(ctx, "marcel@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	// Missing rows are (nil, nil), not an error: callers branch on presence.
	missing, err := repo.GetByUsername(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.GetByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 424242)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
