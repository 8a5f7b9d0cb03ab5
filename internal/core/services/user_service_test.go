package services

import (
	"context"
	"testing"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSetActive(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:       1,
		Email:    "staff@example.com",
		Role:     models.RoleStaff,
		IsActive: true,
	})
	svc := NewUserService(repo)

	user, err := svc.SetActive(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	user, err = svc.SetActive(context.Background(), 1, true)
	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestUserSetActiveNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.SetActive(context.Background(), 404, false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserGetByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
