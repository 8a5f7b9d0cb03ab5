package services

import (
	"context"
	"testing"
	"time"

	"shopadmin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCleanupRun(t *testing.T) {
	sessionRepo := newFakeSessionRepo()

	// One live session, one past expiry, one already closed
	require.NoError(t, sessionRepo.Create(context.Background(), &models.Session{
		UserID:       1,
		RefreshToken: "live",
		IsActive:     true,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}))
	require.NoError(t, sessionRepo.Create(context.Background(), &models.Session{
		UserID:       1,
		RefreshToken: "stale",
		IsActive:     true,
		ExpiresAt:    time.Now().Add(-24 * time.Hour),
	}))
	require.NoError(t, sessionRepo.Create(context.Background(), &models.Session{
		UserID:       2,
		RefreshToken: "closed",
		IsActive:     false,
		ExpiresAt:    time.Now().Add(-48 * time.Hour),
	}))

	NewSessionCleanupService(sessionRepo).Run()

	// The live session survives; the stale one is deactivated and the
	// already-closed one is purged
	live, err := sessionRepo.GetByRefreshToken(context.Background(), "live")
	require.NoError(t, err)
	assert.True(t, live.IsActive)

	stale, err := sessionRepo.GetByRefreshToken(context.Background(), "stale")
	require.NoError(t, err)
	assert.False(t, stale.IsActive)

	_, err = sessionRepo.GetByRefreshToken(context.Background(), "closed")
	assert.Error(t, err)
}
