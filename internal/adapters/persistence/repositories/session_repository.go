package repositories

import (
	"context"
	"time"

	"shopadmin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sessionRepository implements SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new session
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// GetByRefreshToken gets a session by its refresh token
func (r *sessionRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).Where("refresh_token = ?", refreshToken).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByUserID lists a user's sessions, newest first
func (r *sessionRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.Session, error) {
	var sessions []*models.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// Deactivate deactivates a session by ID
func (r *sessionRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// DeactivateByRefreshToken deactivates a session by its refresh token
func (r *sessionRepository) DeactivateByRefreshToken(ctx context.Context, refreshToken string) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("refresh_token = ?", refreshToken).
		Update("is_active", false).Error
}

// DeactivateAllByUserID deactivates all sessions for a user
func (r *sessionRepository) DeactivateAllByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

// DeactivateExpired deactivates every session past its expiry
func (r *sessionRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("is_active = ? AND expires_at < ?", true, time.Now()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// DeleteInactiveBefore removes inactive sessions older than the given age
func (r *sessionRepository) DeleteInactiveBefore(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
