package services

import (
	"context"
	"errors"
	"log"
	"time"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/adapters/persistence/repositories"
	"shopadmin/internal/config"
	"shopadmin/internal/core/domain"
	"shopadmin/internal/pkg/jwt"
	"shopadmin/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// RegisterInput represents admin/staff account creation input
type RegisterInput struct {
	FullName string `json:"fullName" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SessionMeta carries request metadata recorded on the session
type SessionMeta struct {
	IP        string
	UserAgent string
	Location  string
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// CreateAdmin creates the singleton admin account. It fails with
// ErrAdminAlreadyExists once any admin user is present; the check and the
// insert are not isolated against concurrent callers.
func (s *AuthService) CreateAdmin(ctx context.Context, input *RegisterInput) (*models.User, error) {
	_, err := s.userRepo.GetByRole(ctx, models.RoleAdmin)
	if err == nil {
		return nil, domain.ErrAdminAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return admin, nil
}

// Login authenticates a user and opens a session
func (s *AuthService) Login(ctx context.Context, input *LoginInput, meta *SessionMeta) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	if err := s.openSession(ctx, user.ID, accessToken, refreshToken, meta); err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates a refresh token and issues a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if !session.IsActive {
		return nil, domain.ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	// Token rotation: the old session is closed before a new one opens
	if err := s.sessionRepo.Deactivate(ctx, session.ID); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	meta := &SessionMeta{IP: session.IP, UserAgent: session.UserAgent, Location: session.Location}
	if err := s.openSession(ctx, user.ID, accessToken, newRefreshToken, meta); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout closes the session identified by the refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessionRepo.DeactivateByRefreshToken(ctx, refreshToken); err != nil {
		return err
	}
	log.Printf("✅ User logged out")
	return nil
}

// LogoutAll closes every session for a user
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	if err := s.sessionRepo.DeactivateAllByUserID(ctx, userID); err != nil {
		return err
	}
	log.Printf("✅ All sessions closed for user ID: %d", userID)
	return nil
}

// ForgotPassword checks the account exists; the response is uniform either
// way so the endpoint cannot be used to enumerate emails. Actual delivery
// of a reset message is handled outside this service.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("⚠️ Password reset requested for unknown email")
		return nil
	}
	log.Printf("✅ Password reset requested: %s", email)
	return nil
}

// ResetPassword replaces a user's password after verifying the old one,
// then closes their other sessions.
func (s *AuthService) ResetPassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if !password.Verify(oldPassword, user.Password) {
		return domain.ErrInvalidCredentials
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.sessionRepo.DeactivateAllByUserID(ctx, userID); err != nil {
		return err
	}

	log.Printf("✅ Password reset for user ID: %d", userID)
	return nil
}

// MakeStaff assigns the staff role to an existing user
func (s *AuthService) MakeStaff(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = models.RoleStaff
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User %s is now staff", user.Email)
	return user, nil
}

// Sessions lists a user's sessions
func (s *AuthService) Sessions(ctx context.Context, userID uint) ([]*models.Session, error) {
	return s.sessionRepo.ListByUserID(ctx, userID)
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// generateTokens issues an access and refresh token pair
func (s *AuthService) generateTokens(user *models.User) (string, string, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		user.ID,
		uuid.New().String(),
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// openSession records a new session row for an issued token pair
func (s *AuthService) openSession(ctx context.Context, userID uint, accessToken, refreshToken string, meta *SessionMeta) error {
	session := &models.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
		ExpiresAt:    jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
		IsActive:     true,
	}
	if meta != nil {
		session.IP = meta.IP
		session.UserAgent = meta.UserAgent
		session.Location = meta.Location
	}
	return s.sessionRepo.Create(ctx, session)
}
