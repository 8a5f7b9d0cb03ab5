package services

import (
	"context"
	"errors"
	"log"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/adapters/persistence/repositories"
	"shopadmin/internal/core/domain"
	"shopadmin/internal/pkg/pagination"

	"gorm.io/gorm"
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents user listing input
type ListUsersInput struct {
	Page   int
	Limit  int
	Role   string
	Search string
}

// List lists users filtered by role, searching name and email
func (s *UserService) List(ctx context.Context, input *ListUsersInput) (*pagination.Result[models.User], error) {
	var filter pagination.Expr
	if input.Role != "" {
		filter = pagination.Eq("role", input.Role)
	}

	return s.userRepo.List(ctx, pagination.Query{
		Page:         input.Page,
		Limit:        input.Limit,
		Filter:       filter,
		Search:       input.Search,
		SearchFields: []string{"full_name", "email"},
	})
}

// GetByID gets a user by ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetActive activates or deactivates an account. Users are never hard
// deleted; deactivation is the terminal state.
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User %s active=%t", user.Email, active)
	return user, nil
}
