package repositories

import (
	"context"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/pkg/pagination"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRole(ctx context.Context, role string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, q pagination.Query) (*pagination.Result[models.User], error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionRepository defines session repository interface
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*models.Session, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.Session, error)
	Deactivate(ctx context.Context, id uint) error
	DeactivateByRefreshToken(ctx context.Context, refreshToken string) error
	DeactivateAllByUserID(ctx context.Context, userID uint) error
	DeactivateExpired(ctx context.Context) (int64, error)
	DeleteInactiveBefore(ctx context.Context, days int) (int64, error)
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q pagination.Query) (*pagination.Result[models.Product], error)
	ListLowStock(ctx context.Context) ([]*models.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

// OrderRepository defines order repository interface
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	List(ctx context.Context, q pagination.Query) (*pagination.Result[models.Order], error)
}
