package services

import (
	"context"
	"time"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/pkg/pagination"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
	lastList pagination.Query
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uint]*models.Product), nextID: 1}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*models.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, q pagination.Query) (*pagination.Result[models.Product], error) {
	r.lastList = q
	return &pagination.Result[models.Product]{}, nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context) ([]*models.Product, error) {
	var low []*models.Product
	for _, p := range r.products {
		if p.IsLowStock() && p.Status == models.ProductStatusActive {
			low = append(low, p)
		}
	}
	return low, nil
}

func (r *fakeProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	_, err := r.GetBySKU(context.Background(), sku)
	return err == nil, nil
}

type fakeOrderRepo struct {
	orders   map[uint]*models.Order
	nextID   uint
	lastList pagination.Query
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uint) (*models.Order, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetByOrderID(_ context.Context, orderID string) (*models.Order, error) {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) Update(_ context.Context, order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, q pagination.Query) (*pagination.Result[models.Order], error) {
	r.lastList = q
	return &pagination.Result[models.Order]{}, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByRole(_ context.Context, role string) (*models.User, error) {
	for _, u := range r.users {
		if u.Role == role {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, q pagination.Query) (*pagination.Result[models.User], error) {
	return &pagination.Result[models.User]{}, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

type fakeSessionRepo struct {
	sessions map[uint]*models.Session
	nextID   uint
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uint]*models.Session), nextID: 1}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *models.Session) error {
	session.ID = r.nextID
	r.nextID++
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByRefreshToken(_ context.Context, refreshToken string) (*models.Session, error) {
	for _, s := range r.sessions {
		if s.RefreshToken == refreshToken {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) ListByUserID(_ context.Context, userID uint) ([]*models.Session, error) {
	var out []*models.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Deactivate(_ context.Context, id uint) error {
	if s, ok := r.sessions[id]; ok {
		s.IsActive = false
		s.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeSessionRepo) DeactivateByRefreshToken(_ context.Context, refreshToken string) error {
	for _, s := range r.sessions {
		if s.RefreshToken == refreshToken {
			s.IsActive = false
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeactivateAllByUserID(_ context.Context, userID uint) error {
	for _, s := range r.sessions {
		if s.UserID == userID {
			s.IsActive = false
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeactivateExpired(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.sessions {
		if s.IsActive && s.IsExpired() {
			s.IsActive = false
			s.UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

func (r *fakeSessionRepo) DeleteInactiveBefore(_ context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var n int64
	for id, s := range r.sessions {
		if !s.IsActive && s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeSessionRepo) activeCount(userID uint) int {
	count := 0
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsActive {
			count++
		}
	}
	return count
}
