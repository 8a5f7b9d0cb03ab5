package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Users & Sessions
// ============================================================

// User roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:100;not null" json:"fullName"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'staff'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time     `json:"lastLogin"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint       `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// Session represents sessions table (one row per login)
type Session struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	RefreshToken string    `gorm:"uniqueIndex;size:512;not null" json:"-"`
	IP           string    `gorm:"size:50" json:"ip,omitempty"`
	UserAgent    string    `gorm:"size:255" json:"userAgent,omitempty"`
	Location     string    `gorm:"size:100" json:"location,omitempty"`
	AccessToken  string    `gorm:"size:512" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expiresAt"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ============================================================
// Catalog
// ============================================================

// Product statuses
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// Supplier is an owned sub-record embedded into the product row
type Supplier struct {
	Name    string `gorm:"size:100" json:"name,omitempty"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Email   string `gorm:"size:100" json:"email,omitempty"`
	Address string `gorm:"size:255" json:"address,omitempty"`
}

// Product represents products table
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SKU         string         `gorm:"column:sku;uniqueIndex;size:50;not null" json:"sku"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	MinStock    int            `gorm:"not null;default:0" json:"minStock"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Price       float64        `gorm:"type:decimal(12,2);not null" json:"price"`
	Discount    float64        `gorm:"type:decimal(5,2);default:0" json:"discount"`
	Status      string         `gorm:"size:20;default:'draft';index" json:"status"`
	Supplier    Supplier       `gorm:"embedded;embeddedPrefix:supplier_" json:"supplier"`
	CreatedBy   uint           `gorm:"not null" json:"createdBy"`
	UpdatedBy   uint           `gorm:"not null" json:"updatedBy"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Updater *User `gorm:"foreignKey:UpdatedBy" json:"updater,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// FinalPrice returns the effective unit price after discount
func (p *Product) FinalPrice() float64 {
	return p.Price - (p.Price * p.Discount / 100)
}

// IsLowStock reports whether stock has fallen to the reorder threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// ============================================================
// Orders
// ============================================================

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// CustomerInfo is embedded contact data for orders without a user account
type CustomerInfo struct {
	Name  string `gorm:"size:100" json:"name,omitempty"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`
}

// OrderItem represents one line of an order. Price is the unit price
// snapshotted at order creation and never re-linked to the product.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(12,2);not null" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Order represents orders table
type Order struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	OrderID      string       `gorm:"column:order_id;uniqueIndex;size:50;not null" json:"orderId"`
	UserID       *uint        `gorm:"index" json:"userId"`
	CustomerInfo CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customerInfo"`
	Items        []OrderItem  `gorm:"foreignKey:OrderID" json:"items"`
	Status       string       `gorm:"size:20;default:'pending';index" json:"status"`
	TotalPrice   float64      `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Session{},
		&Product{},
		&Order{},
		&OrderItem{},
	)
}
