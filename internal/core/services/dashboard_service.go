package services

import (
	"context"

	"shopadmin/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService aggregates inventory and order statistics
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardSummary is the admin overview payload
type DashboardSummary struct {
	Products struct {
		Total    int64 `json:"total"`
		Active   int64 `json:"active"`
		Inactive int64 `json:"inactive"`
		Draft    int64 `json:"draft"`
		LowStock int64 `json:"lowStock"`
	} `json:"products"`
	Orders struct {
		Total     int64   `json:"total"`
		Pending   int64   `json:"pending"`
		Shipped   int64   `json:"shipped"`
		Delivered int64   `json:"delivered"`
		Canceled  int64   `json:"canceled"`
		Revenue   float64 `json:"revenue"`
	} `json:"orders"`
	Users struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"users"`
}

// Summary builds the dashboard overview
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	db := s.db.WithContext(ctx)

	products := db.Model(&models.Product{})
	if err := products.Count(&summary.Products.Total).Error; err != nil {
		return nil, err
	}
	for status, dest := range map[string]*int64{
		models.ProductStatusActive:   &summary.Products.Active,
		models.ProductStatusInactive: &summary.Products.Inactive,
		models.ProductStatusDraft:    &summary.Products.Draft,
	} {
		if err := db.Model(&models.Product{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return nil, err
		}
	}
	err := db.Model(&models.Product{}).
		Where("stock <= min_stock AND status = ?", models.ProductStatusActive).
		Count(&summary.Products.LowStock).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&models.Order{}).Count(&summary.Orders.Total).Error; err != nil {
		return nil, err
	}
	for status, dest := range map[string]*int64{
		models.OrderStatusPending:   &summary.Orders.Pending,
		models.OrderStatusShipped:   &summary.Orders.Shipped,
		models.OrderStatusDelivered: &summary.Orders.Delivered,
		models.OrderStatusCanceled:  &summary.Orders.Canceled,
	} {
		if err := db.Model(&models.Order{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return nil, err
		}
	}
	err = db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCanceled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&summary.Orders.Revenue).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).Count(&summary.Users.Total).Error; err != nil {
		return nil, err
	}
	err = db.Model(&models.User{}).Where("is_active = ?", true).Count(&summary.Users.Active).Error
	if err != nil {
		return nil, err
	}

	return summary, nil
}
