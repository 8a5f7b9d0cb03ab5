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

// OrderService handles order business logic
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// OrderItemInput represents one requested line item
type OrderItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput represents order creation input
type CreateOrderInput struct {
	UserID       *uint            `json:"userId"`
	CustomerName string           `json:"customerName" validate:"max=100"`
	Phone        string           `json:"phone" validate:"max=50"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderResult carries the created order plus any line items whose
// product could not be resolved during pricing.
type CreateOrderResult struct {
	Order           *models.Order `json:"order"`
	SkippedProducts []uint        `json:"skippedProducts,omitempty"`
}

// ListOrdersInput represents order listing input
type ListOrdersInput struct {
	Page   int
	Limit  int
	Status string
	Search string
}

// Create creates an order, resolving snapshot prices before persisting
func (s *OrderService) Create(ctx context.Context, input *CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrOrderHasNoItems
	}

	order := &models.Order{
		UserID: input.UserID,
		CustomerInfo: models.CustomerInfo{
			Name:  input.CustomerName,
			Phone: input.Phone,
		},
		Status: models.OrderStatusPending,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	skipped, err := ResolveOrderPricing(ctx, s.productRepo, order)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		log.Printf("⚠️ Order %s: %d line item(s) reference missing products %v", order.OrderID, len(skipped), skipped)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("✅ Order created: %s (total: %.2f)", order.OrderID, order.TotalPrice)

	return &CreateOrderResult{Order: order, SkippedProducts: skipped}, nil
}

// GetByID gets an order with its line items
func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// List lists orders filtered by status, searching order ID and customer name
func (s *OrderService) List(ctx context.Context, input *ListOrdersInput) (*pagination.Result[models.Order], error) {
	var filter pagination.Expr
	if input.Status != "" {
		if !models.ValidOrderStatus(input.Status) {
			return nil, domain.ErrInvalidOrderStatus
		}
		filter = pagination.Eq("status", input.Status)
	}

	return s.orderRepo.List(ctx, pagination.Query{
		Page:         input.Page,
		Limit:        input.Limit,
		Filter:       filter,
		Search:       input.Search,
		SearchFields: []string{"order_id", "customer_name"},
		Preload:      []string{"Items"},
	})
}

// UpdateStatus moves an order to a new status
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("✅ Order %s status changed to %s", order.OrderID, status)
	return order, nil
}

// Cancel cancels an order unless it has already been delivered or canceled
func (s *OrderService) Cancel(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCanceled {
		return nil, domain.ErrOrderNotCancelable
	}

	order.Status = models.OrderStatusCanceled
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("✅ Order %s canceled", order.OrderID)
	return order, nil
}
