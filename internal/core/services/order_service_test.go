package services

import (
	"context"
	"testing"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/core/domain"
	"shopadmin/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreate(t *testing.T) {
	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, SKU: "SKU-1", Price: 100, Discount: 10},
	)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo)

	result, err := svc.Create(context.Background(), &CreateOrderInput{
		CustomerName: "Jamie",
		Phone:        "555-0100",
		Items:        []OrderItemInput{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Empty(t, result.SkippedProducts)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.Equal(t, "Jamie", result.Order.CustomerInfo.Name)
	assert.InDelta(t, 180.0, result.Order.TotalPrice, 1e-9)
	assert.NotZero(t, result.Order.ID)
	assert.NotEmpty(t, result.Order.OrderID)
}

func TestOrderCreateReportsSkippedProducts(t *testing.T) {
	productRepo := newFakeProductRepo(
		&models.Product{ID: 1, SKU: "SKU-1", Price: 10},
	)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo)

	result, err := svc.Create(context.Background(), &CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 404, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{404}, result.SkippedProducts)
	assert.InDelta(t, 10.0, result.Order.TotalPrice, 1e-9)
}

func TestOrderCreateNoItems(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	_, err := svc.Create(context.Background(), &CreateOrderInput{})
	assert.ErrorIs(t, err, domain.ErrOrderHasNoItems)
}

func TestOrderGetByIDNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	_, err := svc.GetByID(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderListInvalidStatus(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	_, err := svc.List(context.Background(), &ListOrdersInput{Status: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
}

func TestOrderListBuildsQuery(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, newFakeProductRepo())

	_, err := svc.List(context.Background(), &ListOrdersInput{
		Page:   2,
		Limit:  20,
		Status: models.OrderStatusPending,
		Search: "jamie",
	})
	require.NoError(t, err)

	q := orderRepo.lastList
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, []string{"order_id", "customer_name"}, q.SearchFields)
	assert.Equal(t, []string{"Items"}, q.Preload)

	sql, args := pagination.Compile(q.Condition())
	assert.Equal(t, "(status = ? AND (LOWER(order_id) LIKE ? OR LOWER(customer_name) LIKE ?))", sql)
	assert.Equal(t, []interface{}{models.OrderStatusPending, "%jamie%", "%jamie%"}, args)
}

func TestOrderUpdateStatus(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	require.NoError(t, orderRepo.Create(context.Background(), &models.Order{
		OrderID: "ORD-1-1",
		Status:  models.OrderStatusPending,
	}))
	svc := NewOrderService(orderRepo, newFakeProductRepo())

	order, err := svc.UpdateStatus(context.Background(), 1, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	_, err = svc.UpdateStatus(context.Background(), 1, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
}

func TestOrderCancel(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	require.NoError(t, orderRepo.Create(context.Background(), &models.Order{
		OrderID: "ORD-1-1",
		Status:  models.OrderStatusPending,
	}))
	require.NoError(t, orderRepo.Create(context.Background(), &models.Order{
		OrderID: "ORD-1-2",
		Status:  models.OrderStatusDelivered,
	}))
	svc := NewOrderService(orderRepo, newFakeProductRepo())

	order, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCanceled, order.Status)

	// Canceling twice or after delivery is rejected
	_, err = svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrOrderNotCancelable)
	_, err = svc.Cancel(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrOrderNotCancelable)
}
