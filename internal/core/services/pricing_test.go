package services

import (
	"context"
	"regexp"
	"testing"

	"shopadmin/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-\d+$`)

	first := NewOrderID()
	second := NewOrderID()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestResolveOrderPricingComputesTotal(t *testing.T) {
	repo := newFakeProductRepo(
		&models.Product{ID: 1, SKU: "SKU-1", Price: 100, Discount: 10},
		&models.Product{ID: 2, SKU: "SKU-2", Price: 50, Discount: 0},
	)
	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}

	skipped, err := ResolveOrderPricing(context.Background(), repo, order)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	// 2 × (100 − 10%) + 1 × 50
	assert.InDelta(t, 230.0, order.TotalPrice, 1e-9)
	assert.InDelta(t, 90.0, order.Items[0].Price, 1e-9)
	assert.InDelta(t, 50.0, order.Items[1].Price, 1e-9)
	assert.NotEmpty(t, order.OrderID)
}

func TestResolveOrderPricingSkipsMissingProducts(t *testing.T) {
	repo := newFakeProductRepo(
		&models.Product{ID: 1, SKU: "SKU-1", Price: 20, Discount: 0},
	)
	order := &models.Order{
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 99, Quantity: 5},
		},
	}

	skipped, err := ResolveOrderPricing(context.Background(), repo, order)
	require.NoError(t, err)

	assert.Equal(t, []uint{99}, skipped)
	assert.InDelta(t, 60.0, order.TotalPrice, 1e-9)
	assert.Zero(t, order.Items[1].Price)
}

func TestResolveOrderPricingKeepsPresetTotal(t *testing.T) {
	repo := newFakeProductRepo(
		&models.Product{ID: 1, SKU: "SKU-1", Price: 100, Discount: 0},
	)
	order := &models.Order{
		TotalPrice: 42,
		Items:      []models.OrderItem{{ProductID: 1, Quantity: 1}},
	}

	skipped, err := ResolveOrderPricing(context.Background(), repo, order)
	require.NoError(t, err)

	assert.Nil(t, skipped)
	assert.InDelta(t, 42.0, order.TotalPrice, 1e-9)
	assert.Zero(t, order.Items[0].Price)
}

func TestResolveOrderPricingKeepsPresetOrderID(t *testing.T) {
	repo := newFakeProductRepo()
	order := &models.Order{OrderID: "ORD-1700000000000-1", TotalPrice: 10}

	_, err := ResolveOrderPricing(context.Background(), repo, order)
	require.NoError(t, err)

	assert.Equal(t, "ORD-1700000000000-1", order.OrderID)
}

func TestProductFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 50, 0, 50},
		{"ten percent", 100, 10, 90},
		{"full discount", 80, 100, 0},
		{"fractional", 19.99, 25, 14.9925},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Product{Price: tt.price, Discount: tt.discount}
			assert.InDelta(t, tt.want, p.FinalPrice(), 1e-9)
		})
	}
}
