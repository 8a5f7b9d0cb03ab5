package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// NewOrderID generates a human-readable order ID. The random suffix keeps
// two orders created in the same millisecond distinct with high
// probability; uniqueness is ultimately enforced by the unique index.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// ResolveOrderPricing fills in an order before it is persisted.
//
// When OrderID is unset, one is generated. When TotalPrice is unset, every
// line item's price is overwritten with the product's current discounted
// unit price and the total accumulates price × quantity. The snapshot is
// owned by the order and never re-linked to later product price changes.
//
// Line items referencing a missing product contribute nothing to the
// total; their product IDs are returned so callers can surface a warning
// instead of failing the whole order.
func ResolveOrderPricing(ctx context.Context, products repositories.ProductRepository, order *models.Order) ([]uint, error) {
	if order.OrderID == "" {
		order.OrderID = NewOrderID()
	}

	if order.TotalPrice != 0 {
		return nil, nil
	}

	var skipped []uint
	var total float64

	for i := range order.Items {
		item := &order.Items[i]

		product, err := products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped = append(skipped, item.ProductID)
				continue
			}
			return nil, err
		}

		finalPrice := product.FinalPrice()
		item.Price = finalPrice
		total += finalPrice * float64(item.Quantity)
	}

	order.TotalPrice = total
	return skipped, nil
}
