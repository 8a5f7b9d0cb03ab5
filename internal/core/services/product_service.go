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

// ProductService handles catalog business logic
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// SupplierInput represents the optional embedded supplier record
type SupplierInput struct {
	Name    string `json:"name" validate:"max=100"`
	Phone   string `json:"phone" validate:"max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=255"`
}

// CreateProductInput represents product creation input
type CreateProductInput struct {
	SKU         string         `json:"sku" validate:"required,max=50"`
	Name        string         `json:"name" validate:"required,max=200"`
	Description string         `json:"description"`
	Stock       int            `json:"stock" validate:"gte=0"`
	MinStock    int            `json:"minStock" validate:"gte=0"`
	Category    string         `json:"category" validate:"max=100"`
	Price       float64        `json:"price" validate:"gte=0"`
	Discount    float64        `json:"discount" validate:"gte=0,lte=100"`
	Status      string         `json:"status" validate:"omitempty,oneof=active inactive draft"`
	Supplier    *SupplierInput `json:"supplier"`
}

// UpdateProductInput represents product update input
type UpdateProductInput struct {
	Name        *string        `json:"name" validate:"omitempty,max=200"`
	Description *string        `json:"description"`
	Stock       *int           `json:"stock" validate:"omitempty,gte=0"`
	MinStock    *int           `json:"minStock" validate:"omitempty,gte=0"`
	Category    *string        `json:"category" validate:"omitempty,max=100"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Discount    *float64       `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Status      *string        `json:"status" validate:"omitempty,oneof=active inactive draft"`
	Supplier    *SupplierInput `json:"supplier"`
}

// ListProductsInput represents product listing input
type ListProductsInput struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput, actorID uint) (*models.Product, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSKUAlreadyUsed
	}

	status := input.Status
	if status == "" {
		status = models.ProductStatusDraft
	}

	product := &models.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Category:    input.Category,
		Price:       input.Price,
		Discount:    input.Discount,
		Status:      status,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if input.Supplier != nil {
		product.Supplier = models.Supplier{
			Name:    input.Supplier.Name,
			Phone:   input.Supplier.Phone,
			Email:   input.Supplier.Email,
			Address: input.Supplier.Address,
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product created: %s (%s)", product.Name, product.SKU)
	return product, nil
}

// GetByID gets a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Update applies a partial update and records the acting user
func (s *ProductService) Update(ctx context.Context, id uint, input *UpdateProductInput, actorID uint) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	if input.Supplier != nil {
		product.Supplier = models.Supplier{
			Name:    input.Supplier.Name,
			Phone:   input.Supplier.Phone,
			Email:   input.Supplier.Email,
			Address: input.Supplier.Address,
		}
	}
	product.UpdatedBy = actorID

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if product.IsLowStock() {
		log.Printf("⚠️ Product %s is at or below minimum stock (%d/%d)", product.SKU, product.Stock, product.MinStock)
	}

	return product, nil
}

// Delete soft deletes a product
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List lists products filtered by status and category, searching
// name, SKU and category
func (s *ProductService) List(ctx context.Context, input *ListProductsInput) (*pagination.Result[models.Product], error) {
	var filters []pagination.Expr
	if input.Status != "" {
		filters = append(filters, pagination.Eq("status", input.Status))
	}
	if input.Category != "" {
		filters = append(filters, pagination.Eq("category", input.Category))
	}

	return s.productRepo.List(ctx, pagination.Query{
		Page:         input.Page,
		Limit:        input.Limit,
		Filter:       pagination.And(filters...),
		Search:       input.Search,
		SearchFields: []string{"name", "sku", "category"},
	})
}

// ListLowStock lists active products at or below their reorder threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.ListLowStock(ctx)
}
