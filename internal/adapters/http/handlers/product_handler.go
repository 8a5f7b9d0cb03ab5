package handlers

import (
	"errors"
	"strconv"

	"shopadmin/internal/core/domain"
	"shopadmin/internal/core/services"
	"shopadmin/internal/pkg/pagination"
	"shopadmin/internal/pkg/response"
	"shopadmin/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List lists products with pagination and filters
// @Summary List products
// @Description List products filtered by status and category, searching name, SKU and category
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (max 100)"
// @Param search query string false "Search term"
// @Param status query string false "Product status filter"
// @Param category query string false "Category filter"
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := pagination.FromRequest(c)

	result, err := h.productService.List(c.Context(), &services.ListProductsInput{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		var pErr *pagination.Error
		if errors.As(err, &pErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(pErr)
		}
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", result)
}

// Get returns a single product by ID
// @Summary Get product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		default:
			return response.InternalServerError(c, "Failed to get product")
		}
	}

	return response.Success(c, "Product retrieved successfully", product)
}

// Create creates a new product
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateProductInput true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req services.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msgs := validation.Struct(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	actorID, _ := c.Locals("userID").(uint)

	product, err := h.productService.Create(c.Context(), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSKUAlreadyUsed):
			return response.Conflict(c, "SKU already in use")
		default:
			return response.InternalServerError(c, "Failed to create product")
		}
	}

	return response.Created(c, "Product created successfully", product)
}

// Update updates a product
// @Summary Update product
// @Description Partial update; only provided fields are changed
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.UpdateProductInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	var req services.UpdateProductInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msgs := validation.Struct(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	actorID, _ := c.Locals("userID").(uint)

	product, err := h.productService.Update(c.Context(), id, &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, domain.ErrSKUAlreadyUsed):
			return response.Conflict(c, "SKU already in use")
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated successfully", product)
}

// Delete removes a product
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.productService.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		default:
			return response.InternalServerError(c, "Failed to delete product")
		}
	}

	return response.Success(c, "Product deleted successfully", nil)
}

// LowStock lists active products at or below their minimum stock
// @Summary List low stock products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.productService.ListLowStock(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list low stock products")
	}

	return response.Success(c, "Low stock products retrieved successfully", fiber.Map{
		"products": products,
	})
}

// parseIDParam parses the :id route parameter
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
