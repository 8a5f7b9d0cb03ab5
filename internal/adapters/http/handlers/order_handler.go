package handlers

import (
	"errors"

	"shopadmin/internal/core/domain"
	"shopadmin/internal/core/services"
	"shopadmin/internal/pkg/pagination"
	"shopadmin/internal/pkg/response"
	"shopadmin/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// UpdateOrderStatusRequest represents order status update body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered canceled"`
}

// List lists orders with pagination and filters
// @Summary List orders
// @Description List orders filtered by status, searching order ID and customer name
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (max 100)"
// @Param search query string false "Search term"
// @Param status query string false "Order status filter"
// @Success 200 {object} response.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	q := pagination.FromRequest(c)

	result, err := h.orderService.List(c.Context(), &services.ListOrdersInput{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Status: c.Query("status"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrderStatus):
			return response.BadRequest(c, "Invalid order status")
		default:
			var pErr *pagination.Error
			if errors.As(err, &pErr) {
				return c.Status(fiber.StatusInternalServerError).JSON(pErr)
			}
			return response.InternalServerError(c, "Failed to list orders")
		}
	}

	return response.Success(c, "Orders retrieved successfully", result)
}

// Get returns a single order by ID
// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	order, err := h.orderService.GetByID(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c, "Failed to get order")
		}
	}

	return response.Success(c, "Order retrieved successfully", order)
}

// Create creates a new order
// @Summary Create order
// @Description Create an order; snapshot prices and the total are resolved from the catalog
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateOrderInput true "Order data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msgs := validation.Struct(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	result, err := h.orderService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderHasNoItems):
			return response.BadRequest(c, "Order must have at least one item")
		default:
			return response.InternalServerError(c, "Failed to create order")
		}
	}

	return response.Created(c, "Order created successfully", result)
}

// UpdateStatus updates an order's status
// @Summary Update order status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msgs := validation.Struct(&req); len(msgs) > 0 {
		return response.ValidationFailed(c, msgs)
	}

	order, err := h.orderService.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrInvalidOrderStatus):
			return response.BadRequest(c, "Invalid order status")
		default:
			return response.InternalServerError(c, "Failed to update order status")
		}
	}

	return response.Success(c, "Order status updated successfully", order)
}

// Cancel cancels an order
// @Summary Cancel order
// @Description Cancel an order that has not been delivered yet
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	order, err := h.orderService.Cancel(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrOrderNotCancelable):
			return response.Conflict(c, "Order can no longer be canceled")
		default:
			return response.InternalServerError(c, "Failed to cancel order")
		}
	}

	return response.Success(c, "Order canceled successfully", order)
}
