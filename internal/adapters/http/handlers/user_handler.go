package handlers

import (
	"errors"

	"shopadmin/internal/adapters/persistence/models"
	"shopadmin/internal/core/domain"
	"shopadmin/internal/core/services"
	"shopadmin/internal/pkg/pagination"
	"shopadmin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List lists users with pagination and filters
// @Summary List users
// @Description List users filtered by role, searching name and email
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page (max 100)"
// @Param search query string false "Search term"
// @Param role query string false "Role filter"
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	q := pagination.FromRequest(c)

	result, err := h.userService.List(c.Context(), &services.ListUsersInput{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Role:   c.Query("role"),
	})
	if err != nil {
		var pErr *pagination.Error
		if errors.As(err, &pErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(pErr)
		}
		return response.InternalServerError(c, "Failed to list users")
	}

	responses := make([]*models.UserResponse, 0, len(result.Data))
	for i := range result.Data {
		responses = append(responses, result.Data[i].ToResponse())
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"data":       responses,
		"pagination": result.Pagination,
	})
}

// Get returns a single user by ID
// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to get user")
		}
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// Deactivate disables a user account
// @Summary Deactivate user
// @Description Disable a user account; deactivated users cannot login
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "User deactivated successfully")
}

// Activate re-enables a user account
// @Summary Activate user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/activate [post]
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "User activated successfully")
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.SetActive(c.Context(), id, active)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, message, fiber.Map{
		"user": user.ToResponse(),
	})
}
