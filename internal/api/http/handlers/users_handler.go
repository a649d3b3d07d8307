package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/service"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UsersHandler exposes account read endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.FromUser(principal))
}

// GetByID handles GET /users/:id. The permission check runs before the
// lookup so a non-admin probing other ids sees 403, not 404.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	targetID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid user id", nil)
	}

	if err := auth.AuthorizeSelfOrAdmin(principal, targetID); err != nil {
		return err
	}

	user, err := h.users.GetByID(c.Context(), targetID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUser(user))
}

// List handles GET /users. Admin-only; enforced by route middleware.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUsers(users))
}
