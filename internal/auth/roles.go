package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/domain"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// RequireAdmin ensures the authenticated account carries the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// AuthorizeSelfOrAdmin allows access when the caller is the target account
// or an admin.
func AuthorizeSelfOrAdmin(principal *domain.User, targetID int64) error {
	if principal == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if principal.ID == targetID || principal.IsAdmin() {
		return nil
	}
	return apperrors.NewForbidden("no permission to access this account")
}
