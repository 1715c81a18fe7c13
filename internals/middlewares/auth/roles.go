package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleLearner    = "learner"
)

func rolesOf(c *fiber.Ctx) []string {
	v := c.Locals(LocRolesGlobal)
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return strings.Split(t, ",")
	}
	return nil
}

func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range rolesOf(c) {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool      { return HasRole(c, RoleOwner) }
func IsAdmin(c *fiber.Ctx) bool      { return HasRole(c, RoleAdmin) }
func IsInstructor(c *fiber.Ctx) bool { return HasRole(c, RoleInstructor) }

// IsPrivileged: editor yang boleh memutasi kelas di luar status DRAFT
func IsPrivileged(c *fiber.Ctx) bool { return IsOwner(c) || IsAdmin(c) }

// RequireAdmin: guard group admin
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsPrivileged(c) {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}
