// file: internals/helpers/principal.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Principal is the authenticated caller as resolved by the auth middleware:
// who they are, what they may do, and which region they belong to.
type Principal struct {
	ID     uuid.UUID
	Name   string
	Role   string
	Region string
}

// GetUserIDFromToken reads user_id from c.Locals("user_id").
// 401 when not logged in, 400 when the id is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// GetPrincipal assembles the full Principal from Locals set by the middleware.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return Principal{}, err
	}

	role, _ := c.Locals("userRole").(string)
	if strings.TrimSpace(role) == "" {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}

	region, _ := c.Locals("userRegion").(string)
	name, _ := c.Locals("userName").(string)

	return Principal{
		ID:     id,
		Name:   name,
		Role:   role,
		Region: region,
	}, nil
}

// FromFiberError converts an error bubbled out of a service/transaction
// (usually *fiber.Error) into the standard JSON error envelope.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
