package middleware

import (
	"errors"
	"os"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireStaff allows receptionists and admins.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, _, isStaff := helper.GetInfoUserFromToken(c)
		if !isStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("staff only"))
		}
		return c.Next()
	}
}

// RequireAdmin allows admins only.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, _ := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
		}
		return c.Next()
	}
}
