package validate

import (
	"fmt"

	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func RegisterGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
