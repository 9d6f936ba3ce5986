package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)

		return c.Next()
	}
}
