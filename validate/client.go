package validate

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateClientInput
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

		if !helper.ValidateCPF(input.CPF) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_CPF, errors.New("cpf checksum failed"), "cpf")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditClient(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateClientInput
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

		if !helper.ValidateCPF(input.CPF) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_CPF, errors.New("cpf checksum failed"), "cpf")
		}

		c.Locals("input", input)
		return GetById(key)(c)
	}
}
