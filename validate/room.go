package validate

import (
	"errors"
	"fmt"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
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

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
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
		return GetById(key)(c)
	}
}

func UpdateRoomStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type StatusInput struct {
			Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE CLEANING"`
		}

		var input StatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid room status", errors.New(err.Error()))
		}

		c.Locals("roomStatus", input.Status)
		return GetById(key)(c)
	}
}
