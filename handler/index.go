package handler

import (
	"log"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps the domain error taxonomy onto HTTP statuses. The
// switch is structural; message text is never inspected.
func statusFromError(err error) int {
	switch model.KindOf(err) {
	case model.KindInvalidInput, model.KindInvalidTransition:
		return fiber.StatusBadRequest
	case model.KindNotFound:
		return fiber.StatusNotFound
	case model.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func domainErrorResponse(c *fiber.Ctx, message string, err error) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		// opaque message outward, detail stays in the server log
		log.Printf("%s: %v", message, err)
		return utils.ErrorResponse(c, status, "Internal server error", nil)
	}
	return utils.ErrorResponse(c, status, message, err)
}

func ApiStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "online",
		"message":   "Hotel Paradise API running",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func HotelInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "Hotel Paradise",
		"location":    "Rio Negro, Paraná",
		"description": "Quality lodging in a historic town",
		"contact": fiber.Map{
			"phone": "(47) 3644-0000",
			"email": "contato@hotelparadise.com.br",
		},
	})
}
