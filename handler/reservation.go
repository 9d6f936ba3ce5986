package handler

import (
	"encoding/base64"
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func operatorFromToken(c *fiber.Ctx) *uint {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil
	}
	id := claim.UserId
	return &id
}

func emailDataFor(reservation *model.Reservation) (string, utils.ReservationEmailData) {
	data := utils.ReservationEmailData{
		Code:       reservation.Code,
		Checkin:    reservation.CheckinDate.String(),
		Checkout:   reservation.CheckoutDate.String(),
		Nights:     reservation.NightCount,
		TotalPrice: reservation.TotalPrice,
	}

	to := ""
	var client model.Client
	if err := database.DB.First(&client, reservation.ClientID).Error; err == nil {
		data.ClientName = client.FullName
		if client.Email != nil {
			to = *client.Email
		}
	}
	var room model.Room
	if err := database.DB.First(&room, reservation.RoomID).Error; err == nil {
		data.RoomNumber = room.Number
	}
	return to, data
}

// GetReservations lists reservations with optional status, client and date
// range filters, newest arrival first.
func GetReservations(c *fiber.Ctx) error {
	var reservations []model.Reservation

	query := database.DB.Preload("Client").Preload("Room")

	if status := strings.ToUpper(c.Query("status")); status != "" {
		if !model.IsValidStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown reservation status", errors.New(status))
		}
		query = query.Where("status = ?", status)
	}
	if clientId := c.QueryInt("clientId"); clientId > 0 {
		query = query.Where("client_id = ?", clientId)
	}
	if from := c.Query("startDate"); from != "" {
		if to := c.Query("endDate"); to != "" {
			query = query.Where("checkin_date >= ? AND checkout_date <= ?", from, to)
		}
	}

	var totalCount int64
	if err := query.Model(&model.Reservation{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	query = utils.ApplyPagination(query, &limit, &page)

	if err := query.Order("checkin_date DESC").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       reservations,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

// GetReservationById returns one reservation with a check-in QR code for the
// front desk.
func GetReservationById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.
		Preload("Client").
		Preload("Room").
		Preload("CheckinOperator").
		Preload("CheckoutOperator").
		First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(reservation.Code, 400); err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservation": reservation,
		"qrCode":      qrBase64,
	})
}

// GetReservationsByStatus lists all reservations in one status.
func GetReservationsByStatus(c *fiber.Ctx) error {
	status := strings.ToUpper(c.Params("status"))
	if !model.IsValidStatus(status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown reservation status", errors.New(status))
	}

	var reservations []model.Reservation
	if err := database.DB.Preload("Client").Preload("Room").
		Where("status = ?", status).
		Order("checkin_date DESC").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservations": reservations,
		"total":        len(reservations),
	})
}

// GetReservationsToday lists today's arrivals and departures.
func GetReservationsToday(c *fiber.Ctx) error {
	reservations, err := helper.FindReservationsToday(database.DB)
	if err != nil {
		return domainErrorResponse(c, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservations": reservations,
		"total":        len(reservations),
	})
}

// CreateReservation books a room, answering 409 when the dates conflict.
func CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	reservation, err := helper.ReserveRoom(database.DB, input)
	if err != nil {
		return domainErrorResponse(c, "Could not create reservation", err)
	}

	PublishReservationEvent(reservation, "created")
	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

// UpdateReservation edits the mutable fields of a reservation.
func UpdateReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.UpdateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	reservation, err := helper.UpdateReservation(database.DB, uint(id), input)
	if err != nil {
		return domainErrorResponse(c, "Could not update reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// ConfirmReservation confirms a pending hold.
func ConfirmReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	reservation, err := helper.ConfirmReservation(database.DB, uint(id))
	if err != nil {
		return domainErrorResponse(c, "Could not confirm reservation", err)
	}

	PublishReservationEvent(reservation, "confirmed")
	if to, data := emailDataFor(reservation); to != "" {
		utils.SendReservationConfirmationEmail(to, data)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// CheckInReservation performs front-desk check-in.
func CheckInReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	reservation, err := helper.CheckInReservation(database.DB, uint(id), operatorFromToken(c))
	if err != nil {
		return domainErrorResponse(c, "Could not check in reservation", err)
	}

	PublishReservationEvent(reservation, "checked_in")
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// CheckOutReservation performs front-desk check-out.
func CheckOutReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	reservation, err := helper.CheckOutReservation(database.DB, uint(id), operatorFromToken(c))
	if err != nil {
		return domainErrorResponse(c, "Could not check out reservation", err)
	}

	PublishReservationEvent(reservation, "checked_out")
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// CancelReservation cancels a pending or confirmed reservation.
func CancelReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var input model.CancelReservationInput
	_ = c.BodyParser(&input) // reason is optional

	reservation, err := helper.CancelReservation(database.DB, uint(id), input.Reason)
	if err != nil {
		return domainErrorResponse(c, "Could not cancel reservation", err)
	}

	PublishReservationEvent(reservation, "cancelled")
	if to, data := emailDataFor(reservation); to != "" {
		data.Reason = input.Reason
		utils.SendReservationCancellationEmail(to, data)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// DeleteReservation removes a pending reservation permanently.
func DeleteReservation(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	if err := helper.DeleteReservation(database.DB, uint(id)); err != nil {
		return domainErrorResponse(c, "Could not delete reservation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// GetReservationStatistics serves the dashboard aggregate, cached in redis
// for a minute when available.
func GetReservationStatistics(c *fiber.Ctx) error {
	if stats, ok := cachedReservationStatistics(); ok {
		return utils.SuccessResponse(c, fiber.StatusOK, stats)
	}

	stats, err := helper.GetReservationStatistics(database.DB)
	if err != nil {
		return domainErrorResponse(c, constants.ERROR_INTERNAL_ERROR, err)
	}

	storeReservationStatistics(stats)
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
