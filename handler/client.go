package handler

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetClients lists clients with optional name, location and visit reason
// filters, paginated.
func GetClients(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Client{})

	if name := c.Query("name"); name != "" {
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}
	if reason := c.Query("visitReason"); reason != "" {
		query = query.Where("visit_reason = ?", reason)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	query = utils.ApplyPagination(query, &limit, &page)

	var clients []model.Client
	if err := query.Order("full_name ASC").Find(&clients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       clients,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

// GetClientById returns one client.
func GetClientById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var client model.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

// FindClientByCPF looks a client up by document number, accepting both the
// formatted and the bare digit form.
func FindClientByCPF(c *fiber.Ctx) error {
	cpf := c.Params("cpf")
	if !helper.ValidateCPF(cpf) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_CPF, errors.New("cpf checksum failed"), "cpf")
	}

	var client model.Client
	if err := database.DB.Where("cpf = ?", helper.FormatCPF(cpf)).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

// GetClientReservations returns the full booking history of one client.
func GetClientReservations(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var client model.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var reservations []model.Reservation
	if err := database.DB.Preload("Room").
		Where("client_id = ?", id).
		Order("checkin_date DESC").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"client":       client,
		"reservations": reservations,
		"total":        len(reservations),
	})
}

// CreateClient registers a new guest profile. The CPF is stored formatted and
// must be unique.
func CreateClient(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateClientInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	cpf := helper.FormatCPF(input.CPF)

	var count int64
	if err := database.DB.Model(&model.Client{}).Where("cpf = ?", cpf).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CPF_ALREADY_IN_USE, errors.New("duplicate cpf"), "cpf")
	}

	client := model.Client{
		Nationality: "Brasileira",
		VisitReason: "tourism",
	}
	if err := copier.CopyWithOption(&client, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	client.CPF = cpf

	if err := database.DB.Create(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, client)
}

// EditClient updates a guest profile.
func EditClient(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.CreateClientInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	var client model.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cpf := helper.FormatCPF(input.CPF)
	if cpf != client.CPF {
		var count int64
		if err := database.DB.Model(&model.Client{}).Where("cpf = ? AND id != ?", cpf, id).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.CPF_ALREADY_IN_USE, errors.New("duplicate cpf"), "cpf")
		}
	}

	if err := copier.CopyWithOption(&client, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	client.CPF = cpf

	if err := database.DB.Save(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, client)
}

// DeleteClient removes a guest profile when no active reservations reference it.
func DeleteClient(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var client model.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLIENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var active int64
	if err := database.DB.Model(&model.Reservation{}).
		Where("client_id = ? AND status IN ?", id, []string{model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn}).
		Count(&active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if active > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Client has active reservations", errors.New("client in use"))
	}

	if err := database.DB.Delete(&client).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// GetClientStatistics aggregates the guest book numbers.
func GetClientStatistics(c *fiber.Ctx) error {
	var stats model.ClientStatistics
	if err := database.DB.Raw(`
        SELECT
            COUNT(*) AS total_clients,
            COUNT(CASE WHEN visit_reason = 'tourism' THEN 1 END) AS tourism,
            COUNT(CASE WHEN visit_reason = 'work' THEN 1 END) AS work,
            COUNT(CASE WHEN visit_reason = 'event' THEN 1 END) AS event,
            COUNT(CASE WHEN visit_reason = 'family' THEN 1 END) AS family,
            COUNT(CASE WHEN nationality = 'Brasileira' THEN 1 END) AS brazilians,
            COUNT(CASE WHEN nationality != 'Brasileira' THEN 1 END) AS foreigners
        FROM clients
    `).Scan(&stats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
