package handler

import (
	"encoding/json"
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

// GetRooms lists active rooms with optional filters.
func GetRooms(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Room{}).Where("active = ?", true)

	if roomType := strings.ToUpper(c.Query("type")); roomType != "" {
		query = query.Where("type = ?", roomType)
	}
	if status := strings.ToUpper(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}
	if capacity := c.QueryInt("minCapacity"); capacity > 0 {
		query = query.Where("max_capacity >= ?", capacity)
	}
	if maxRate := c.QueryFloat("maxRate"); maxRate > 0 {
		query = query.Where("nightly_rate <= ?", maxRate)
	}
	if view := c.Query("view"); view != "" {
		query = query.Where("view = ?", view)
	}

	var rooms []model.Room
	if err := query.Order("number ASC").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetAvailableRooms lists every active room free over the requested range.
// Room status tags (cleaning, maintenance) are housekeeping hints and do not
// filter here; only reservation conflicts do.
func GetAvailableRooms(c *fiber.Ctx) error {
	var checkin, checkout utils.CustomDate
	if err := checkin.UnmarshalJSON([]byte(`"` + c.Query("checkinDate") + `"`)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkin date", err)
	}
	if err := checkout.UnmarshalJSON([]byte(`"` + c.Query("checkoutDate") + `"`)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkout date", err)
	}
	if !checkout.AfterDate(checkin) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Checkout date must be after checkin date", errors.New("invalid range"))
	}

	var rooms []model.Room
	if err := helper.OverlapFilter(database.DB, checkin, checkout).
		Order("number ASC").
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetRoomById returns one room.
func GetRoomById(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// CheckRoomAvailability answers the ad-hoc availability question for one room.
func CheckRoomAvailability(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var checkin, checkout utils.CustomDate
	if err := checkin.UnmarshalJSON([]byte(`"` + c.Query("checkinDate") + `"`)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkin date", err)
	}
	if err := checkout.UnmarshalJSON([]byte(`"` + c.Query("checkoutDate") + `"`)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid checkout date", err)
	}
	if !checkout.AfterDate(checkin) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Checkout date must be after checkin date", errors.New("invalid range"))
	}

	available, err := helper.RoomAvailable(database.DB, uint(id), checkin, checkout)
	if err != nil {
		return domainErrorResponse(c, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"roomId":       id,
		"checkinDate":  checkin,
		"checkoutDate": checkout,
		"available":    available,
	})
}

// CreateRoom registers a room with a unique number.
func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	var count int64
	if err := database.DB.Model(&model.Room{}).Where("number = ?", input.Number).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.ROOM_NUMBER_IN_USE, errors.New("duplicate room number"), "number")
	}

	room := model.Room{
		Active: true,
		Status: model.RoomAvailable,
		View:   "internal",
		// defaults matching the original inventory schema
		HasAirConditioning: true,
		HasTV:              true,
		HasWifi:            true,
	}
	if err := copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// EditRoom updates a room. Rate edits never touch existing reservations,
// which keep the rate snapshot taken when they were created.
func EditRoom(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, errors.New("missing input"))
	}

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Number != room.Number {
		var count int64
		if err := database.DB.Model(&model.Room{}).Where("number = ? AND id != ?", input.Number, id).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.ROOM_NUMBER_IN_USE, errors.New("duplicate room number"), "number")
		}
	}

	if err := copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// UpdateRoomStatus flips the housekeeping status tag.
func UpdateRoomStatus(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)
	status, _ := c.Locals("roomStatus").(string)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&room).Update("status", status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	room.Status = status
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// DeleteRoom deactivates a room instead of destroying booking history.
func DeleteRoom(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var active int64
	if err := database.DB.Model(&model.Reservation{}).
		Where("room_id = ? AND status IN ?", id, model.ConflictingStatuses).
		Count(&active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if active > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Room has active reservations", errors.New("room in use"))
	}

	if err := database.DB.Model(&room).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

// AddRoomPhotos appends uploaded photo URLs to the room's photo list.
func AddRoomPhotos(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type photosInput struct {
		Urls []string `json:"urls"`
	}
	var input photosInput
	if err := c.BodyParser(&input); err != nil || len(input.Urls) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Photo URL list is required", err)
	}

	photos := []string{}
	if room.Photos != nil {
		// stored as a JSON array; a corrupted value just resets the list
		_ = json.Unmarshal([]byte(*room.Photos), &photos)
	}
	photos = append(photos, input.Urls...)

	encoded, err := json.Marshal(photos)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	value := string(encoded)

	if err := database.DB.Model(&room).Update("photos", value).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	room.Photos = &value
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}
