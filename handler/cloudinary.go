package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GenerateSignature signs a direct browser upload so the dashboard can push
// room photos to cloudinary without proxying the bytes through us.
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // parsed but never signed
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CANNOT_PARSE_BODY, err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// raw values, no URL encoding, exactly what cloudinary expects
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadRoomPhoto accepts a multipart photo, uploads it to cloudinary and
// appends the resulting URL to the room's photo list.
func UploadRoomPhoto(c *fiber.Ctx) error {
	id, _ := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	photoFile, err := c.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Photo file is required", err)
	}

	reader, err := photoFile.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read photo file", err)
	}
	defer reader.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cloudinary is not configured", err)
	}

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder: "hotel/rooms",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	photos := []string{}
	if room.Photos != nil {
		_ = json.Unmarshal([]byte(*room.Photos), &photos)
	}
	photos = append(photos, result.SecureURL)

	encoded, err := json.Marshal(photos)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	value := string(encoded)

	if err := database.DB.Model(&room).Update("photos", value).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	room.Photos = &value

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"room": room,
		"url":  result.SecureURL,
	})
}
