package handler

import (
	"context"
	"encoding/json"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const reservationStatsCacheKey = "stats:reservations"

func cachedReservationStatistics() (*model.ReservationStatistics, bool) {
	if database.Redis == nil {
		return nil, false
	}

	raw, err := database.Redis.Get(context.Background(), reservationStatsCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var stats model.ReservationStatistics
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func storeReservationStatistics(stats *model.ReservationStatistics) {
	if database.Redis == nil || stats == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), reservationStatsCacheKey, payload, time.Minute)
}

// GetDashboardStats aggregates the numbers behind the admin landing page.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.DB

	type dashboard struct {
		Reservations *model.ReservationStatistics `json:"reservations"`
		Rooms        model.RoomStatistics         `json:"rooms"`
		Clients      model.ClientStatistics       `json:"clients"`

		ArrivalsToday   int64 `json:"arrivalsToday"`
		DeparturesToday int64 `json:"departuresToday"`
	}

	var stats dashboard

	reservationStats, ok := cachedReservationStatistics()
	if !ok {
		var err error
		reservationStats, err = helper.GetReservationStatistics(db)
		if err != nil {
			return domainErrorResponse(c, constants.ERROR_INTERNAL_ERROR, err)
		}
		storeReservationStatistics(reservationStats)
	}
	stats.Reservations = reservationStats

	if err := db.Raw(`
        SELECT
            COUNT(*) AS total_rooms,
            COUNT(CASE WHEN status = 'AVAILABLE' THEN 1 END) AS available,
            COUNT(CASE WHEN status = 'OCCUPIED' THEN 1 END) AS occupied,
            COUNT(CASE WHEN status = 'MAINTENANCE' THEN 1 END) AS maintenance,
            COUNT(CASE WHEN status = 'CLEANING' THEN 1 END) AS cleaning,
            COALESCE(AVG(nightly_rate), 0) AS average_rate,
            COALESCE(MIN(nightly_rate), 0) AS minimum_rate,
            COALESCE(MAX(nightly_rate), 0) AS maximum_rate
        FROM rooms
        WHERE active = true
    `).Scan(&stats.Rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Raw(`
        SELECT
            COUNT(*) AS total_clients,
            COUNT(CASE WHEN visit_reason = 'tourism' THEN 1 END) AS tourism,
            COUNT(CASE WHEN visit_reason = 'work' THEN 1 END) AS work,
            COUNT(CASE WHEN visit_reason = 'event' THEN 1 END) AS event,
            COUNT(CASE WHEN visit_reason = 'family' THEN 1 END) AS family,
            COUNT(CASE WHEN nationality = 'Brasileira' THEN 1 END) AS brazilians,
            COUNT(CASE WHEN nationality != 'Brasileira' THEN 1 END) AS foreigners
        FROM clients
    `).Scan(&stats.Clients).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	today := utils.Today()
	db.Model(&model.Reservation{}).Where("checkin_date = ?", today).Count(&stats.ArrivalsToday)
	db.Model(&model.Reservation{}).Where("checkout_date = ?", today).Count(&stats.DeparturesToday)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
