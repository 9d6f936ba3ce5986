package helper

import (
	"log"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

var reservationScheduler gocron.Scheduler

// StartReservationScheduler runs the nightly no-show sweep.
func StartReservationScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("failed to start reservation scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() { ExpireStalePendingReservations(database.DB) }),
	)
	if err != nil {
		log.Printf("failed to schedule pending reservation sweep: %v", err)
		return
	}

	s.Start()
	reservationScheduler = s
}

func StopReservationScheduler() {
	if reservationScheduler != nil {
		_ = reservationScheduler.Shutdown()
	}
}

// ExpireStalePendingReservations cancels pending holds whose checkin date has
// passed without a confirmation. Pending holds never block the room, so this
// is bookkeeping, not inventory release.
func ExpireStalePendingReservations(db *gorm.DB) {
	if db == nil {
		return
	}

	var stale []model.Reservation
	if err := db.Where("status = ? AND checkin_date < ?", model.StatusPending, utils.Today()).Find(&stale).Error; err != nil {
		log.Printf("stale reservation sweep failed: %v", err)
		return
	}

	for _, reservation := range stale {
		if _, err := CancelReservation(db, reservation.ID, "no-show, expired automatically"); err != nil {
			log.Printf("failed to expire reservation %s: %v", reservation.Code, err)
		}
	}
	if len(stale) > 0 {
		log.Printf("expired %d stale pending reservations", len(stale))
	}
}
