package helper

import (
	"errors"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// RoomAvailable reports whether a room is free for the half-open range
// [checkin, checkout). Only CONFIRMED and CHECKED_IN reservations block;
// two ranges [a,b) and [c,d) overlap iff a < d AND c < b, so a checkout and
// a checkin on the same day never conflict. A room that is not in inventory
// is never available.
//
// The same predicate backs reservation creation, the confirm recheck and the
// available-rooms search, so the three can never disagree.
func RoomAvailable(db *gorm.DB, roomID uint, checkin, checkout utils.CustomDate) (bool, error) {
	if checkin.IsZero() || checkout.IsZero() || !checkout.AfterDate(checkin) {
		return false, nil
	}

	var room model.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, model.WrapStorage(err)
	}

	var conflicts int64
	err := db.Model(&model.Reservation{}).
		Where("room_id = ? AND status IN ? AND checkin_date < ? AND checkout_date > ?",
			roomID, model.ConflictingStatuses, checkout, checkin).
		Count(&conflicts).Error
	if err != nil {
		return false, model.WrapStorage(err)
	}

	return conflicts == 0, nil
}

// OverlapFilter applies the same predicate as a subquery exclusion, for
// listing every room free in a range.
func OverlapFilter(db *gorm.DB, checkin, checkout utils.CustomDate) *gorm.DB {
	sub := db.Model(&model.Reservation{}).
		Select("room_id").
		Where("status IN ? AND checkin_date < ? AND checkout_date > ?",
			model.ConflictingStatuses, checkout, checkin)
	return db.Model(&model.Room{}).Where("active = ?", true).Where("id NOT IN (?)", sub)
}
