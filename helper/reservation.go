package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewReservationCode builds the public code handed to the guest (RSV-XXXXXXXX).
func NewReservationCode() string {
	id := uuid.New().String()
	return "RSV-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// lockRoom takes a FOR UPDATE lock on the room row. Under READ COMMITTED two
// concurrent transactions can both count zero conflicts and both commit, so
// every overlap recheck serializes on the room first. The sqlite driver drops
// the locking clause; sqlite has a single writer anyway.
func lockRoom(tx *gorm.DB, roomID uint) error {
	var room model.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotFound("room not found")
		}
		return model.WrapStorage(err)
	}
	return nil
}

func getReservation(tx *gorm.DB, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := tx.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound("reservation not found")
		}
		return nil, model.WrapStorage(err)
	}
	return &reservation, nil
}

// ReserveRoom validates the request and creates a PENDING reservation.
// The availability check and the insert run in one transaction so two
// concurrent requests for the same room and dates cannot both succeed.
func ReserveRoom(db *gorm.DB, input model.CreateReservationInput) (*model.Reservation, error) {
	if input.ClientID == 0 || input.RoomID == 0 || input.CheckinDate.IsZero() || input.CheckoutDate.IsZero() {
		return nil, model.ErrInvalidInput("missing required fields")
	}

	var client model.Client
	if err := db.First(&client, input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound("client not found")
		}
		return nil, model.WrapStorage(err)
	}

	var room model.Room
	if err := db.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound("room not found")
		}
		return nil, model.WrapStorage(err)
	}

	if input.CheckinDate.BeforeDate(utils.Today()) {
		return nil, model.ErrInvalidInput("checkin date cannot be in the past")
	}
	if !input.CheckoutDate.AfterDate(input.CheckinDate) {
		return nil, model.ErrInvalidInput("checkout date must be after checkin date")
	}

	nights := input.CheckinDate.DaysUntil(input.CheckoutDate)
	guestCount := input.GuestCount
	if guestCount <= 0 {
		guestCount = 1
	}

	reservation := &model.Reservation{
		Code:          NewReservationCode(),
		ClientID:      input.ClientID,
		RoomID:        input.RoomID,
		CheckinDate:   input.CheckinDate,
		CheckoutDate:  input.CheckoutDate,
		NightlyRate:   room.NightlyRate, // snapshot, later rate edits do not touch this booking
		NightCount:    nights,
		TotalPrice:    room.NightlyRate * float64(nights),
		AmountPaid:    input.AmountPaid,
		Status:        model.StatusPending,
		GuestCount:    guestCount,
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, input.RoomID); err != nil {
			return err
		}
		available, err := RoomAvailable(tx, input.RoomID, input.CheckinDate, input.CheckoutDate)
		if err != nil {
			return err
		}
		if !available {
			return model.ErrConflict("room not available for selected dates")
		}
		if err := tx.Create(reservation).Error; err != nil {
			return model.WrapStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// ConfirmReservation moves PENDING -> CONFIRMED. Pending holds do not block
// the room, so the overlap check runs again here: the room may have been
// booked out from under the hold since it was created.
func ConfirmReservation(db *gorm.DB, id uint) (*model.Reservation, error) {
	var reservation *model.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = getReservation(tx, id)
		if err != nil {
			return err
		}

		if reservation.Status != model.StatusPending {
			return model.ErrInvalidTransition("only pending reservations can be confirmed")
		}

		if err := lockRoom(tx, reservation.RoomID); err != nil {
			return err
		}
		available, err := RoomAvailable(tx, reservation.RoomID, reservation.CheckinDate, reservation.CheckoutDate)
		if err != nil {
			return err
		}
		if !available {
			return model.ErrConflict("room not available for selected dates")
		}

		reservation.Status = model.StatusConfirmed
		if err := tx.Model(reservation).Update("status", model.StatusConfirmed).Error; err != nil {
			return model.WrapStorage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// CheckInReservation moves CONFIRMED -> CHECKED_IN on or after the scheduled
// date, recording the operator and the actual time.
func CheckInReservation(db *gorm.DB, id uint, operatorID *uint) (*model.Reservation, error) {
	reservation, err := getReservation(db, id)
	if err != nil {
		return nil, err
	}

	if reservation.Status != model.StatusConfirmed {
		return nil, model.ErrInvalidTransition("reservation must be confirmed before check-in")
	}
	if reservation.CheckinDate.AfterDate(utils.Today()) {
		return nil, model.ErrInvalidTransition("check-in only allowed on or after the scheduled date")
	}

	now := time.Now()
	reservation.Status = model.StatusCheckedIn
	reservation.CheckedInAt = &now
	reservation.CheckinOperatorID = operatorID
	if err := db.Model(reservation).Updates(map[string]interface{}{
		"status":              model.StatusCheckedIn,
		"checked_in_at":       now,
		"checkin_operator_id": operatorID,
	}).Error; err != nil {
		return nil, model.WrapStorage(err)
	}
	return reservation, nil
}

// CheckOutReservation moves CHECKED_IN -> CHECKED_OUT.
func CheckOutReservation(db *gorm.DB, id uint, operatorID *uint) (*model.Reservation, error) {
	reservation, err := getReservation(db, id)
	if err != nil {
		return nil, err
	}

	if reservation.Status != model.StatusCheckedIn {
		return nil, model.ErrInvalidTransition("checkout requires a prior check-in")
	}

	now := time.Now()
	reservation.Status = model.StatusCheckedOut
	reservation.CheckedOutAt = &now
	reservation.CheckoutOperatorID = operatorID
	if err := db.Model(reservation).Updates(map[string]interface{}{
		"status":               model.StatusCheckedOut,
		"checked_out_at":       now,
		"checkout_operator_id": operatorID,
	}).Error; err != nil {
		return nil, model.WrapStorage(err)
	}
	return reservation, nil
}

// CancelReservation moves PENDING or CONFIRMED -> CANCELLED. The reason is
// appended to the notes with a timestamp, never overwriting earlier notes.
func CancelReservation(db *gorm.DB, id uint, reason string) (*model.Reservation, error) {
	reservation, err := getReservation(db, id)
	if err != nil {
		return nil, err
	}

	if reservation.Status != model.StatusPending && reservation.Status != model.StatusConfirmed {
		return nil, model.ErrInvalidTransition("reservation cannot be cancelled in its current state")
	}

	updates := map[string]interface{}{"status": model.StatusCancelled}
	if reason != "" {
		notes := reservation.Notes + fmt.Sprintf("\nCancellation: %s (%s)", reason, time.Now().Format("02/01/2006 15:04"))
		updates["notes"] = notes
		reservation.Notes = notes
	}

	reservation.Status = model.StatusCancelled
	if err := db.Model(reservation).Updates(updates).Error; err != nil {
		return nil, model.WrapStorage(err)
	}
	return reservation, nil
}

// DeleteReservation removes a PENDING reservation permanently. Anything past
// pending represents a commitment and must go through cancellation instead.
func DeleteReservation(db *gorm.DB, id uint) error {
	reservation, err := getReservation(db, id)
	if err != nil {
		return err
	}

	if reservation.Status != model.StatusPending {
		return model.ErrInvalidTransition("only pending reservations may be deleted")
	}

	if err := db.Delete(reservation).Error; err != nil {
		return model.WrapStorage(err)
	}
	return nil
}

// UpdateReservation changes the mutable fields of a non-terminal reservation.
// Dates, rate and status are out of reach by construction of the input type.
func UpdateReservation(db *gorm.DB, id uint, input model.UpdateReservationInput) (*model.Reservation, error) {
	reservation, err := getReservation(db, id)
	if err != nil {
		return nil, err
	}

	if reservation.Status == model.StatusCheckedOut || reservation.Status == model.StatusCancelled {
		return nil, model.ErrInvalidTransition("finalized reservations cannot be updated")
	}

	updates := map[string]interface{}{}
	if input.GuestCount != nil {
		updates["guest_count"] = *input.GuestCount
		reservation.GuestCount = *input.GuestCount
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
		reservation.Notes = *input.Notes
	}
	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
		reservation.PaymentMethod = input.PaymentMethod
	}
	if input.AmountPaid != nil {
		updates["amount_paid"] = *input.AmountPaid
		reservation.AmountPaid = *input.AmountPaid
	}
	if len(updates) == 0 {
		return reservation, nil
	}

	if err := db.Model(reservation).Updates(updates).Error; err != nil {
		return nil, model.WrapStorage(err)
	}
	return reservation, nil
}

// GetReservationStatistics aggregates the dashboard numbers, mirroring the
// reservations table as the single source of truth.
func GetReservationStatistics(db *gorm.DB) (*model.ReservationStatistics, error) {
	var stats model.ReservationStatistics
	err := db.Raw(`
        SELECT
            COUNT(*) AS total_reservations,
            COUNT(CASE WHEN status = 'PENDING' THEN 1 END) AS pending,
            COUNT(CASE WHEN status = 'CONFIRMED' THEN 1 END) AS confirmed,
            COUNT(CASE WHEN status = 'CHECKED_IN' THEN 1 END) AS checked_in,
            COUNT(CASE WHEN status = 'CHECKED_OUT' THEN 1 END) AS checked_out,
            COUNT(CASE WHEN status = 'CANCELLED' THEN 1 END) AS cancelled,
            COALESCE(SUM(total_price), 0) AS total_revenue,
            COALESCE(AVG(total_price), 0) AS average_ticket,
            COALESCE(AVG(night_count), 0) AS average_nights
        FROM reservations
    `).Scan(&stats).Error
	if err != nil {
		return nil, model.WrapStorage(err)
	}
	return &stats, nil
}

// FindReservationsToday returns reservations arriving or departing today.
func FindReservationsToday(db *gorm.DB) ([]model.Reservation, error) {
	today := utils.Today()
	var reservations []model.Reservation
	err := db.Preload("Client").Preload("Room").
		Where("checkin_date = ? OR checkout_date = ?", today, today).
		Order("checkin_date ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, model.WrapStorage(err)
	}
	return reservations, nil
}
