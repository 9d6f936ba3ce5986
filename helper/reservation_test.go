package helper

import (
	"strings"
	"testing"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"
)

func daysFromNow(n int) utils.CustomDate {
	y, m, d := time.Now().AddDate(0, 0, n).Date()
	return utils.NewDate(y, m, d)
}

func TestNewReservationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := NewReservationCode()
		if !strings.HasPrefix(code, "RSV-") || len(code) != 12 {
			t.Fatalf("unexpected code format: %s", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code generated: %s", code)
		}
		seen[code] = true
	}
}

func TestReserveRoomComputesNightsAndTotal(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 350)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(3),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	if reservation.Status != model.StatusPending {
		t.Errorf("new reservation should be pending, got %s", reservation.Status)
	}
	if reservation.NightCount != 2 {
		t.Errorf("expected 2 nights, got %d", reservation.NightCount)
	}
	if reservation.TotalPrice != 700 {
		t.Errorf("expected total 700, got %.2f", reservation.TotalPrice)
	}
	if reservation.NightlyRate != 350 {
		t.Errorf("expected rate snapshot 350, got %.2f", reservation.NightlyRate)
	}
	if reservation.GuestCount != 1 {
		t.Errorf("guest count should default to 1, got %d", reservation.GuestCount)
	}

	// later rate edits must not touch the stored booking
	db.Model(room).Update("nightly_rate", 999)

	var stored model.Reservation
	if err := db.First(&stored, reservation.ID).Error; err != nil {
		t.Fatalf("failed to reload reservation: %v", err)
	}
	if stored.NightlyRate != 350 || stored.TotalPrice != 700 {
		t.Errorf("rate snapshot changed after room edit: rate=%.2f total=%.2f", stored.NightlyRate, stored.TotalPrice)
	}
}

func TestReserveRoomValidation(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	cases := []struct {
		name  string
		input model.CreateReservationInput
		kind  model.ErrorKind
	}{
		{
			"missing dates",
			model.CreateReservationInput{ClientID: client.ID, RoomID: room.ID},
			model.KindInvalidInput,
		},
		{
			"unknown client",
			model.CreateReservationInput{ClientID: 9999, RoomID: room.ID, CheckinDate: daysFromNow(1), CheckoutDate: daysFromNow(2)},
			model.KindNotFound,
		},
		{
			"unknown room",
			model.CreateReservationInput{ClientID: client.ID, RoomID: 9999, CheckinDate: daysFromNow(1), CheckoutDate: daysFromNow(2)},
			model.KindNotFound,
		},
		{
			"checkin in the past",
			model.CreateReservationInput{ClientID: client.ID, RoomID: room.ID, CheckinDate: daysFromNow(-1), CheckoutDate: daysFromNow(2)},
			model.KindInvalidInput,
		},
		{
			"checkout equals checkin",
			model.CreateReservationInput{ClientID: client.ID, RoomID: room.ID, CheckinDate: daysFromNow(1), CheckoutDate: daysFromNow(1)},
			model.KindInvalidInput,
		},
		{
			"checkout before checkin",
			model.CreateReservationInput{ClientID: client.ID, RoomID: room.ID, CheckinDate: daysFromNow(3), CheckoutDate: daysFromNow(1)},
			model.KindInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReserveRoom(db, tc.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if model.KindOf(err) != tc.kind {
				t.Errorf("expected error kind %v, got %v (%v)", tc.kind, model.KindOf(err), err)
			}
		})
	}
}

func TestReserveRoomConflict(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	insertReservation(t, db, client.ID, room.ID, daysFromNow(10), daysFromNow(15), model.StatusConfirmed)

	_, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(12),
		CheckoutDate: daysFromNow(14),
	})
	if model.KindOf(err) != model.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	// back to back stays share the turnover day
	if _, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(15),
		CheckoutDate: daysFromNow(17),
	}); err != nil {
		t.Fatalf("same-day turnover should be allowed: %v", err)
	}
}

func TestConfirmReservation(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(3),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	confirmed, err := ConfirmReservation(db, reservation.ID)
	if err != nil {
		t.Fatalf("ConfirmReservation returned error: %v", err)
	}
	if confirmed.Status != model.StatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", confirmed.Status)
	}

	_, err = ConfirmReservation(db, reservation.ID)
	if model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("double confirm should be an invalid transition, got %v", err)
	}

	_, err = ConfirmReservation(db, 9999)
	if model.KindOf(err) != model.KindNotFound {
		t.Errorf("unknown id should be not found, got %v", err)
	}
}

func TestConfirmAfterRoomTaken(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	// two pending holds for the same room and dates can coexist
	first, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(5),
		CheckoutDate: daysFromNow(8),
	})
	if err != nil {
		t.Fatalf("first hold failed: %v", err)
	}
	second, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(6),
		CheckoutDate: daysFromNow(9),
	})
	if err != nil {
		t.Fatalf("second hold failed: %v", err)
	}

	if _, err := ConfirmReservation(db, first.ID); err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}

	// the room is gone now, the second hold cannot be confirmed
	_, err = ConfirmReservation(db, second.ID)
	if model.KindOf(err) != model.KindConflict {
		t.Errorf("expected conflict on second confirm, got %v", err)
	}

	var stored model.Reservation
	db.First(&stored, second.ID)
	if stored.Status != model.StatusPending {
		t.Errorf("failed confirm must leave the hold pending, got %s", stored.Status)
	}
}

func TestConfirmReservationRoomRemoved(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	hold := insertReservation(t, db, client.ID, room.ID, daysFromNow(1), daysFromNow(3), model.StatusPending)

	// room vanished between hold and confirmation
	if err := db.Delete(room).Error; err != nil {
		t.Fatalf("failed to delete room: %v", err)
	}

	_, err := ConfirmReservation(db, hold.ID)
	if model.KindOf(err) != model.KindNotFound {
		t.Errorf("confirming a hold on a removed room should be not found, got %v", err)
	}

	var stored model.Reservation
	db.First(&stored, hold.ID)
	if stored.Status != model.StatusPending {
		t.Errorf("failed confirm must leave the hold pending, got %s", stored.Status)
	}
}

func TestCheckInCheckOutLifecycle(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)
	operator := model.Account{Name: "Front Desk", Email: "desk@example.com", Role: "RECEPTIONIST", Active: true}
	db.Create(&operator)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  utils.Today(),
		CheckoutDate: daysFromNow(2),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	// check-out and check-in both refuse out-of-order calls
	if _, err := CheckOutReservation(db, reservation.ID, &operator.ID); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("checkout before checkin should fail, got %v", err)
	}
	if _, err := CheckInReservation(db, reservation.ID, &operator.ID); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("checkin of a pending reservation should fail, got %v", err)
	}

	if _, err := ConfirmReservation(db, reservation.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	checkedIn, err := CheckInReservation(db, reservation.ID, &operator.ID)
	if err != nil {
		t.Fatalf("CheckInReservation returned error: %v", err)
	}
	if checkedIn.Status != model.StatusCheckedIn {
		t.Errorf("expected CHECKED_IN, got %s", checkedIn.Status)
	}
	if checkedIn.CheckedInAt == nil {
		t.Error("check-in time not recorded")
	}
	if checkedIn.CheckinOperatorID == nil || *checkedIn.CheckinOperatorID != operator.ID {
		t.Error("check-in operator not recorded")
	}

	checkedOut, err := CheckOutReservation(db, reservation.ID, &operator.ID)
	if err != nil {
		t.Fatalf("CheckOutReservation returned error: %v", err)
	}
	if checkedOut.Status != model.StatusCheckedOut {
		t.Errorf("expected CHECKED_OUT, got %s", checkedOut.Status)
	}
	if checkedOut.CheckedOutAt == nil {
		t.Error("check-out time not recorded")
	}

	// terminal state, nothing more can happen
	if _, err := CancelReservation(db, reservation.ID, "too late"); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("cancel after checkout should fail, got %v", err)
	}
}

func TestCheckInBeforeScheduledDate(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(2),
		CheckoutDate: daysFromNow(4),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}
	if _, err := ConfirmReservation(db, reservation.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	_, err = CheckInReservation(db, reservation.ID, nil)
	if model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("early check-in should be an invalid transition, got %v", err)
	}
}

func TestCancelReservationAppendsReason(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(3),
		Notes:        "late arrival expected",
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	cancelled, err := CancelReservation(db, reservation.ID, "guest request")
	if err != nil {
		t.Fatalf("CancelReservation returned error: %v", err)
	}
	if cancelled.Status != model.StatusCancelled {
		t.Errorf("expected CANCELLED, got %s", cancelled.Status)
	}
	if !strings.HasPrefix(cancelled.Notes, "late arrival expected") {
		t.Errorf("original notes were lost: %q", cancelled.Notes)
	}
	if !strings.Contains(cancelled.Notes, "\nCancellation: guest request (") {
		t.Errorf("cancellation reason not appended: %q", cancelled.Notes)
	}

	// cancelling twice is rejected
	if _, err := CancelReservation(db, reservation.ID, "again"); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("double cancel should fail, got %v", err)
	}
}

func TestCancelWithoutReasonKeepsNotes(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(2),
		Notes:        "quiet floor please",
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	cancelled, err := CancelReservation(db, reservation.ID, "")
	if err != nil {
		t.Fatalf("CancelReservation returned error: %v", err)
	}
	if cancelled.Notes != "quiet floor please" {
		t.Errorf("notes changed on reasonless cancel: %q", cancelled.Notes)
	}
}

func TestDeleteReservation(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	pending, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(2),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	if err := DeleteReservation(db, pending.ID); err != nil {
		t.Fatalf("DeleteReservation returned error: %v", err)
	}

	var count int64
	db.Model(&model.Reservation{}).Where("id = ?", pending.ID).Count(&count)
	if count != 0 {
		t.Error("pending reservation was not removed")
	}

	confirmed := insertReservation(t, db, client.ID, room.ID, daysFromNow(5), daysFromNow(7), model.StatusConfirmed)
	if err := DeleteReservation(db, confirmed.ID); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("deleting a confirmed reservation should fail, got %v", err)
	}
}

func TestUpdateReservation(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	reservation, err := ReserveRoom(db, model.CreateReservationInput{
		ClientID:     client.ID,
		RoomID:       room.ID,
		CheckinDate:  daysFromNow(1),
		CheckoutDate: daysFromNow(3),
	})
	if err != nil {
		t.Fatalf("ReserveRoom returned error: %v", err)
	}

	guests := 3
	notes := "birthday decoration"
	updated, err := UpdateReservation(db, reservation.ID, model.UpdateReservationInput{
		GuestCount: &guests,
		Notes:      &notes,
	})
	if err != nil {
		t.Fatalf("UpdateReservation returned error: %v", err)
	}
	if updated.GuestCount != 3 || updated.Notes != "birthday decoration" {
		t.Errorf("update not applied: guests=%d notes=%q", updated.GuestCount, updated.Notes)
	}

	var stored model.Reservation
	db.First(&stored, reservation.ID)
	if stored.NightCount != 2 || stored.TotalPrice != 400 {
		t.Errorf("update must not touch dates or money: nights=%d total=%.2f", stored.NightCount, stored.TotalPrice)
	}

	if _, err := CancelReservation(db, reservation.ID, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := UpdateReservation(db, reservation.ID, model.UpdateReservationInput{Notes: &notes}); model.KindOf(err) != model.KindInvalidTransition {
		t.Errorf("updating a cancelled reservation should fail, got %v", err)
	}
}

func TestGetReservationStatistics(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	insertReservation(t, db, client.ID, room.ID, daysFromNow(1), daysFromNow(3), model.StatusConfirmed)
	insertReservation(t, db, client.ID, room.ID, daysFromNow(5), daysFromNow(8), model.StatusPending)
	insertReservation(t, db, client.ID, room.ID, daysFromNow(10), daysFromNow(12), model.StatusCancelled)

	stats, err := GetReservationStatistics(db)
	if err != nil {
		t.Fatalf("GetReservationStatistics returned error: %v", err)
	}

	if stats.TotalReservations != 3 {
		t.Errorf("expected 3 reservations, got %d", stats.TotalReservations)
	}
	if stats.Confirmed != 1 || stats.Pending != 1 || stats.Cancelled != 1 {
		t.Errorf("status counts wrong: %+v", stats)
	}
	if stats.TotalRevenue != 400+600+400 {
		t.Errorf("expected revenue 1400, got %.2f", stats.TotalRevenue)
	}
}

func TestExpireStalePendingReservations(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	stale := insertReservation(t, db, client.ID, room.ID, daysFromNow(-3), daysFromNow(-1), model.StatusPending)
	fresh := insertReservation(t, db, client.ID, room.ID, daysFromNow(2), daysFromNow(4), model.StatusPending)
	confirmed := insertReservation(t, db, client.ID, room.ID, daysFromNow(-3), daysFromNow(-1), model.StatusConfirmed)

	ExpireStalePendingReservations(db)

	var check model.Reservation
	db.First(&check, stale.ID)
	if check.Status != model.StatusCancelled {
		t.Errorf("stale pending hold should be cancelled, got %s", check.Status)
	}

	check = model.Reservation{}
	db.First(&check, fresh.ID)
	if check.Status != model.StatusPending {
		t.Errorf("future pending hold must survive the sweep, got %s", check.Status)
	}

	check = model.Reservation{}
	db.First(&check, confirmed.ID)
	if check.Status != model.StatusConfirmed {
		t.Errorf("confirmed reservations are not the sweep's business, got %s", check.Status)
	}
}
