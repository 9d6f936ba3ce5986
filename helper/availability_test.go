package helper

import (
	"testing"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Account{}, &model.Client{}, &model.Room{}, &model.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func createTestClient(t *testing.T, db *gorm.DB) *model.Client {
	t.Helper()

	client := model.Client{
		FullName:    "Maria Souza",
		CPF:         "529.982.247-25",
		Nationality: "Brasileira",
		VisitReason: "tourism",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return &client
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, rate float64) *model.Room {
	t.Helper()

	room := model.Room{
		Number:      number,
		Type:        model.RoomTypeStandard,
		MaxCapacity: 2,
		NightlyRate: rate,
		Status:      model.RoomAvailable,
		Active:      true,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return &room
}

func insertReservation(t *testing.T, db *gorm.DB, clientID, roomID uint, checkin, checkout utils.CustomDate, status string) *model.Reservation {
	t.Helper()

	reservation := model.Reservation{
		Code:         NewReservationCode(),
		ClientID:     clientID,
		RoomID:       roomID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		NightlyRate:  200,
		NightCount:   checkin.DaysUntil(checkout),
		TotalPrice:   200 * float64(checkin.DaysUntil(checkout)),
		Status:       status,
		GuestCount:   1,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("failed to insert reservation: %v", err)
	}
	return &reservation
}

func TestRoomAvailableOverlap(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	// existing confirmed stay occupies [2024-06-10, 2024-06-15)
	insertReservation(t, db, client.ID, room.ID,
		utils.NewDate(2024, time.June, 10), utils.NewDate(2024, time.June, 15),
		model.StatusConfirmed)

	cases := []struct {
		name     string
		checkin  utils.CustomDate
		checkout utils.CustomDate
		want     bool
	}{
		{"before, checkout touches checkin", utils.NewDate(2024, time.June, 5), utils.NewDate(2024, time.June, 10), true},
		{"after, checkin touches checkout", utils.NewDate(2024, time.June, 15), utils.NewDate(2024, time.June, 20), true},
		{"overlaps the start", utils.NewDate(2024, time.June, 9), utils.NewDate(2024, time.June, 11), false},
		{"fully inside", utils.NewDate(2024, time.June, 12), utils.NewDate(2024, time.June, 14), false},
		{"surrounds the stay", utils.NewDate(2024, time.June, 5), utils.NewDate(2024, time.June, 20), false},
		{"overlaps the end", utils.NewDate(2024, time.June, 14), utils.NewDate(2024, time.June, 16), false},
		{"identical range", utils.NewDate(2024, time.June, 10), utils.NewDate(2024, time.June, 15), false},
		{"single night inside", utils.NewDate(2024, time.June, 10), utils.NewDate(2024, time.June, 11), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RoomAvailable(db, room.ID, tc.checkin, tc.checkout)
			if err != nil {
				t.Fatalf("RoomAvailable returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("RoomAvailable(%s, %s) = %v, want %v", tc.checkin, tc.checkout, got, tc.want)
			}
		})
	}
}

func TestRoomAvailableUnknownRoom(t *testing.T) {
	db := setupTestDB(t)

	available, err := RoomAvailable(db, 9999,
		utils.NewDate(2026, time.September, 1), utils.NewDate(2026, time.September, 3))
	if err != nil {
		t.Fatalf("unknown room should not error: %v", err)
	}
	if available {
		t.Error("a room that is not in inventory must never be available")
	}
}

func TestRoomAvailableInvalidRange(t *testing.T) {
	db := setupTestDB(t)
	room := createTestRoom(t, db, "101", 200)

	checkin := utils.NewDate(2024, time.June, 15)
	checkout := utils.NewDate(2024, time.June, 10)

	available, err := RoomAvailable(db, room.ID, checkin, checkout)
	if err != nil {
		t.Fatalf("reversed range should not error: %v", err)
	}
	if available {
		t.Error("reversed range should never be available")
	}

	available, err = RoomAvailable(db, room.ID, checkin, checkin)
	if err != nil {
		t.Fatalf("empty range should not error: %v", err)
	}
	if available {
		t.Error("empty range should never be available")
	}
}

func TestNonBlockingStatuses(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	room := createTestRoom(t, db, "101", 200)

	checkin := utils.NewDate(2024, time.June, 10)
	checkout := utils.NewDate(2024, time.June, 15)

	for _, status := range []string{model.StatusPending, model.StatusCancelled, model.StatusCheckedOut} {
		insertReservation(t, db, client.ID, room.ID, checkin, checkout, status)
	}

	available, err := RoomAvailable(db, room.ID, checkin, checkout)
	if err != nil {
		t.Fatalf("RoomAvailable returned error: %v", err)
	}
	if !available {
		t.Error("pending, cancelled and checked-out reservations must not block the room")
	}

	insertReservation(t, db, client.ID, room.ID, checkin, checkout, model.StatusCheckedIn)

	available, err = RoomAvailable(db, room.ID, checkin, checkout)
	if err != nil {
		t.Fatalf("RoomAvailable returned error: %v", err)
	}
	if available {
		t.Error("a checked-in stay must block the room")
	}
}

func TestOverlapFilter(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db)
	free := createTestRoom(t, db, "101", 200)
	busy := createTestRoom(t, db, "102", 250)
	inactive := createTestRoom(t, db, "103", 300)
	db.Model(inactive).Update("active", false)

	checkin := utils.NewDate(2024, time.June, 10)
	checkout := utils.NewDate(2024, time.June, 15)
	insertReservation(t, db, client.ID, busy.ID, checkin, checkout, model.StatusConfirmed)

	var rooms []model.Room
	if err := OverlapFilter(db, checkin, checkout).Find(&rooms).Error; err != nil {
		t.Fatalf("OverlapFilter query failed: %v", err)
	}

	if len(rooms) != 1 {
		t.Fatalf("expected 1 free room, got %d", len(rooms))
	}
	if rooms[0].ID != free.ID {
		t.Errorf("expected room %d to be free, got %d", free.ID, rooms[0].ID)
	}
}
