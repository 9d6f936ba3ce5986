package database

import (
	"log"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("paradise@2024"), 10)
	hashedPassword := string(bytes)
	if err != nil {
		hashedPassword = "paradise@2024"
	}

	accounts := []model.Account{
		{Name: "Administrator", Email: "admin@hotelparadise.com.br", Password: hashedPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Name: "Front Desk", Email: "recepcao@hotelparadise.com.br", Password: hashedPassword, Active: true, Role: constants.ROLE_RECEPTIONIST},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Email, "error:", err)
		}
	}

	rooms := []model.Room{
		{Number: "101", Floor: utils.Ptr(1), Type: "STANDARD", MaxCapacity: 2, NightlyRate: 150, View: "internal"},
		{Number: "102", Floor: utils.Ptr(1), Type: "STANDARD", MaxCapacity: 2, NightlyRate: 150, View: "internal"},
		{Number: "201", Floor: utils.Ptr(2), Type: "COUPLE", MaxCapacity: 2, NightlyRate: 220, HasBalcony: true, View: "external"},
		{Number: "202", Floor: utils.Ptr(2), Type: "FAMILY", MaxCapacity: 4, NightlyRate: 280, HasMinibar: true, View: "garden"},
		{Number: "301", Floor: utils.Ptr(3), Type: "SUITE", MaxCapacity: 3, NightlyRate: 350, HasBalcony: true, HasMinibar: true, View: "sea"},
	}

	for _, room := range rooms {
		if err := db.Where(model.Room{Number: room.Number}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Number, "error:", err)
		}
	}
}
