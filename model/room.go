package model

const (
	RoomAvailable   = "AVAILABLE"
	RoomOccupied    = "OCCUPIED"
	RoomMaintenance = "MAINTENANCE"
	RoomCleaning    = "CLEANING"
)

const (
	RoomTypeStandard = "STANDARD"
	RoomTypeCouple   = "COUPLE"
	RoomTypeSuite    = "SUITE"
	RoomTypeFamily   = "FAMILY"
)

// Room status is informational housekeeping state. Booking conflicts are
// derived from the reservations table, never from this field.
type Room struct {
	DTO
	Number             string  `gorm:"unique;size:10" json:"number"`
	Floor              *int    `json:"floor,omitempty"`
	Type               string  `json:"type"` // STANDARD, COUPLE, SUITE, FAMILY
	MaxCapacity        int     `json:"maxCapacity"`
	NightlyRate        float64 `json:"nightlyRate"`
	HasBalcony         bool    `json:"hasBalcony"`
	HasMinibar         bool    `json:"hasMinibar"`
	HasAirConditioning bool    `gorm:"default:true" json:"hasAirConditioning"`
	HasTV              bool    `gorm:"default:true" json:"hasTV"`
	HasWifi            bool    `gorm:"default:true" json:"hasWifi"`
	View               string  `gorm:"default:internal" json:"view"`
	Status             string  `gorm:"default:AVAILABLE" json:"status"`
	Description        *string `json:"description,omitempty"`
	Photos             *string `json:"photos,omitempty"` // JSON array of URLs
	Active             bool    `gorm:"default:true" json:"active"`
}

type CreateRoomInput struct {
	Number             string  `json:"number" validate:"required"`
	Floor              *int    `json:"floor"`
	Type               string  `json:"type" validate:"required,oneof=STANDARD COUPLE SUITE FAMILY"`
	MaxCapacity        int     `json:"maxCapacity" validate:"required,min=1"`
	NightlyRate        float64 `json:"nightlyRate" validate:"required,gt=0"`
	HasBalcony         bool    `json:"hasBalcony"`
	HasMinibar         bool    `json:"hasMinibar"`
	HasAirConditioning *bool   `json:"hasAirConditioning"`
	HasTV              *bool   `json:"hasTV"`
	HasWifi            *bool   `json:"hasWifi"`
	View               string  `json:"view" validate:"omitempty,oneof=internal external sea garden"`
	Description        *string `json:"description"`
}

type RoomStatistics struct {
	TotalRooms  int64   `json:"totalRooms"`
	Available   int64   `json:"available"`
	Occupied    int64   `json:"occupied"`
	Maintenance int64   `json:"maintenance"`
	Cleaning    int64   `json:"cleaning"`
	AverageRate float64 `json:"averageRate"`
	MinimumRate float64 `json:"minimumRate"`
	MaximumRate float64 `json:"maximumRate"`
}
