package model

import (
	"time"

	"hotel_manager/utils"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

// ConflictingStatuses are the statuses that block a room for overlapping
// dates. Pending holds and terminal reservations do not block.
var ConflictingStatuses = []string{StatusConfirmed, StatusCheckedIn}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	DTO
	Code         string           `gorm:"unique;size:20" json:"code"` // public code (RSV-XXXXXXXX)
	ClientID     uint             `json:"clientId"`
	Client       *Client          `json:"client,omitempty"`
	RoomID       uint             `json:"roomId"`
	Room         *Room            `json:"room,omitempty"`
	CheckinDate  utils.CustomDate `gorm:"type:date" json:"checkinDate"`
	CheckoutDate utils.CustomDate `gorm:"type:date" json:"checkoutDate"`

	// Rate snapshot taken at creation; never re-read from the room.
	NightlyRate float64 `json:"nightlyRate"`
	NightCount  int     `json:"nightCount"`
	TotalPrice  float64 `json:"totalPrice"`
	AmountPaid  float64 `json:"amountPaid"`

	Status        string  `gorm:"size:20;index" json:"status"`
	GuestCount    int     `gorm:"default:1" json:"guestCount"`
	Notes         string  `json:"notes"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`

	CheckinOperatorID  *uint      `json:"checkinOperatorId,omitempty"`
	CheckinOperator    *Account   `gorm:"foreignKey:CheckinOperatorID" json:"checkinOperator,omitempty"`
	CheckoutOperatorID *uint      `json:"checkoutOperatorId,omitempty"`
	CheckoutOperator   *Account   `gorm:"foreignKey:CheckoutOperatorID" json:"checkoutOperator,omitempty"`
	CheckedInAt        *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time `json:"checkedOutAt,omitempty"`
}

type CreateReservationInput struct {
	ClientID      uint             `json:"clientId" validate:"required"`
	RoomID        uint             `json:"roomId" validate:"required"`
	CheckinDate   utils.CustomDate `json:"checkinDate"`
	CheckoutDate  utils.CustomDate `json:"checkoutDate"`
	GuestCount    int              `json:"guestCount" validate:"omitempty,min=1"`
	Notes         string           `json:"notes"`
	PaymentMethod *string          `json:"paymentMethod"`
	AmountPaid    float64          `json:"amountPaid" validate:"omitempty,min=0"`
}

// UpdateReservationInput deliberately has no date, rate or status fields:
// dates and money are fixed at creation, status moves only through the
// lifecycle endpoints.
type UpdateReservationInput struct {
	GuestCount    *int     `json:"guestCount" validate:"omitempty,min=1"`
	Notes         *string  `json:"notes"`
	PaymentMethod *string  `json:"paymentMethod"`
	AmountPaid    *float64 `json:"amountPaid" validate:"omitempty,min=0"`
}

type CancelReservationInput struct {
	Reason string `json:"reason"`
}

type ReservationStatistics struct {
	TotalReservations int64   `json:"totalReservations"`
	Pending           int64   `json:"pending"`
	Confirmed         int64   `json:"confirmed"`
	CheckedIn         int64   `json:"checkedIn"`
	CheckedOut        int64   `json:"checkedOut"`
	Cancelled         int64   `json:"cancelled"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageTicket     float64 `json:"averageTicket"`
	AverageNights     float64 `json:"averageNights"`
}
