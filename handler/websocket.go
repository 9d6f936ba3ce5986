package handler

import (
	"context"
	"encoding/json"
	"log"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/contrib/websocket"
)

// Every reservation transition is published on this channel; the front-desk
// dashboard keeps a socket open to follow arrivals and departures live.
const frontDeskChannel = "frontdesk:reservations"

type reservationEvent struct {
	Event         string `json:"event"`
	ReservationId uint   `json:"reservationId"`
	Code          string `json:"code"`
	RoomId        uint   `json:"roomId"`
	Status        string `json:"status"`
}

// PublishReservationEvent pushes a status change into redis for fan-out.
// A missing redis client just disables the live feed.
func PublishReservationEvent(reservation *model.Reservation, event string) {
	if database.Redis == nil || reservation == nil {
		return
	}

	payload, err := json.Marshal(reservationEvent{
		Event:         event,
		ReservationId: reservation.ID,
		Code:          reservation.Code,
		RoomId:        reservation.RoomID,
		Status:        reservation.Status,
	})
	if err != nil {
		return
	}

	if err := database.Redis.Publish(context.Background(), frontDeskChannel, payload).Err(); err != nil {
		log.Printf("failed to publish reservation event: %v", err)
	}
}

// FrontDeskSocket streams reservation events to one dashboard connection.
// Each connection holds its own redis subscription.
func FrontDeskSocket(c *websocket.Conn) {
	defer c.Close()

	if database.Redis == nil {
		c.WriteJSON(map[string]string{"error": "live feed unavailable"})
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), frontDeskChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
