package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	v1.Get("/status", handler.ApiStatus)
	v1.Get("/hotel/info", handler.HotelInfo)

	auth := v1.Group("/auth")
	auth.Post("/login", handler.LoginStaff)
	auth.Post("/login/guest", handler.LoginGuest)
	auth.Post("/register", validate.RegisterGuest(), handler.RegisterGuest)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	client := v1.Group("/client", logger.New())
	client.Get("/", middleware.Protected(), middleware.RequireStaff(), handler.GetClients)
	client.Get("/statistics", middleware.Protected(), middleware.RequireStaff(), handler.GetClientStatistics)
	client.Get("/cpf/:cpf", middleware.Protected(), middleware.RequireStaff(), handler.FindClientByCPF)
	client.Get("/:clientId", middleware.Protected(), middleware.RequireStaff(), validate.GetById("clientId"), handler.GetClientById)
	client.Get("/:clientId/reservations", middleware.Protected(), middleware.RequireStaff(), validate.GetById("clientId"), handler.GetClientReservations)
	client.Post("/", middleware.Protected(), middleware.RequireStaff(), validate.CreateClient(), handler.CreateClient)
	client.Put("/:clientId", middleware.Protected(), middleware.RequireStaff(), validate.EditClient("clientId"), handler.EditClient)
	client.Delete("/:clientId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("clientId"), handler.DeleteClient)

	room := v1.Group("/room", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/available", handler.GetAvailableRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Get("/:roomId/availability", validate.GetById("roomId"), handler.CheckRoomAvailability)
	room.Post("/", middleware.Protected(), middleware.RequireAdmin(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), middleware.RequireAdmin(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Patch("/:roomId/status", middleware.Protected(), middleware.RequireStaff(), validate.UpdateRoomStatus("roomId"), handler.UpdateRoomStatus)
	room.Post("/:roomId/photos", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("roomId"), handler.AddRoomPhotos)
	room.Post("/:roomId/photos/upload", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("roomId"), handler.UploadRoomPhoto)
	room.Delete("/:roomId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("roomId"), handler.DeleteRoom)

	reservation := v1.Group("/reservation", logger.New())
	reservation.Get("/", middleware.Protected(), middleware.RequireStaff(), handler.GetReservations)
	reservation.Get("/today", middleware.Protected(), middleware.RequireStaff(), handler.GetReservationsToday)
	reservation.Get("/statistics", middleware.Protected(), middleware.RequireStaff(), handler.GetReservationStatistics)
	reservation.Get("/status/:status", middleware.Protected(), middleware.RequireStaff(), handler.GetReservationsByStatus)
	reservation.Get("/:reservationId", middleware.Protected(), middleware.RequireStaff(), validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Put("/:reservationId", middleware.Protected(), middleware.RequireStaff(), validate.UpdateReservation("reservationId"), handler.UpdateReservation)
	reservation.Patch("/:reservationId/confirm", middleware.Protected(), middleware.RequireStaff(), validate.GetById("reservationId"), handler.ConfirmReservation)
	reservation.Patch("/:reservationId/checkin", middleware.Protected(), middleware.RequireStaff(), validate.GetById("reservationId"), handler.CheckInReservation)
	reservation.Patch("/:reservationId/checkout", middleware.Protected(), middleware.RequireStaff(), validate.GetById("reservationId"), handler.CheckOutReservation)
	reservation.Patch("/:reservationId/cancel", middleware.Protected(), middleware.RequireStaff(), validate.GetById("reservationId"), handler.CancelReservation)
	reservation.Delete("/:reservationId", middleware.Protected(), middleware.RequireAdmin(), validate.GetById("reservationId"), handler.DeleteReservation)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/dashboard", middleware.Protected(), middleware.RequireStaff(), handler.GetDashboardStats)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/frontdesk", websocket.New(handler.FrontDeskSocket))
}
