package routes

import (
	"matha/auth"
	"matha/bookings"
	"matha/contact"
	"matha/home"
	"matha/middleware"
	"matha/news"
	"matha/ratelim"
	"matha/rooms"
	"matha/seed"
	"matha/sevas"

	"github.com/julienschmidt/httprouter"
)

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/", home.Index)
	router.GET("/test", home.TestStore)
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
}

func AddSevaRoutes(router *httprouter.Router) {
	router.GET("/api/sevas", sevas.GetSevas)
	router.POST("/api/sevas", middleware.Authenticate(middleware.RequireAdmin(sevas.CreateSeva)))
}

func AddRoomRoutes(router *httprouter.Router) {
	router.GET("/api/rooms", rooms.GetRooms)
	router.POST("/api/rooms", middleware.Authenticate(middleware.RequireAdmin(rooms.CreateRoom)))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/api/book/seva", middleware.Authenticate(bookings.BookSeva))
	router.POST("/api/book/room", middleware.Authenticate(bookings.BookRoom))
	router.GET("/api/bookings", middleware.Authenticate(bookings.MyBookings))
	router.GET("/api/bookings/receipt/:kind/:id", middleware.Authenticate(bookings.PrintReceipt))
}

func AddNewsRoutes(router *httprouter.Router) {
	router.GET("/api/news", news.GetNews)
	router.POST("/api/news", middleware.Authenticate(middleware.RequireAdmin(news.CreateNews)))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.SubmitMessage))
}

func AddSeedRoutes(router *httprouter.Router) {
	router.POST("/api/seed", middleware.Authenticate(middleware.RequireAdmin(seed.SeedCatalog)))
}
