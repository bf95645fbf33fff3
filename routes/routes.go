package routes

import (
	"net/http"
	"time"

	"hotelify/handlers"
	"hotelify/middleware"
	"hotelify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Auth.Me)
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("", hb.Bookings.GetBookings)
		api.GET("/:id", hb.Bookings.GetBookingByID)
		api.PATCH("/:id", hb.Bookings.UpdateBooking)
		api.DELETE("/:id", hb.Bookings.DeleteBooking)
	}
}

// RegisterRoomRoutes registers room management endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Rooms.CreateRoom)
		api.GET("", hb.Rooms.GetRooms)
		api.GET("/:id", hb.Rooms.GetRoomByID)
		api.PATCH("/:id", hb.Rooms.UpdateRoom)
		api.DELETE("/:id", hb.Rooms.DeleteRoom)
	}
}

// RegisterGuestRoutes registers guest management endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Guests.CreateGuest)
		api.GET("", hb.Guests.GetGuests)
		api.GET("/:id", hb.Guests.GetGuestByID)
		api.PATCH("/:id", hb.Guests.UpdateGuest)
		api.DELETE("/:id", hb.Guests.DeleteGuest)
	}
}

// RegisterStaffRoutes registers staff management endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Staff.CreateStaffMember)
		api.GET("", hb.Staff.GetStaffMembers)
		api.GET("/:id", hb.Staff.GetStaffMemberByID)
		api.PUT("/:id", hb.Staff.UpdateStaffMember)
		api.DELETE("/:id", hb.Staff.DeleteStaffMember)
	}
}

// RegisterInventoryRoutes registers inventory endpoints.
func RegisterInventoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inventory")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Inventory.CreateInventoryItem)
		api.GET("", hb.Inventory.GetInventoryItems)
		api.GET("/:id", hb.Inventory.GetInventoryItemByID)
		api.PUT("/:id", hb.Inventory.UpdateInventoryItem)
		api.DELETE("/:id", hb.Inventory.DeleteInventoryItem)
	}
}

// RegisterSettingsRoutes registers hotel settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Settings.GetSettings)
		api.PUT("", hb.Settings.UpdateSettings)
	}
}

// RegisterSearchRoutes registers the cross-entity search endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Search.GlobalSearch)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hotelify API is running",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterInventoryRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterHealthRoute(r)
}
