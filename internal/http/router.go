package api

import (
	"log"
	stdhttp "net/http"
	"strings"
	"time"

	intconfig "hoteldesk/internal/config"
	h "hoteldesk/internal/http/handlers"
	"hoteldesk/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.SetHotelIdentity(env.HotelName, env.HotelGSTIN)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsConfig(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// front-desk surface, any signed-in staff
		desk := api.Group("", middleware.RequireAuth(h.JWTSecret()))
		{
			bookings := desk.Group("/bookings")
			bookings.GET("", h.ListBookings)
			bookings.POST("", h.CreateBooking)
			bookings.POST("/quote", h.QuoteBooking)
			bookings.GET("/:id", h.GetBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.POST("/:id/check-out", h.CheckOutBooking)
			bookings.GET("/:id/receipt", h.GetFinalReceipt)
			bookings.GET("/:id/advance-receipt", h.GetAdvanceReceipt)

			rooms := desk.Group("/rooms")
			rooms.GET("", h.GetRoomCategories)
			rooms.GET("/available", h.GetAvailableRooms)

			desk.GET("/meta/ota", h.GetOTAOptions)

			calendar := desk.Group("/calendar")
			calendar.GET("", h.GetCalendarMonth)
			calendar.GET("/day", h.GetCalendarDay)

			// analytics stays with the back office
			reports := desk.Group("/reports", middleware.RequireRoles("admin"))
			reports.GET("/summary", h.GetReportsSummary)
		}
	}

	h.SetRouter(r)
	return r
}

func corsConfig(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if origins := strings.TrimSpace(env.CORSOrigins); origins != "" {
		cfg.AllowOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	return cors.New(cfg)
}
