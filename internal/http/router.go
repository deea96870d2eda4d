package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.SetStrictBooking(env.StrictBooking)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := h.JWTSecret()
	adminOnly := []gin.HandlerFunc{middleware.RequireAuth(secret), middleware.RequireRoles("admin")}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/recovery", h.Recovery)
		// legacy paths the first app build calls
		api.POST("/login", h.Login)
		api.POST("/register", h.Register)

		// Playgrounds (map screen + admin panel)
		playgrounds := api.Group("/playgrounds")
		playgrounds.GET("", h.GetPlaygrounds)
		playgrounds.GET("/:id", h.GetPlaygroundByID)
		playgrounds.POST("", append(adminOnly, h.CreatePlayground)...)
		playgrounds.PUT("/:id", append(adminOnly, h.UpdatePlayground)...)
		playgrounds.DELETE("/:id", append(adminOnly, h.DeletePlayground)...)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("/:playgroundId", middleware.AuthOptional(secret), h.CreateBooking)

		// Payments
		payments := api.Group("/payments")
		payments.PUT("/:paymentId/complete", h.CompletePayment)
		payments.GET("/:paymentId", h.GetPaymentByID)
		payments.GET("/:paymentId/receipt", h.GetPaymentReceiptPDF)
		payments.GET("", append(adminOnly, h.GetPayments)...)

		// Users (admin panel)
		users := api.Group("/users")
		users.GET("/:id/notifications", h.GetUserNotifications)
		users.GET("", append(adminOnly, h.GetUsers)...)
		users.GET("/:id", append(adminOnly, h.GetUserByID)...)
		users.PUT("/:id", append(adminOnly, h.UpdateUser)...)
		users.DELETE("/:id", append(adminOnly, h.DeleteUser)...)

		// Notifications
		notifications := api.Group("/notifications")
		notifications.POST("", append(adminOnly, h.CreateNotification)...)
		notifications.PUT("/:id/read", h.MarkNotificationRead)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/summary", append(adminOnly, h.GetSummaryReport)...)
	}

	h.SetRouter(r)
	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		// Expo dev server + local web builds
		cfg.AllowOrigins = []string{
			"http://localhost:8081",
			"http://127.0.0.1:8081",
			"http://localhost:19006",
			"http://127.0.0.1:19006",
		}
	}
	return cors.New(cfg)
}
