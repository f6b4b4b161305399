package routes

import (
	"time"

	"github.com/gauravmindaptix26/hot-Barcelona-sub000/handlers"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/middleware"
	"github.com/gauravmindaptix26/hot-Barcelona-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:3000", "http://localhost:5500"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	router.POST("/api/register",
		middleware.RateLimitByIP(limiter, "register", 5, 15*time.Minute),
		handlers.Register)
	router.POST("/api/login", handlers.Login)

	router.GET("/api/girls", handlers.ListListings(models.CategoryGirls))
	router.GET("/api/trans", handlers.ListListings(models.CategoryTrans))

	// The trans flow is sessionless: the document's own email+password pair
	// authenticates every save.
	router.POST("/api/trans",
		middleware.RateLimitByIP(limiter, "submit", 10, 10*time.Minute),
		handlers.SubmitAnonymousListing(models.CategoryTrans))
	router.POST("/api/profile-lookup",
		middleware.RateLimitByIP(limiter, "lookup", 10, time.Minute),
		handlers.ProfileLookup)

	router.GET("/api/profile-reviews", middleware.OptionalJWTAuth(), handlers.GetReviews)
	router.GET("/api/profiles/:id", handlers.GetPublicProfile)

	router.POST("/api/auth/forgot-password",
		middleware.RateLimitByIP(limiter, "forgot", 3, 15*time.Minute),
		handlers.ForgotPassword)
	router.POST("/api/auth/reset-password", handlers.ResetPassword)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	protected.POST("/girls",
		middleware.RateLimitByIP(limiter, "submit", 10, 10*time.Minute),
		handlers.SubmitListing(models.CategoryGirls))
	protected.GET("/my-ad", handlers.MyListing)

	protected.POST("/profile-reviews",
		middleware.RateLimitByUser(limiter, "review", 5, time.Minute),
		handlers.SubmitReview)

	protected.POST("/account/password",
		middleware.RateLimitByUser(limiter, "password", 5, time.Minute),
		handlers.ChangePassword)

	protected.GET("/profile", handlers.GetMyProfile)
	protected.PUT("/profile", handlers.UpdateMyProfile)

	protected.POST("/upload-photo",
		middleware.RateLimitByUser(limiter, "upload", 20, 10*time.Minute),
		handlers.UploadPhoto)

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())

	admin.GET("/profiles", handlers.AdminListListings)
	admin.PATCH("/profiles/:id", handlers.ModerateListing)
	admin.PUT("/profiles/:id", handlers.AdminEditListing)
	admin.DELETE("/profiles/:id", handlers.DeleteListing)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
