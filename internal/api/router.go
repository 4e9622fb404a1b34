package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/studio-admin-api/internal/config"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/service"
)

// NewRouter builds the HTTP surface: public health and auth endpoints,
// then the session-gated admin resources.
func NewRouter(services *service.Services, sessions *SessionStore, db *database.DB, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(corsMiddleware())

	router.GET("/health", healthHandler(db))

	authHandler := NewAuthHandler(services.Auth, sessions, cfg.Auth, log)
	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	admin := router.Group("/api", RequireAdmin(sessions, cfg.Auth.SessionCookie))
	{
		admin.GET("/stats", statsHandler(services, log))

		NewResourceHandler[models.BlogPost, models.BlogPostInput]("blog", services.Post, log).
			Register(admin.Group("/blog"))
		NewResourceHandler[models.ClassRecord, models.ClassInput]("classes", services.Class, log).
			Register(admin.Group("/classes"))
		NewResourceHandler[models.Coach, models.CoachInput]("coaches", services.Coach, log).
			Register(admin.Group("/coaches"))
		NewResourceHandler[models.Event, models.EventInput]("events", services.Event, log).
			Register(admin.Group("/events"))
		NewResourceHandler[models.Product, models.ProductInput]("products", services.Product, log).
			Register(admin.Group("/products"))
	}

	return router
}

// requestLogger logs each request with method, path, status and latency
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("Request processed")
	}
}

// corsMiddleware handles CORS headers for the browser admin panel
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// healthHandler reports service and database health
func healthHandler(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  "database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// statsHandler reports per-collection record counts for the dashboard
func statsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		counts := gin.H{}
		for name, count := range map[string]func() (int, error){
			"posts":    func() (int, error) { return services.Post.Count(ctx) },
			"classes":  func() (int, error) { return services.Class.Count(ctx) },
			"coaches":  func() (int, error) { return services.Coach.Count(ctx) },
			"events":   func() (int, error) { return services.Event.Count(ctx) },
			"products": func() (int, error) { return services.Product.Count(ctx) },
		} {
			n, err := count()
			if err != nil {
				respondError(c, log, err)
				return
			}
			counts[name] = n
		}
		c.JSON(http.StatusOK, counts)
	}
}
