package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/minesight/rockfall-backend-go/internal/auth"
	"github.com/minesight/rockfall-backend-go/internal/config"
	"github.com/minesight/rockfall-backend-go/internal/handler"
	"github.com/minesight/rockfall-backend-go/internal/middleware"
	"github.com/minesight/rockfall-backend-go/internal/models"
)

// Dependencies bundles everything the router needs
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Tokens  *auth.TokenIssuer
	Auth    *handler.AuthHandler
	Sensors *handler.SensorHandler
	Alerts  *handler.AlertHandler
	Predict *handler.PredictHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(deps.Logger), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Rockfall Monitoring API is running",
		})
	})

	requireAuth := middleware.Auth(deps.Tokens)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login/", deps.Auth.Login)
			authRoutes.POST("/token/refresh/", deps.Auth.RefreshToken)
			authRoutes.POST("/logout/", requireAuth, deps.Auth.Logout)
			authRoutes.GET("/profile/", requireAuth, deps.Auth.Profile)
		}

		sensors := api.Group("/sensors")
		{
			// Statistics are public; everything else needs a valid token
			sensors.GET("/statistics/", deps.Sensors.Statistics)

			protected := sensors.Group("", requireAuth)
			{
				protected.GET("/", deps.Sensors.List)
				protected.POST("/", deps.Sensors.Create)
				protected.GET("/zone_summary/", deps.Sensors.ZoneSummary)
				protected.GET("/nearby/", deps.Sensors.Nearby)
				protected.POST("/upload_csv/", deps.Sensors.UploadCSV)
				protected.DELETE("/clear_all/", middleware.RequireRole(models.RoleAdmin), deps.Sensors.ClearAll)
				protected.GET("/:id/", deps.Sensors.GetByID)
				protected.PUT("/:id/", deps.Sensors.Update)
				protected.DELETE("/:id/", deps.Sensors.Delete)
			}
		}

		alerts := api.Group("/alerts", requireAuth)
		{
			alerts.GET("/", deps.Alerts.List)
			alerts.POST("/", deps.Alerts.Create)
			alerts.GET("/dashboard_stats/", deps.Alerts.DashboardStats)
			alerts.GET("/:id/", deps.Alerts.GetByID)
			alerts.PUT("/:id/", deps.Alerts.Update)
			alerts.DELETE("/:id/", deps.Alerts.Delete)
		}

		// Public prediction endpoint, rate limited per client IP
		api.POST("/predict-risk/",
			middleware.RateLimit(deps.Config.PredictRateLimit, time.Minute),
			deps.Predict.Predict,
		)
	}

	return r
}
