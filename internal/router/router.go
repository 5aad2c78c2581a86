package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/config"
	"github.com/stemsi/workforce-api/internal/handler"
	"github.com/stemsi/workforce-api/internal/metrics"
	"github.com/stemsi/workforce-api/internal/middleware"
	"github.com/stemsi/workforce-api/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Department *handler.DepartmentHandler
	Job        *handler.JobHandler
	Employee   *handler.EmployeeHandler
	Export     *handler.ExportHandler
	System     *handler.SystemHandler
}

// SetupRouter configures all Gin routes with their middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and error bodies can see it.
	router.Use(
		response.RequestIDMiddleware(),
		middleware.RequestLogger(log),
		gin.Recovery(),
		metrics.Middleware(),
		middleware.Brotli(),
	)

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
	})

	// ─── System ────────────────────────────────────────────────────────
	router.GET("/health", handlers.System.Health)
	router.POST("/hi", handlers.System.Hi)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── Resources ─────────────────────────────────────────────────────
	api := router.Group("")
	api.Use(middleware.NoStore())
	{
		api.POST("/departments", handlers.Department.Create)
		api.GET("/departments/:id", handlers.Department.Get)
		api.PUT("/departments/:id", handlers.Department.Update)
		api.DELETE("/departments/:id", handlers.Department.Delete)

		api.POST("/jobs", handlers.Job.Create)
		api.GET("/jobs/:id", handlers.Job.Get)
		api.PUT("/jobs/:id", handlers.Job.Update)
		api.DELETE("/jobs/:id", handlers.Job.Delete)

		api.POST("/employees", handlers.Employee.Create)
		api.GET("/employees/:id", handlers.Employee.Get)
		api.PUT("/employees/:id", handlers.Employee.Update)
		api.DELETE("/employees/:id", handlers.Employee.Delete)
	}

	// ─── Exports (Rate Limited) ────────────────────────────────────────
	// Each export rewrites a whole file, so callers get a per-IP budget.
	exportLimiter := middleware.NewRateLimiter(cfg.ExportRateLimit, time.Minute)
	exports := router.Group("")
	exports.Use(middleware.NoStore())
	{
		exports.GET("/get_csv_db", exportLimiter.Middleware(), handlers.Export.CSV)
		exports.GET("/avro", exportLimiter.Middleware(), handlers.Export.Avro)
		exports.GET("/exports/status", handlers.Export.Status)
	}

	return router
}
