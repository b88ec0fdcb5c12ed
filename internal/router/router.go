package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boughtleaf/internal/config"
	"boughtleaf/internal/handler"
	"boughtleaf/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	supplierH *handler.SupplierHandler,
	deductionH *handler.DeductionHandler,
	collectionH *handler.CollectionHandler,
	leafCountH *handler.LeafCountHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "leaf-type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Health checks
	api.GET("/health", healthH.Liveness)
	api.GET("/health/ready", healthH.Readiness)

	// Supplier lookup and search
	suppliers := api.Group("/suppliers")
	suppliers.GET("/:regNo", supplierH.GetByRegNo)
	suppliers.GET("/search/all", supplierH.Search)

	// Deduction summary, write path, and day listing
	deductions := api.Group("/deductions")
	deductions.GET("/summary/:regNo", middleware.LeafType(), deductionH.GetSummary)
	deductions.POST("", deductionH.Save)
	deductions.GET("/today/:regNo", deductionH.GetTodayTransactions)

	// Grouped collection views
	collections := api.Group("/collections")
	collections.GET("", collectionH.GetAll)
	collections.GET("/today", collectionH.GetToday)
	collections.GET("/date/:date", collectionH.GetByDate)
	collections.GET("/filter", collectionH.GetFiltered)
	collections.GET("/details/:regNo", collectionH.GetDetails)
	collections.GET("/export", collectionH.Export)

	// Leaf quality register and route weights
	leafCounts := api.Group("/leafcounts")
	leafCounts.GET("/routes", leafCountH.GetRoutes)
	leafCounts.GET("/routes/:route/total-weight", leafCountH.GetRouteTotalWeight)
	leafCounts.POST("", leafCountH.Save)
	leafCounts.GET("/history", leafCountH.GetHistory)

	return r
}
