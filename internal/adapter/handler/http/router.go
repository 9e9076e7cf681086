package http

import (
	"net/http"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	accountHandler *AccountHandler,
	vehicleHandler *VehicleHandler,
	recordHandler *RecordHandler,
	summaryHandler *SummaryHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)

	// Vehicle routes
	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.GetVehicles)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}

	// Record routes
	records := router.Group("/records")
	{
		records.POST("", recordHandler.CreateRecord)
		records.GET("", recordHandler.GetRecords)
		records.DELETE("/:id", recordHandler.DeleteRecord)
	}

	// Summary
	router.GET("/summary/:user_id", summaryHandler.GetSummary)

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
