package routes

import (
	"furnishing-portal-backend/internal/api/handlers"
	"furnishing-portal-backend/internal/api/middleware"
	"furnishing-portal-backend/internal/config"
	"furnishing-portal-backend/internal/docintel"
	"furnishing-portal-backend/internal/repository"
	"furnishing-portal-backend/internal/service"
	"furnishing-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, prompts *config.Prompts) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	furnitureRepo := repository.NewFurnitureRepository(db)

	// Initialize external clients
	docintelClient := docintel.NewClient(cfg, prompts)
	storageClient := storage.NewClient(cfg)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, validator)
	roomService := service.NewRoomService(roomRepo, projectRepo, validator)
	floorMappingService := service.NewFloorMappingService(projectRepo)
	analysisService := service.NewAnalysisService(docintelClient, roomRepo, projectRepo)
	summaryService := service.NewSummaryService(projectRepo)
	furnitureService := service.NewFurnitureService(furnitureRepo, validator)
	uploadService := service.NewUploadService(storageClient)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	roomHandler := handlers.NewRoomHandler(roomService, analysisService)
	floorMapHandler := handlers.NewFloorMapHandler(floorMappingService, analysisService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	furnitureHandler := handlers.NewFurnitureHandler(furnitureService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			// Rooms nested under a project
			projects.POST("/:id/rooms", roomHandler.CreateRoom)
			projects.GET("/:id/rooms", roomHandler.ListRooms)

			// Floor mapping
			projects.GET("/:id/floor-mapping", floorMapHandler.GetFloorMapping)
			projects.PUT("/:id/floor-mapping", floorMapHandler.SaveFloorMapping)
			projects.PATCH("/:id/floor-mapping", floorMapHandler.EditFloorMapping)
			projects.POST("/:id/floor-mapping/analyze", floorMapHandler.AnalyzeFloorMapping)

			// Analysis views
			projects.GET("/:id/summary", summaryHandler.GetSummary)
			projects.GET("/:id/demand", summaryHandler.GetDemand)
			projects.GET("/:id/demand/export", summaryHandler.ExportDemand)
		}

		// Room routes
		rooms := v1.Group("/rooms")
		{
			rooms.GET("/:id", roomHandler.GetRoom)
			rooms.PUT("/:id", roomHandler.UpdateRoom)
			rooms.DELETE("/:id", roomHandler.DeleteRoom)
			rooms.PUT("/:id/furniture", roomHandler.ReplaceFurniture)
			rooms.PATCH("/:id/furniture/:itemId", roomHandler.UpdateFurnitureCount)
			rooms.POST("/:id/analyze", roomHandler.AnalyzeRoom)
		}

		// Furniture catalog routes
		furniture := v1.Group("/furniture")
		{
			furniture.POST("", furnitureHandler.CreateFurniture)
			furniture.GET("", furnitureHandler.ListFurniture)
			furniture.GET("/:id", furnitureHandler.GetFurniture)
			furniture.PUT("/:id", furnitureHandler.UpdateFurniture)
			furniture.DELETE("/:id", furnitureHandler.DeleteFurniture)
		}

		// Upload route
		v1.POST("/uploads", uploadHandler.Upload)
	}

	return router
}
