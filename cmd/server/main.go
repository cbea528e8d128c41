package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Habiboys/SIMPA/internal/config"
	"github.com/Habiboys/SIMPA/internal/database"
	"github.com/Habiboys/SIMPA/internal/handler"
	"github.com/Habiboys/SIMPA/internal/middleware"
	"github.com/Habiboys/SIMPA/internal/report"
	"github.com/Habiboys/SIMPA/internal/repository"
	"github.com/Habiboys/SIMPA/internal/service"
	"github.com/Habiboys/SIMPA/internal/storage"
	"github.com/Habiboys/SIMPA/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// 4. Initialize photo storage
	store, err := storage.NewAssetStore(cfg.Storage.UploadDir)
	if err != nil {
		logger.Fatal("failed to initialize photo storage", zap.Error(err))
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	variableRepo := repository.NewVariableRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	maintenanceRepo := repository.NewMaintenanceRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, logger)
	projectService := service.NewProjectService(projectRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	variableService := service.NewVariableService(variableRepo)
	unitService := service.NewUnitService(unitRepo, catalogRepo, projectRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, store, logger)
	reportService := service.NewReportService(maintenanceRepo, report.NewBuilder(store, logger), logger)

	// 7. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	variableHandler := handler.NewVariableHandler(variableService)
	unitHandler := handler.NewUnitHandler(unitService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService, reportService, logger)

	// 9. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "simpa-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Project hierarchy routes (authenticated, writes admin-only)
	proyek := r.Group("/proyek")
	proyek.Use(middleware.AuthMiddleware())
	{
		proyek.GET("", projectHandler.GetProjects)
		proyek.GET("/:id", projectHandler.GetProject)
		proyek.POST("", middleware.RequireAdmin(), projectHandler.CreateProject)
		proyek.PUT("/:id", middleware.RequireAdmin(), projectHandler.UpdateProject)
		proyek.DELETE("/:id", middleware.RequireAdmin(), projectHandler.DeleteProject)

		proyek.GET("/:id/gedung", projectHandler.GetBuildings)
		proyek.POST("/:id/gedung", middleware.RequireAdmin(), projectHandler.CreateBuilding)
		proyek.PUT("/:id/gedung/:buildingId", middleware.RequireAdmin(), projectHandler.UpdateBuilding)
		proyek.DELETE("/:id/gedung/:buildingId", middleware.RequireAdmin(), projectHandler.DeleteBuilding)

		proyek.GET("/:id/gedung/:buildingId/ruangan", projectHandler.GetRooms)
		proyek.POST("/:id/gedung/:buildingId/ruangan", middleware.RequireAdmin(), projectHandler.CreateRoom)
		proyek.PUT("/:id/gedung/:buildingId/ruangan/:roomId", middleware.RequireAdmin(), projectHandler.UpdateRoom)
		proyek.DELETE("/:id/gedung/:buildingId/ruangan/:roomId", middleware.RequireAdmin(), projectHandler.DeleteRoom)
	}

	// AC catalog routes (authenticated, writes admin-only)
	merek := r.Group("/merek")
	merek.Use(middleware.AuthMiddleware())
	{
		merek.GET("", catalogHandler.GetBrands)
		merek.POST("", middleware.RequireAdmin(), catalogHandler.CreateBrand)
		merek.PUT("/:id", middleware.RequireAdmin(), catalogHandler.UpdateBrand)
		merek.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteBrand)
	}

	jenisModel := r.Group("/jenis-model")
	jenisModel.Use(middleware.AuthMiddleware())
	{
		jenisModel.GET("", catalogHandler.GetModels)
		jenisModel.POST("", middleware.RequireAdmin(), catalogHandler.CreateModel)
		jenisModel.PUT("/:id", middleware.RequireAdmin(), catalogHandler.UpdateModel)
		jenisModel.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteModel)
	}

	detailModel := r.Group("/detail-model")
	detailModel.Use(middleware.AuthMiddleware())
	{
		detailModel.GET("", catalogHandler.GetVariants)
		detailModel.POST("", middleware.RequireAdmin(), catalogHandler.CreateVariant)
		detailModel.PUT("/:id", middleware.RequireAdmin(), catalogHandler.UpdateVariant)
		detailModel.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteVariant)
	}

	// Checklist variable routes (authenticated, writes admin-only)
	variablePemeriksaan := r.Group("/variable-pemeriksaan")
	variablePemeriksaan.Use(middleware.AuthMiddleware())
	{
		variablePemeriksaan.GET("", variableHandler.GetInspectionVariables)
		variablePemeriksaan.POST("", middleware.RequireAdmin(), variableHandler.CreateInspectionVariable)
		variablePemeriksaan.PUT("/:id", middleware.RequireAdmin(), variableHandler.UpdateInspectionVariable)
		variablePemeriksaan.DELETE("/:id", middleware.RequireAdmin(), variableHandler.DeleteInspectionVariable)
	}

	variablePembersihan := r.Group("/variable-pembersihan")
	variablePembersihan.Use(middleware.AuthMiddleware())
	{
		variablePembersihan.GET("", variableHandler.GetCleaningVariables)
		variablePembersihan.POST("", middleware.RequireAdmin(), variableHandler.CreateCleaningVariable)
		variablePembersihan.PUT("/:id", middleware.RequireAdmin(), variableHandler.UpdateCleaningVariable)
		variablePembersihan.DELETE("/:id", middleware.RequireAdmin(), variableHandler.DeleteCleaningVariable)
	}

	// Unit routes (authenticated, writes admin-only)
	unit := r.Group("/unit")
	unit.Use(middleware.AuthMiddleware())
	{
		unit.GET("/:id", unitHandler.GetUnit)
		unit.GET("/proyek/:projectId", unitHandler.GetUnitsByProject)
		unit.GET("/ruangan/:roomId", unitHandler.GetUnitsByRoom)
		unit.POST("", middleware.RequireAdmin(), unitHandler.CreateUnit)
		unit.PUT("/:id", middleware.RequireAdmin(), unitHandler.UpdateUnit)
		unit.DELETE("/:id", middleware.RequireAdmin(), unitHandler.DeleteUnit)
	}

	// Maintenance routes: field operators submit, admins review and export
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.AuthMiddleware())
	{
		maintenance.POST("", middleware.RequireRole("lapangan"), maintenanceHandler.Create)
		maintenance.GET("", middleware.RequireRole("admin", "lapangan"), maintenanceHandler.GetAll)
		maintenance.GET("/:id", middleware.RequireAdmin(), maintenanceHandler.GetByID)
		maintenance.GET("/project/:projectId", middleware.RequireAdmin(), maintenanceHandler.GetByProject)
		maintenance.GET("/project/:projectId/total-maintenance", middleware.RequireAdmin(), maintenanceHandler.GetTotalByProject)
		maintenance.GET("/export/project/:projectId", middleware.RequireAdmin(), maintenanceHandler.Export)
		maintenance.GET("/foto/:filename", middleware.RequireAdmin(), maintenanceHandler.GetPhoto)
	}

	// 10. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("server shutting down")
}
