package routes

import (
	"fmt"

	"control-room-backend/internal/api/handlers"
	"control-room-backend/internal/api/middleware"
	"control-room-backend/internal/auth"
	"control-room-backend/internal/clock"
	"control-room-backend/internal/config"
	"control-room-backend/internal/database/models"
	"control-room-backend/internal/repository"
	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	return SetupRoutesWithClock(db, cfg, clock.System{})
}

// SetupRoutesWithClock configures all routes using clk as the time source for every service
func SetupRoutesWithClock(db *gorm.DB, cfg *config.Config, clk clock.Clock) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	store := repository.NewStore(db)

	// Initialize shared collaborators
	calendar := service.NewCalendar(cfg)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize services
	shiftService := service.NewShiftService(repos, store, clk, calendar, validator)
	handoverService := service.NewHandoverService(repos, store, hasher, clk, calendar, validator)
	shiftLogService := service.NewShiftLogService(repos, store, clk, validator)
	personnelService := service.NewPersonnelService(repos.Positions, repos.Employees, repos.Groups, validator)
	catalogService := service.NewCatalogService(repos.Equipment, repos.Tanks, repos.Tasks, repos.Parameters, validator)
	userService := service.NewUserService(repos.Users, hasher, validator)
	ticketService := service.NewMaintenanceTicketService(repos.Tickets, repos.Equipment, clk, validator)
	licenseService := service.NewLicenseService(repos.Licenses, clk, validator)
	reportService := service.NewReportService(repos)

	// Initialize auth configuration and services
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), repos.Users, hasher)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService, handoverService)
	shiftLogHandler := handlers.NewShiftLogHandler(shiftLogService)
	personnelHandler := handlers.NewPersonnelHandler(personnelService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	ticketHandler := handlers.NewMaintenanceTicketHandler(ticketService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Token issuance is the only public API endpoint
	v1.POST("/token", authHandler.Login)

	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())

	opsManager := auth.RequireRole(models.UserRoleOpsManager)
	superintendent := auth.RequireRole(models.UserRoleShiftSuperintendent)

	{
		api.GET("/token/validate", authHandler.ValidateToken)

		// Operator accounts
		users := api.Group("/users")
		{
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("", opsManager, userHandler.ListUsers)
			users.POST("", opsManager, userHandler.CreateUser)
		}

		// Shift lifecycle and logs
		shifts := api.Group("/shifts")
		{
			shifts.POST("", shiftHandler.OpenShift)
			shifts.GET("/active/me", shiftHandler.GetActiveShift)
			shifts.POST("/handover", shiftHandler.Handover)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id/close", shiftHandler.CloseShift)
			shifts.POST("/:id/assign-group", shiftHandler.AssignGroup)
			shifts.GET("/:id/attendance", shiftHandler.ListAttendance)

			for _, kind := range service.LogKinds {
				path := "/:id/" + string(kind)
				shifts.POST(path, shiftLogHandler.AppendLog(kind))
				shifts.GET(path, shiftLogHandler.ListLogs(kind))
			}
		}

		api.PATCH("/attendance/:id", shiftHandler.UpdateAttendance)

		// Personnel
		personnel := api.Group("/personnel")
		{
			personnel.GET("/positions", personnelHandler.ListPositions)
			personnel.POST("/positions", opsManager, personnelHandler.CreatePosition)

			personnel.GET("/employees", personnelHandler.ListEmployees)
			personnel.POST("/employees", opsManager, personnelHandler.CreateEmployee)
			personnel.PUT("/employees/:id", opsManager, personnelHandler.UpdateEmployee)

			personnel.GET("/groups", personnelHandler.ListGroups)
			personnel.POST("/groups", opsManager, personnelHandler.CreateGroup)
			personnel.GET("/groups/:id", personnelHandler.GetGroup)
			personnel.DELETE("/groups/:id", opsManager, personnelHandler.DeleteGroup)
			personnel.POST("/groups/:id/members/:employee_id", opsManager, personnelHandler.AddMember)
			personnel.DELETE("/groups/:id/members/:employee_id", opsManager, personnelHandler.RemoveMember)
		}

		// Catalog
		equipment := api.Group("/equipment")
		{
			equipment.GET("", catalogHandler.ListEquipment)
			equipment.POST("", opsManager, catalogHandler.CreateEquipment)
			equipment.GET("/:id", catalogHandler.GetEquipment)
			equipment.PUT("/:id", opsManager, catalogHandler.UpdateEquipment)
			equipment.DELETE("/:id", opsManager, catalogHandler.DeleteEquipment)
		}

		tanks := api.Group("/tanks")
		{
			tanks.GET("", catalogHandler.ListTanks)
			tanks.POST("", opsManager, catalogHandler.CreateTank)
			tanks.GET("/:id", catalogHandler.GetTank)
			tanks.PUT("/:id", opsManager, catalogHandler.UpdateTank)
			tanks.DELETE("/:id", opsManager, catalogHandler.DeleteTank)
		}

		tasks := api.Group("/scheduled-tasks")
		{
			tasks.GET("", catalogHandler.ListScheduledTasks)
			tasks.POST("", opsManager, catalogHandler.CreateScheduledTask)
			tasks.PUT("/:id", opsManager, catalogHandler.UpdateScheduledTask)
		}

		parameters := api.Group("/operational-parameters")
		{
			parameters.GET("", catalogHandler.ListOperationalParameters)
			parameters.POST("", opsManager, catalogHandler.CreateOperationalParameter)
			parameters.PUT("/:id", opsManager, catalogHandler.UpdateOperationalParameter)
		}

		// Maintenance tickets
		tickets := api.Group("/maintenance-tickets")
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.POST("", superintendent, ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PUT("/:id", superintendent, ticketHandler.UpdateTicket)
		}

		// Licenses
		licenses := api.Group("/licenses")
		{
			licenses.GET("", licenseHandler.ListLicenses)
			licenses.POST("", superintendent, licenseHandler.CreateLicense)
			licenses.GET("/:id", licenseHandler.GetLicense)
			licenses.PUT("/:id/close", superintendent, licenseHandler.CloseLicense)
		}

		// Closed shift archive
		reports := api.Group("/reports")
		{
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
