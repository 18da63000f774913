package routes

import (
	"employee-records/internal/api/handlers"
	"employee-records/internal/api/middleware"
	"employee-records/internal/api/templates"
	"employee-records/internal/config"
	"employee-records/internal/repository"
	"employee-records/internal/service"
	"employee-records/internal/validation"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// sessionName is the cookie holding flash notices
const sessionName = "employee_session"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	})
	router.Use(sessions.Sessions(sessionName, store))

	router.SetHTMLTemplate(templates.MustLoad())

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, validation.New())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, cfg.MaxUploadBytes())
	pageHandler := handlers.NewPageHandler(employeeService, cfg.MaxUploadBytes())

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML pages
	router.GET("/", pageHandler.Home)
	router.GET("/employee", pageHandler.ListEmployees)
	router.POST("/employee", pageHandler.CreateEmployee)
	router.GET("/updateEmployee/:id", pageHandler.EditEmployee)
	router.POST("/updateEmployee/:id", pageHandler.UpdateEmployee)
	router.POST("/deleteEmployee/:id", pageHandler.DeleteEmployee)
	router.POST("/uploadCSV", pageHandler.UploadCSV)
	router.GET("/visualize", pageHandler.Visualize)
	router.GET("/filter", pageHandler.Filter)
	router.POST("/filter", pageHandler.Filter)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.POST("/import", employeeHandler.ImportEmployees)
			employees.GET("/export", employeeHandler.ExportEmployees)
			employees.GET("/chart", employeeHandler.SalaryChart)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}
	}

	return router
}
