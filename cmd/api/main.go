package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gastor/internal/config"
	"gastor/internal/database"
	apperrors "gastor/internal/errors"
	"gastor/internal/handlers"
	"gastor/internal/logger"
	"gastor/internal/middleware"
	"gastor/internal/models"
	"gastor/internal/services"
	"gastor/internal/validator"

	_ "gastor/internal/docs" // swagger docs
)

// @title           Gastor Back-Office API
// @version         1.0
// @description     Catalog and expense-management back office: bank entities, payment catalogs, expense catalogs, payment plans, unit measures and prospect intake.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token issued by the identity provider.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	bankEntityService := services.NewCatalogService[models.BankEntity](db, apperrors.ErrBankEntityNotFound)
	paymentMethodService := services.NewCatalogService[models.PaymentMethod](db, apperrors.ErrPaymentMethodNotFound)
	paymentTypeService := services.NewCatalogService[models.PaymentType](db, apperrors.ErrPaymentTypeNotFound)
	receiptTypeService := services.NewCatalogService[models.ReceiptType](db, apperrors.ErrReceiptTypeNotFound)
	expenseCategoryService := services.NewCatalogService[models.ExpenseCategory](db, apperrors.ErrExpenseCategoryNotFound)
	expenseTypeService := services.NewCatalogService[models.ExpenseType](db, apperrors.ErrExpenseTypeNotFound,
		services.ActiveOnly(), services.OrderBy("name ASC"))
	recurrenceTypeService := services.NewCatalogService[models.RecurrenceType](db, apperrors.ErrRecurrenceTypeNotFound,
		services.ActiveOnly())
	subcategoryService := services.NewExpenseSubcategoryService(db)
	planService := services.NewPaymentPlanService(db)
	unitService := services.NewUnitMeasureService(db)
	prospectService := services.NewProspectService(db)

	// Handlers
	bankEntityHandler := handlers.NewAppendableCatalogHandler(bankEntityService, auditService, "bank_entity",
		func(name string) *models.BankEntity { return &models.BankEntity{Name: name} })
	paymentMethodHandler := handlers.NewAppendableCatalogHandler(paymentMethodService, auditService, "payment_method",
		func(name string) *models.PaymentMethod { return &models.PaymentMethod{Name: name} })
	paymentTypeHandler := handlers.NewAppendableCatalogHandler(paymentTypeService, auditService, "payment_type",
		func(name string) *models.PaymentType { return &models.PaymentType{Name: name} })
	receiptTypeHandler := handlers.NewAppendableCatalogHandler(receiptTypeService, auditService, "receipt_type",
		func(name string) *models.ReceiptType { return &models.ReceiptType{Name: name} })
	expenseCategoryHandler := handlers.NewAppendableCatalogHandler(expenseCategoryService, auditService, "expense_category",
		func(name string) *models.ExpenseCategory { return &models.ExpenseCategory{Name: name} })
	expenseTypeHandler := handlers.NewCatalogHandler(expenseTypeService, "expense_type")
	recurrenceTypeHandler := handlers.NewCatalogHandler(recurrenceTypeService, "recurrence_type")
	subcategoryHandler := handlers.NewExpenseSubcategoryHandler(subcategoryService, auditService)
	planHandler := handlers.NewPaymentPlanHandler(planService, auditService)
	unitHandler := handlers.NewUnitMeasureHandler(unitService, auditService)
	prospectHandler := handlers.NewProspectHandler(prospectService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public lead-intake routes
	prospects := v1.Group("/prospects")
	prospects.POST("", prospectHandler.Create)
	prospects.GET("", prospectHandler.List)
	prospects.GET("/:id", prospectHandler.GetByID)

	// Protected back-office routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	registerCatalog(protected, "bank-entities", bankEntityHandler, true)
	registerCatalog(protected, "payment-methods", paymentMethodHandler, true)
	registerCatalog(protected, "payment-types", paymentTypeHandler, true)
	registerCatalog(protected, "receipt-types", receiptTypeHandler, true)
	registerCatalog(protected, "expense-categories", expenseCategoryHandler, true)
	registerCatalog(protected, "expense-types", expenseTypeHandler, false)
	registerCatalog(protected, "recurrence-types", recurrenceTypeHandler, false)

	subcategories := protected.Group("/expense-subcategories")
	subcategories.GET("", subcategoryHandler.List)
	subcategories.GET("/:id", subcategoryHandler.GetByID)
	subcategories.POST("", subcategoryHandler.Create)

	plans := protected.Group("/payment-plans")
	plans.POST("", planHandler.Create)
	plans.GET("/:id", planHandler.GetByID)
	plans.GET("/fixed-expense/:id", planHandler.ListByFixedExpense)
	plans.DELETE("/:id", planHandler.Delete)

	units := protected.Group("/unit-measures")
	units.POST("", unitHandler.Create)
	units.GET("", unitHandler.List)
	units.GET("/:id", unitHandler.GetByID)
	units.PUT("/:id", unitHandler.Update)
	units.DELETE("/:id", unitHandler.Delete)

	log.Infof("Starting Gastor back-office server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// registerCatalog wires the uniform catalog routes; appendable catalogs also
// get the POST.
func registerCatalog[T any](rg *gin.RouterGroup, path string, h *handlers.CatalogHandler[T], appendable bool) {
	g := rg.Group("/" + path)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	if appendable {
		g.POST("", h.Create)
	}
}
