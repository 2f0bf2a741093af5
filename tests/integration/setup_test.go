// Package integration exercises the full HTTP surface against an in-memory
// store: real router, real middleware chain, real services.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "gastor/internal/errors"
	"gastor/internal/handlers"
	"gastor/internal/middleware"
	"gastor/internal/models"
	"gastor/internal/services"
	"gastor/internal/testutil"
	"gastor/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// setupApp builds the application router the way the server entrypoint does,
// backed by a fresh in-memory database.
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	prospects := v1.Group("/prospects")
	prospects.POST("", prospectHandler.Create)
	prospects.GET("", prospectHandler.List)
	prospects.GET("/:id", prospectHandler.GetByID)

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

	return router, db
}

func registerCatalog[T any](rg *gin.RouterGroup, path string, h *handlers.CatalogHandler[T], appendable bool) {
	g := rg.Group("/" + path)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	if appendable {
		g.POST("", h.Create)
	}
}

// bearerToken issues a token the auth middleware accepts.
func bearerToken(t *testing.T) string {
	t.Helper()

	token, err := middleware.SignToken(1, "backoffice@example.com", []string{"admin"}, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return "Bearer " + token
}

// doRequest serves an authenticated request against the router.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestWithAuth(t, router, method, path, body, bearerToken(t))
}

// doPublicRequest serves a request with no Authorization header.
func doPublicRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestWithAuth(t, router, method, path, body, "")
}

func doRequestWithAuth(t *testing.T, router *gin.Engine, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
}
