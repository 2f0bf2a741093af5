package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gastor/internal/models"
	"gastor/internal/pagination"
	"gastor/internal/services"
	"gastor/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectUserID stands in for the auth middleware in handler tests.
func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

// performRequest serves a single request against the given router.
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
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

// assertErrorCode checks the status and the code inside the error envelope.
func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("expected status %d, got %d (body: %s)", wantStatus, w.Code, w.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string   `json:"code"`
			Message string   `json:"message"`
			Fields  []string `json:"fields"`
		} `json:"error"`
	}
	decodeBody(t, w, &envelope)
	if envelope.Error.Code != wantCode {
		t.Errorf("expected error code %q, got %q (body: %s)", wantCode, envelope.Error.Code, w.Body.String())
	}
}

// mockCatalogService is a function-backed CatalogServicer for handler tests.
type mockCatalogService[T any] struct {
	listFn   func() ([]T, error)
	getFn    func(id uint) (*T, error)
	createFn func(row *T) error
}

func (m *mockCatalogService[T]) List() ([]T, error)       { return m.listFn() }
func (m *mockCatalogService[T]) GetByID(id uint) (*T, error) { return m.getFn(id) }
func (m *mockCatalogService[T]) Create(row *T) error      { return m.createFn(row) }

// mockSubcategoryService is a function-backed ExpenseSubcategoryServicer.
type mockSubcategoryService struct {
	listFn   func(categoryID *uint) ([]models.ExpenseSubcategory, error)
	getFn    func(id uint) (*models.ExpenseSubcategory, error)
	createFn func(name string, categoryID uint) (*models.ExpenseSubcategory, error)
}

func (m *mockSubcategoryService) List(categoryID *uint) ([]models.ExpenseSubcategory, error) {
	return m.listFn(categoryID)
}

func (m *mockSubcategoryService) GetByID(id uint) (*models.ExpenseSubcategory, error) {
	return m.getFn(id)
}

func (m *mockSubcategoryService) Create(name string, categoryID uint) (*models.ExpenseSubcategory, error) {
	return m.createFn(name, categoryID)
}

// mockPaymentPlanService is a function-backed PaymentPlanServicer.
type mockPaymentPlanService struct {
	createFn func(input services.PaymentPlanInput) (*models.PaymentPlan, error)
	getFn    func(id uint) (*models.PaymentPlan, error)
	listFn   func(fixedExpenseID uint) ([]models.PaymentPlan, error)
	deleteFn func(id uint) error
}

func (m *mockPaymentPlanService) Create(input services.PaymentPlanInput) (*models.PaymentPlan, error) {
	return m.createFn(input)
}

func (m *mockPaymentPlanService) GetByID(id uint) (*models.PaymentPlan, error) {
	return m.getFn(id)
}

func (m *mockPaymentPlanService) ListByFixedExpense(fixedExpenseID uint) ([]models.PaymentPlan, error) {
	return m.listFn(fixedExpenseID)
}

func (m *mockPaymentPlanService) Delete(id uint) error { return m.deleteFn(id) }

// mockUnitMeasureService is a function-backed UnitMeasureServicer.
type mockUnitMeasureService struct {
	createFn func(name, abbreviation, description string) (*models.UnitMeasure, error)
	listFn   func() ([]models.UnitMeasure, error)
	getFn    func(id uint) (*models.UnitMeasure, error)
	updateFn func(id uint, name, abbreviation, description *string) (*models.UnitMeasure, error)
	deleteFn func(id uint) error
}

func (m *mockUnitMeasureService) Create(name, abbreviation, description string) (*models.UnitMeasure, error) {
	return m.createFn(name, abbreviation, description)
}

func (m *mockUnitMeasureService) List() ([]models.UnitMeasure, error) { return m.listFn() }

func (m *mockUnitMeasureService) GetByID(id uint) (*models.UnitMeasure, error) {
	return m.getFn(id)
}

func (m *mockUnitMeasureService) Update(id uint, name, abbreviation, description *string) (*models.UnitMeasure, error) {
	return m.updateFn(id, name, abbreviation, description)
}

func (m *mockUnitMeasureService) Delete(id uint) error { return m.deleteFn(id) }

// mockProspectService is a function-backed ProspectServicer.
type mockProspectService struct {
	createFn func(name, mail string) (*models.Prospect, error)
	listFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.Prospect], error)
	getFn    func(id uint) (*models.Prospect, error)
}

func (m *mockProspectService) Create(name, mail string) (*models.Prospect, error) {
	return m.createFn(name, mail)
}

func (m *mockProspectService) List(page pagination.PageRequest) (*pagination.PageResponse[models.Prospect], error) {
	return m.listFn(page)
}

func (m *mockProspectService) GetByID(id uint) (*models.Prospect, error) { return m.getFn(id) }

// auditEntry records one audit call observed by mockAuditService.
type auditEntry struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   uint
}

// mockAuditService records calls for assertions.
type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	})
}
