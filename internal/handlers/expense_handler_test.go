package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "gastor/internal/errors"
	"gastor/internal/models"
)

func newSubcategoryRouter(svc *mockSubcategoryService, audit *mockAuditService) *gin.Engine {
	h := NewExpenseSubcategoryHandler(svc, audit)

	router := gin.New()
	group := router.Group("/api/v1", injectUserID(1))
	group.GET("/expense-subcategories", h.List)
	group.GET("/expense-subcategories/:id", h.GetByID)
	group.POST("/expense-subcategories", h.Create)
	return router
}

func TestExpenseSubcategoryHandlerList(t *testing.T) {
	t.Run("no_filter_passes_nil", func(t *testing.T) {
		seen := new(uint)
		svc := &mockSubcategoryService{
			listFn: func(categoryID *uint) ([]models.ExpenseSubcategory, error) {
				seen = categoryID
				return []models.ExpenseSubcategory{{Name: "Supermercado"}}, nil
			},
		}
		router := newSubcategoryRouter(svc, &mockAuditService{})

		w := performRequest(router, http.MethodGet, "/api/v1/expense-subcategories", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen != nil {
			t.Errorf("expected nil category filter, got %v", *seen)
		}
	})

	t.Run("category_filter_is_forwarded", func(t *testing.T) {
		var seen *uint
		svc := &mockSubcategoryService{
			listFn: func(categoryID *uint) ([]models.ExpenseSubcategory, error) {
				seen = categoryID
				return []models.ExpenseSubcategory{}, nil
			},
		}
		router := newSubcategoryRouter(svc, &mockAuditService{})

		w := performRequest(router, http.MethodGet, "/api/v1/expense-subcategories?categoryId=4", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen == nil || *seen != 4 {
			t.Errorf("expected category filter 4, got %v", seen)
		}
	})

	t.Run("unknown_category_is_still_a_200_with_empty_list", func(t *testing.T) {
		svc := &mockSubcategoryService{
			listFn: func(categoryID *uint) ([]models.ExpenseSubcategory, error) {
				return []models.ExpenseSubcategory{}, nil
			},
		}
		router := newSubcategoryRouter(svc, &mockAuditService{})

		w := performRequest(router, http.MethodGet, "/api/v1/expense-subcategories?categoryId=99999", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var rows []models.ExpenseSubcategory
		decodeBody(t, w, &rows)
		if len(rows) != 0 {
			t.Errorf("expected empty list, got %+v", rows)
		}
	})

	t.Run("non_numeric_category_is_a_400", func(t *testing.T) {
		router := newSubcategoryRouter(&mockSubcategoryService{}, &mockAuditService{})

		w := performRequest(router, http.MethodGet, "/api/v1/expense-subcategories?categoryId=abc", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestExpenseSubcategoryHandlerCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := &mockSubcategoryService{
			createFn: func(name string, categoryID uint) (*models.ExpenseSubcategory, error) {
				subcategory := &models.ExpenseSubcategory{Name: name, CategoryID: categoryID}
				subcategory.ID = 3
				return subcategory, nil
			},
		}
		audit := &mockAuditService{}
		router := newSubcategoryRouter(svc, audit)

		w := performRequest(router, http.MethodPost, "/api/v1/expense-subcategories",
			gin.H{"name": "Supermercado", "category_id": 2})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
		}

		var row models.ExpenseSubcategory
		decodeBody(t, w, &row)
		if row.ID != 3 || row.CategoryID != 2 {
			t.Errorf("unexpected row %+v", row)
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != "expense_subcategory.create" {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("missing_parent_category_is_a_404", func(t *testing.T) {
		svc := &mockSubcategoryService{
			createFn: func(name string, categoryID uint) (*models.ExpenseSubcategory, error) {
				return nil, apperrors.ErrExpenseCategoryNotFound
			},
		}
		router := newSubcategoryRouter(svc, &mockAuditService{})

		w := performRequest(router, http.MethodPost, "/api/v1/expense-subcategories",
			gin.H{"name": "Huérfana", "category_id": 99999})
		assertErrorCode(t, w, http.StatusNotFound, "EXPENSE_CATEGORY_NOT_FOUND")
	})

	t.Run("missing_category_id_is_a_400", func(t *testing.T) {
		router := newSubcategoryRouter(&mockSubcategoryService{}, &mockAuditService{})

		w := performRequest(router, http.MethodPost, "/api/v1/expense-subcategories", gin.H{"name": "Sin padre"})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestExpenseSubcategoryHandlerGetByID(t *testing.T) {
	t.Run("unknown_id_is_a_404", func(t *testing.T) {
		svc := &mockSubcategoryService{
			getFn: func(id uint) (*models.ExpenseSubcategory, error) {
				return nil, apperrors.ErrExpenseSubcategoryNotFound
			},
		}
		router := newSubcategoryRouter(svc, &mockAuditService{})

		w := performRequest(router, http.MethodGet, "/api/v1/expense-subcategories/999", nil)
		assertErrorCode(t, w, http.StatusNotFound, "EXPENSE_SUBCATEGORY_NOT_FOUND")
	})
}
