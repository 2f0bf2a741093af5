package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"gastor/internal/models"
	"gastor/internal/testutil"
)

func TestPaymentPlanEndToEnd(t *testing.T) {
	t.Run("create_list_delete_cycle", func(t *testing.T) {
		router, db := setupApp(t)

		pt := testutil.CreateTestPaymentType(t, db)
		be := testutil.CreateTestBankEntity(t, db)

		w := doRequest(t, router, http.MethodPost, "/api/v1/payment-plans", gin.H{
			"fixed_expense_id": 7,
			"payment_type_id":  pt.ID,
			"bank_entity_id":   be.ID,
			"installments":     12,
			"start_date":       "2025-06-01",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
		}

		var created models.PaymentPlan
		decodeBody(t, w, &created)
		if created.ID == 0 || created.FixedExpenseID == nil || *created.FixedExpenseID != 7 {
			t.Fatalf("unexpected plan %+v", created)
		}

		w = doRequest(t, router, http.MethodGet, "/api/v1/payment-plans/fixed-expense/7", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var plans []models.PaymentPlan
		decodeBody(t, w, &plans)
		if len(plans) != 1 || plans[0].ID != created.ID {
			t.Errorf("unexpected plans %+v", plans)
		}

		w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/payment-plans/%d", created.ID), nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}

		w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/payment-plans/%d", created.ID), nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}

		// Re-deleting is still a success.
		w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/payment-plans/%d", created.ID), nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 on repeat delete, got %d", w.Code)
		}
	})

	t.Run("owner_rules_are_enforced_over_http", func(t *testing.T) {
		router, db := setupApp(t)

		pt := testutil.CreateTestPaymentType(t, db)
		be := testutil.CreateTestBankEntity(t, db)

		base := gin.H{
			"payment_type_id": pt.ID,
			"bank_entity_id":  be.ID,
			"installments":    6,
			"start_date":      "2025-06-01",
		}

		w := doRequest(t, router, http.MethodPost, "/api/v1/payment-plans", base)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 without owner, got %d (body: %s)", w.Code, w.Body.String())
		}
		var envelope struct {
			Error struct {
				Code   string   `json:"code"`
				Fields []string `json:"fields"`
			} `json:"error"`
		}
		decodeBody(t, w, &envelope)
		if envelope.Error.Code != "PLAN_OWNER_REQUIRED" {
			t.Errorf("expected PLAN_OWNER_REQUIRED, got %q", envelope.Error.Code)
		}
		if len(envelope.Error.Fields) != 2 {
			t.Errorf("expected both owner fields echoed, got %v", envelope.Error.Fields)
		}

		both := gin.H{}
		for k, v := range base {
			both[k] = v
		}
		both["expense_id"] = 1
		both["fixed_expense_id"] = 2

		w = doRequest(t, router, http.MethodPost, "/api/v1/payment-plans", both)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 with both owners, got %d", w.Code)
		}
		decodeBody(t, w, &envelope)
		if envelope.Error.Code != "PLAN_OWNER_CONFLICT" {
			t.Errorf("expected PLAN_OWNER_CONFLICT, got %q", envelope.Error.Code)
		}

		var count int64
		db.Model(&models.PaymentPlan{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no plans persisted, found %d", count)
		}
	})
}
