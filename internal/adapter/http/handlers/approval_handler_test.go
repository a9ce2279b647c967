package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"product_catalog/internal/adapter/http/handlers/mocks"
	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newApprovalRouter(t *testing.T) (*gin.Engine, *mocks.MockIProductUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	ah := NewApprovalHandler(uc)

	r := gin.New()
	r.GET("/api/products/approval-queue", ah.FetchApprovalQueue)
	r.PUT("/api/products/approval-queue/:approvalId/approve", ah.ApproveProduct)
	r.PUT("/api/products/approval-queue/:approvalId/reject", ah.RejectProduct)
	return r, uc
}

func TestApprovalHandler_FetchApprovalQueue(t *testing.T) {
	r, uc := newApprovalRouter(t)
	now := time.Now().UTC()
	rows := []entities.PendingProduct{
		{
			Approval: entities.ApprovalRequest{ApprovalID: "a-1", ProductID: "p-1", RequestDate: now},
			Product:  entities.Product{ProductID: "p-1", Name: "Gadget", Price: 150, Status: entities.StatusPendingApproval},
		},
	}
	uc.EXPECT().FetchApprovalQueue(gomock.Any(), 1, 10).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products/approval-queue", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["approval_id"] != "a-1" {
		t.Fatalf("unexpected body: %v", body)
	}
	product, ok := body[0]["product"].(map[string]any)
	if !ok || product["name"] != "Gadget" {
		t.Fatalf("expected joined product, got %v", body[0]["product"])
	}
}

func TestApprovalHandler_Decisions(t *testing.T) {
	t.Run("approve success", func(t *testing.T) {
		r, uc := newApprovalRouter(t)
		uc.EXPECT().ApproveProduct(gomock.Any(), "a-1").Return(entities.Product{ProductID: "p-1", Status: entities.StatusActive}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/products/approval-queue/a-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		r, uc := newApprovalRouter(t)
		uc.EXPECT().RejectProduct(gomock.Any(), "a-1").Return(entities.Product{ProductID: "p-1", Status: entities.StatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/products/approval-queue/a-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown approval maps to 404", func(t *testing.T) {
		r, uc := newApprovalRouter(t)
		uc.EXPECT().ApproveProduct(gomock.Any(), "a-404").Return(entities.Product{}, fmt.Errorf("%w: a-404", usecase.ErrApprovalNotFound))

		req := httptest.NewRequest(http.MethodPut, "/api/products/approval-queue/a-404/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed approval id maps to 400", func(t *testing.T) {
		r, uc := newApprovalRouter(t)
		uc.EXPECT().RejectProduct(gomock.Any(), "oops").Return(entities.Product{}, fmt.Errorf("%w: oops", usecase.ErrInvalidApprovalID))

		req := httptest.NewRequest(http.MethodPut, "/api/products/approval-queue/oops/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
