package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"product_catalog/internal/domain/entities"
)

// In-memory store pair used to run whole workflow sequences and check the
// status/queue consistency contract after every step.

type memStores struct {
	products  map[string]entities.Product
	approvals map[string]entities.ApprovalRequest
}

func newMemStores() *memStores {
	return &memStores{
		products:  map[string]entities.Product{},
		approvals: map[string]entities.ApprovalRequest{},
	}
}

type memProductRepo struct{ s *memStores }

func (r memProductRepo) GetByID(_ context.Context, productID string) (entities.Product, error) {
	return r.s.products[productID], nil
}

func (r memProductRepo) Save(_ context.Context, p entities.Product) (entities.Product, error) {
	r.s.products[p.ProductID] = p
	return p, nil
}

func (r memProductRepo) ListByStatus(_ context.Context, status entities.Status, pageNumber, pageSize int) ([]entities.Product, error) {
	var out []entities.Product
	for _, p := range r.s.products {
		if p.Status == status {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedOn.After(out[j].CreatedOn) })
	return slicePage(out, pageNumber, pageSize), nil
}

func (r memProductRepo) Search(_ context.Context, filter entities.ProductFilter, pageNumber, pageSize int) ([]entities.Product, error) {
	active, _ := r.ListByStatus(context.Background(), entities.StatusActive, 1, len(r.s.products)+1)
	var out []entities.Product
	for _, p := range active {
		if filter.Name != "" && !strings.Contains(p.Name, filter.Name) {
			continue
		}
		if p.Price < filter.MinPrice || (filter.MaxPrice > 0 && p.Price > filter.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return slicePage(out, pageNumber, pageSize), nil
}

type memQueueRepo struct{ s *memStores }

func (r memQueueRepo) GetByApprovalID(_ context.Context, approvalID string) (entities.ApprovalRequest, error) {
	return r.s.approvals[approvalID], nil
}

func (r memQueueRepo) GetByProductID(_ context.Context, productID string) (entities.ApprovalRequest, error) {
	for _, req := range r.s.approvals {
		if req.ProductID == productID {
			return req, nil
		}
	}
	return entities.ApprovalRequest{}, nil
}

func (r memQueueRepo) List(_ context.Context, pageNumber, pageSize int) ([]entities.ApprovalRequest, error) {
	var out []entities.ApprovalRequest
	for _, req := range r.s.approvals {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestDate.Before(out[j].RequestDate) })
	return slicePage(out, pageNumber, pageSize), nil
}

func (r memQueueRepo) Create(_ context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	if _, ok := r.s.approvals[req.ApprovalID]; ok {
		return entities.ApprovalRequest{}, errors.New("approval id collision")
	}
	r.s.approvals[req.ApprovalID] = req
	return req, nil
}

func (r memQueueRepo) Remove(_ context.Context, approvalID string) (bool, error) {
	if _, ok := r.s.approvals[approvalID]; !ok {
		return false, nil
	}
	delete(r.s.approvals, approvalID)
	return true, nil
}

type memWorkflowRepo struct{ s *memStores }

func (r memWorkflowRepo) SaveProductWithApproval(ctx context.Context, p entities.Product, req entities.ApprovalRequest) (entities.Product, error) {
	if _, err := (memQueueRepo{r.s}).Create(ctx, req); err != nil {
		return entities.Product{}, err
	}
	return memProductRepo{r.s}.Save(ctx, p)
}

func (r memWorkflowRepo) ApplyDecision(ctx context.Context, p entities.Product, approvalID string) (entities.Product, error) {
	removed, err := (memQueueRepo{r.s}).Remove(ctx, approvalID)
	if err != nil {
		return entities.Product{}, err
	}
	if !removed {
		return entities.Product{}, nil
	}
	return memProductRepo{r.s}.Save(ctx, p)
}

func slicePage[T any](items []T, pageNumber, pageSize int) []T {
	offset := (pageNumber - 1) * pageSize
	if offset >= len(items) {
		return nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// checkConsistency asserts the engine's core contract: a PENDING_APPROVAL
// product has exactly one open request, a product in any other reviewable
// state has none, and every request points at a live product. INACTIVE
// products are exempt because deletion intentionally leaves its bookkeeping
// request behind.
func checkConsistency(t *testing.T, s *memStores) {
	t.Helper()

	openPerProduct := map[string]int{}
	for _, req := range s.approvals {
		openPerProduct[req.ProductID]++
		if _, ok := s.products[req.ProductID]; !ok {
			t.Fatalf("approval %s references unknown product %s", req.ApprovalID, req.ProductID)
		}
	}

	for id, p := range s.products {
		n := openPerProduct[id]
		if n > 1 {
			t.Fatalf("product %s has %d open approvals", id, n)
		}
		switch p.Status {
		case entities.StatusPendingApproval:
			if n != 1 {
				t.Fatalf("PENDING_APPROVAL product %s has %d open approvals", id, n)
			}
		case entities.StatusInactive:
			// May or may not carry the delete bookkeeping request.
		default:
			if n != 0 {
				t.Fatalf("%s product %s has %d open approvals", p.Status, id, n)
			}
		}
	}
}

func newSequenceUseCase(s *memStores) *ProductUseCase {
	return NewProductUseCase(memProductRepo{s}, memQueueRepo{s}, memWorkflowRepo{s}, 100, 10000)
}

func TestWorkflowSequence_CreateApproveList(t *testing.T) {
	ctx := context.Background()
	s := newMemStores()
	uc := newSequenceUseCase(s)

	widget, err := uc.CreateProduct(ctx, "Widget", 50, entities.StatusActive)
	if err != nil {
		t.Fatalf("create widget: %v", err)
	}
	if widget.Status != entities.StatusActive {
		t.Fatalf("expected ACTIVE widget, got %s", widget.Status)
	}
	checkConsistency(t, s)
	if len(s.approvals) != 0 {
		t.Fatalf("expected empty queue, got %d", len(s.approvals))
	}

	gadget, err := uc.CreateProduct(ctx, "Gadget", 150, entities.StatusActive)
	if err != nil {
		t.Fatalf("create gadget: %v", err)
	}
	if gadget.Status != entities.StatusPendingApproval {
		t.Fatalf("expected PENDING_APPROVAL gadget, got %s", gadget.Status)
	}
	checkConsistency(t, s)

	rows, err := uc.FetchApprovalQueue(ctx, 1, 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected one queue row, got %v %v", rows, err)
	}
	if rows[0].Product.ProductID != gadget.ProductID {
		t.Fatalf("queue row references %s", rows[0].Product.ProductID)
	}

	approvalID := rows[0].Approval.ApprovalID
	approved, err := uc.ApproveProduct(ctx, approvalID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entities.StatusActive {
		t.Fatalf("expected ACTIVE after approve, got %s", approved.Status)
	}
	checkConsistency(t, s)

	rows, err = uc.FetchApprovalQueue(ctx, 1, 10)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty queue after approve, got %v %v", rows, err)
	}

	// A second decision on the same request must fail.
	if _, err := uc.ApproveProduct(ctx, approvalID); !errors.Is(err, ErrApprovalNotFound) {
		t.Fatalf("expected ErrApprovalNotFound on second approve, got %v", err)
	}
	if _, err := uc.RejectProduct(ctx, approvalID); !errors.Is(err, ErrApprovalNotFound) {
		t.Fatalf("expected ErrApprovalNotFound on reject after approve, got %v", err)
	}
}

func TestWorkflowSequence_UpdateRejectDelete(t *testing.T) {
	ctx := context.Background()
	s := newMemStores()
	uc := newSequenceUseCase(s)

	p, err := uc.CreateProduct(ctx, "Widget", 100, entities.StatusActive)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Moderate increase stays out of the queue.
	p, err = uc.UpdateProduct(ctx, p.ProductID, "Widget", 140, entities.StatusActive)
	if err != nil {
		t.Fatalf("update to 140: %v", err)
	}
	if p.Status != entities.StatusActive {
		t.Fatalf("expected ACTIVE, got %s", p.Status)
	}
	checkConsistency(t, s)

	// 210 > 140 * 1.5 forces review.
	p, err = uc.UpdateProduct(ctx, p.ProductID, "Widget", 210.01, entities.StatusActive)
	if err != nil {
		t.Fatalf("update to 210.01: %v", err)
	}
	if p.Status != entities.StatusPendingApproval {
		t.Fatalf("expected PENDING_APPROVAL, got %s", p.Status)
	}
	checkConsistency(t, s)

	// Another triggering update must not create a second request.
	if _, err := uc.UpdateProduct(ctx, p.ProductID, "Widget", 900, entities.StatusActive); err != nil {
		t.Fatalf("second triggering update: %v", err)
	}
	if len(s.approvals) != 1 {
		t.Fatalf("expected one open approval, got %d", len(s.approvals))
	}
	checkConsistency(t, s)

	rows, err := uc.FetchApprovalQueue(ctx, 1, 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected one queue row, got %v %v", rows, err)
	}

	rejected, err := uc.RejectProduct(ctx, rows[0].Approval.ApprovalID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != entities.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", rejected.Status)
	}
	checkConsistency(t, s)

	// Delete soft-deletes and parks a request in the queue.
	if _, err := uc.DeleteProduct(ctx, p.ProductID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := s.products[p.ProductID].Status; got != entities.StatusInactive {
		t.Fatalf("expected INACTIVE, got %s", got)
	}
	if len(s.approvals) != 1 {
		t.Fatalf("expected delete bookkeeping approval, got %d", len(s.approvals))
	}
	checkConsistency(t, s)

	// Deleting again re-fetches, stays INACTIVE, and adds no second request.
	if _, err := uc.DeleteProduct(ctx, p.ProductID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if len(s.approvals) != 1 {
		t.Fatalf("expected single approval after repeat delete, got %d", len(s.approvals))
	}
	checkConsistency(t, s)
}
