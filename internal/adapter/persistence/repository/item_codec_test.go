package repository

import (
	"testing"
	"time"

	"product_catalog/internal/domain/entities"
)

func TestProductItemCodec(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.FixedZone("BRT", -3*60*60))
	p := entities.Product{
		ProductID: "5f3c1c4e-9f0a-4d2b-8a4e-1c2d3e4f5a6b",
		Name:      "Widget",
		Price:     149.9,
		Status:    entities.StatusPendingApproval,
		CreatedOn: created,
		UpdatedOn: created.Add(2 * time.Hour),
	}

	it := toProductItem(p)
	if it.Price != 149.9 {
		t.Fatalf("price must stay numeric, got %v", it.Price)
	}
	if it.Status != "PENDING_APPROVAL" {
		t.Fatalf("unexpected status attribute: %q", it.Status)
	}

	got := fromProductItem(it)
	if got.ProductID != p.ProductID || got.Name != p.Name || got.Price != p.Price || got.Status != p.Status {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	// Timestamps come back normalized to UTC but denote the same instant.
	if !got.CreatedOn.Equal(p.CreatedOn) || !got.UpdatedOn.Equal(p.UpdatedOn) {
		t.Fatalf("timestamp drift: %v / %v", got.CreatedOn, got.UpdatedOn)
	}
	if got.CreatedOn.Location() != time.UTC {
		t.Fatalf("expected UTC storage, got %v", got.CreatedOn.Location())
	}
}

// The status-index sorts lexically on created_on, so the stored strings must
// order the same way as the instants they encode.
func TestFormatTimeSortsChronologically(t *testing.T) {
	earlier := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Millisecond)
	if formatTime(earlier) >= formatTime(later) {
		t.Fatalf("lexical order broken: %q >= %q", formatTime(earlier), formatTime(later))
	}
}

func TestApprovalItemCodec(t *testing.T) {
	req := entities.ApprovalRequest{
		ApprovalID:  "a0b1c2d3-e4f5-6789-abcd-ef0123456789",
		ProductID:   "5f3c1c4e-9f0a-4d2b-8a4e-1c2d3e4f5a6b",
		RequestDate: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	it := toApprovalItem(req)
	if it.QueuePartition != approvalQueuePartition {
		t.Fatalf("expected partition %q, got %q", approvalQueuePartition, it.QueuePartition)
	}

	got := fromApprovalItem(it)
	if got.ApprovalID != req.ApprovalID || got.ProductID != req.ProductID || !got.RequestDate.Equal(req.RequestDate) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFloatToString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 149.9, want: "149.9"},
		{in: 10000, want: "10000"},
	}
	for _, tc := range cases {
		if got := floatToString(tc.in); got != tc.want {
			t.Fatalf("floatToString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
