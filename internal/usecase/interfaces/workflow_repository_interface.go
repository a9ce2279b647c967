package interfaces

import (
	"context"
	"product_catalog/internal/domain/entities"
)

// IWorkflowRepository bounds the multi-record mutations of the approval
// workflow inside a single storage transaction. Product status and approval
// queue membership must never diverge, and there is no foreign key backing
// that up, so every write that touches both records goes through here.

type IWorkflowRepository interface {
	// SaveProductWithApproval persists the product and its open approval
	// request as one atomic unit.
	SaveProductWithApproval(ctx context.Context, p entities.Product, req entities.ApprovalRequest) (entities.Product, error)

	// ApplyDecision persists the decided product and removes the approval
	// request as one atomic unit. A zero-value Product with a nil error means
	// the request was already removed by a concurrent decision; nothing was
	// written.
	ApplyDecision(ctx context.Context, p entities.Product, approvalID string) (entities.Product, error)
}
