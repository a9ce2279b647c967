package interfaces

import (
	"context"
	"product_catalog/internal/domain/entities"
)

// IApprovalQueueRepository abstracts DynamoDB persistence for ApprovalRequest.
//
// Not-found is a zero-value ApprovalRequest with a nil error. List returns open
// requests ordered ascending by request date. Remove reports whether a request
// was actually deleted so callers can detect a lost race.

type IApprovalQueueRepository interface {
	GetByApprovalID(ctx context.Context, approvalID string) (entities.ApprovalRequest, error)
	GetByProductID(ctx context.Context, productID string) (entities.ApprovalRequest, error)
	List(ctx context.Context, pageNumber, pageSize int) ([]entities.ApprovalRequest, error)
	Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error)
	Remove(ctx context.Context, approvalID string) (bool, error)
}
