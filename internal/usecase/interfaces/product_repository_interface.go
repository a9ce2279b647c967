package interfaces

import (
	"context"
	"product_catalog/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Not-found is reported as a zero-value Product with a nil error; errors are
// reserved for persistence failures. Save is a full replace (upsert).

type IProductRepository interface {
	GetByID(ctx context.Context, productID string) (entities.Product, error)
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
	ListByStatus(ctx context.Context, status entities.Status, pageNumber, pageSize int) ([]entities.Product, error)
	Search(ctx context.Context, filter entities.ProductFilter, pageNumber, pageSize int) ([]entities.Product, error)
}
