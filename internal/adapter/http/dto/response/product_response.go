package response

import (
	"time"

	"product_catalog/internal/domain/entities"
)

type ProductResponse struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Status:    string(p.Status),
		CreatedOn: p.CreatedOn,
		UpdatedOn: p.UpdatedOn,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// PendingProductResponse is one approval queue row: the open request plus the
// product it holds up.
type PendingProductResponse struct {
	ApprovalID  string          `json:"approval_id"`
	RequestDate time.Time       `json:"request_date"`
	Product     ProductResponse `json:"product"`
}

func FromPendingProduct(row entities.PendingProduct) PendingProductResponse {
	return PendingProductResponse{
		ApprovalID:  row.Approval.ApprovalID,
		RequestDate: row.Approval.RequestDate,
		Product:     FromProduct(row.Product),
	}
}

func FromPendingProducts(rows []entities.PendingProduct) []PendingProductResponse {
	out := make([]PendingProductResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromPendingProduct(row))
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}
