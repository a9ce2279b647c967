package entities

import "time"

// Status represents the lifecycle of a catalog product.
//
// Domain notes:
//   - PENDING_APPROVAL means exactly one open approval request references the product.
//   - INACTIVE is a soft delete; the record is never physically removed.

type Status string

const (
	StatusActive          Status = "ACTIVE"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusInactive        Status = "INACTIVE"
	StatusRejected        Status = "REJECTED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPendingApproval, StatusInactive, StatusRejected:
		return true
	}
	return false
}

// Product is the catalog item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: product_id
//   - GSI1 (status-index): status / created_on
type Product struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Status    Status    `json:"status"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// ProductFilter narrows a product search. Zero values widen the
// corresponding bound (empty name matches everything).
type ProductFilter struct {
	Name         string
	MinPrice     float64
	MaxPrice     float64
	MinCreatedOn time.Time
	MaxCreatedOn time.Time
}
