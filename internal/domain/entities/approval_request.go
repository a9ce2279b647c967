package entities

import "time"

// ApprovalRequest is the pending-review marker for a single product.
//
// Requests are immutable once written: a human decision removes them,
// nothing ever updates them in place.
//
// Storage model (DynamoDB):
//   - PK: approval_id
//   - GSI1 (product_id-index): product_id
//   - GSI2 (request_date-index): queue_partition / request_date
type ApprovalRequest struct {
	ApprovalID  string    `json:"approval_id"`
	ProductID   string    `json:"product_id"`
	RequestDate time.Time `json:"request_date"`
}

// PendingProduct is the read-side join of an open approval request with
// the product it references, as shown in the approval queue listing.
type PendingProduct struct {
	Approval ApprovalRequest `json:"approval"`
	Product  Product         `json:"product"`
}
