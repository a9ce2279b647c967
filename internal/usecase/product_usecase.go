package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrApprovalNotFound     = errors.New("approval request not found")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidApprovalID    = errors.New("invalid approval id")
	ErrInvalidProductName   = errors.New("invalid product name")
	ErrInvalidProductPrice  = errors.New("invalid product price")
	ErrInvalidProductStatus = errors.New("invalid product status")
	ErrInvalidPaging        = errors.New("invalid paging parameters")
)

const maxPageSize = 50

// IProductUseCase exposes the product lifecycle and approval workflow.
//
// Status/queue consistency is owned here: a product is PENDING_APPROVAL
// exactly when one open approval request references it. Mutations that touch
// both records run through the transactional workflow repository.

type IProductUseCase interface {
	FetchAllActiveProducts(ctx context.Context, pageNumber, pageSize int) ([]entities.Product, error)
	SearchProducts(ctx context.Context, filter entities.ProductFilter, pageNumber, pageSize int) ([]entities.Product, error)
	CreateProduct(ctx context.Context, name string, price float64, status entities.Status) (entities.Product, error)
	UpdateProduct(ctx context.Context, productID, name string, price float64, status entities.Status) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID string) (string, error)
	FetchApprovalQueue(ctx context.Context, pageNumber, pageSize int) ([]entities.PendingProduct, error)
	ApproveProduct(ctx context.Context, approvalID string) (entities.Product, error)
	RejectProduct(ctx context.Context, approvalID string) (entities.Product, error)
}

type ProductUseCase struct {
	products interfaces.IProductRepository
	queue    interfaces.IApprovalQueueRepository
	workflow interfaces.IWorkflowRepository

	maxAutoApprovePrice float64
	maxPrice            float64
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(
	products interfaces.IProductRepository,
	queue interfaces.IApprovalQueueRepository,
	workflow interfaces.IWorkflowRepository,
	maxAutoApprovePrice, maxPrice float64,
) *ProductUseCase {
	return &ProductUseCase{
		products:            products,
		queue:               queue,
		workflow:            workflow,
		maxAutoApprovePrice: maxAutoApprovePrice,
		maxPrice:            maxPrice,
	}
}

func (u *ProductUseCase) FetchAllActiveProducts(ctx context.Context, pageNumber, pageSize int) ([]entities.Product, error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return u.products.ListByStatus(ctx, entities.StatusActive, pageNumber, pageSize)
}

func (u *ProductUseCase) SearchProducts(ctx context.Context, filter entities.ProductFilter, pageNumber, pageSize int) ([]entities.Product, error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}
	return u.products.Search(ctx, filter, pageNumber, pageSize)
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, name string, price float64, status entities.Status) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if err := u.validateFields(name, price, status); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p := entities.Product{
		ProductID: uuid.NewString(),
		Name:      name,
		Price:     price,
		Status:    status,
		CreatedOn: now,
		UpdatedOn: now,
	}

	if !reviewRequiredOnCreate(price, u.maxAutoApprovePrice) {
		return u.products.Save(ctx, p)
	}

	// Price above the auto-approve ceiling: the caller-requested status is
	// overridden and the product enters the queue in the same transaction.
	p.Status = entities.StatusPendingApproval
	req := newApprovalRequest(p.ProductID, now)
	log.Printf("[product][usecase] create requires review product_id=%s price=%.2f approval_id=%s", p.ProductID, price, req.ApprovalID)
	return u.workflow.SaveProductWithApproval(ctx, p, req)
}

func (u *ProductUseCase) UpdateProduct(ctx context.Context, productID, name string, price float64, status entities.Status) (entities.Product, error) {
	productID, err := parseID(productID, ErrInvalidProductID)
	if err != nil {
		return entities.Product{}, err
	}
	name = strings.TrimSpace(name)
	if err := u.validateFields(name, price, status); err != nil {
		return entities.Product{}, err
	}

	existing, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ProductID == "" {
		return entities.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	updated := existing
	updated.Name = name
	updated.Price = price
	updated.Status = status
	updated.UpdatedOn = time.Now().UTC()

	// The trigger compares against the pre-update price.
	if reviewRequiredOnUpdate(existing.Price, price) {
		updated.Status = entities.StatusPendingApproval
		open, err := u.queue.GetByProductID(ctx, productID)
		if err != nil {
			return entities.Product{}, err
		}
		if open.ApprovalID == "" {
			req := newApprovalRequest(productID, updated.UpdatedOn)
			log.Printf("[product][usecase] update requires review product_id=%s old_price=%.2f new_price=%.2f approval_id=%s", productID, existing.Price, price, req.ApprovalID)
			return u.workflow.SaveProductWithApproval(ctx, updated, req)
		}
		// A request is already open; the at-most-one invariant forbids a second.
	}

	return u.products.Save(ctx, updated)
}

func (u *ProductUseCase) DeleteProduct(ctx context.Context, productID string) (string, error) {
	productID, err := parseID(productID, ErrInvalidProductID)
	if err != nil {
		return "", err
	}

	existing, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if existing.ProductID == "" {
		return "", fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	existing.Status = entities.StatusInactive
	existing.UpdatedOn = time.Now().UTC()

	// Deletion also parks a request in the approval queue when none is open.
	// Nothing ever resolves it; the behavior is kept for compatibility with
	// the original workflow.
	open, err := u.queue.GetByProductID(ctx, productID)
	if err != nil {
		return "", err
	}
	if open.ApprovalID == "" {
		req := newApprovalRequest(productID, existing.UpdatedOn)
		if _, err := u.workflow.SaveProductWithApproval(ctx, existing, req); err != nil {
			return "", err
		}
	} else if _, err := u.products.Save(ctx, existing); err != nil {
		return "", err
	}

	log.Printf("[product][usecase] product soft-deleted product_id=%s", productID)
	return "Product Deleted Successfully", nil
}

func (u *ProductUseCase) FetchApprovalQueue(ctx context.Context, pageNumber, pageSize int) ([]entities.PendingProduct, error) {
	if err := validatePaging(pageNumber, pageSize); err != nil {
		return nil, err
	}

	reqs, err := u.queue.List(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	rows := make([]entities.PendingProduct, 0, len(reqs))
	for _, req := range reqs {
		p, err := u.products.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if p.ProductID == "" {
			// Request points at a product that no longer exists; skip it.
			continue
		}
		rows = append(rows, entities.PendingProduct{Approval: req, Product: p})
	}
	return rows, nil
}

func (u *ProductUseCase) ApproveProduct(ctx context.Context, approvalID string) (entities.Product, error) {
	return u.decide(ctx, approvalID, entities.StatusActive)
}

func (u *ProductUseCase) RejectProduct(ctx context.Context, approvalID string) (entities.Product, error) {
	return u.decide(ctx, approvalID, entities.StatusRejected)
}

func (u *ProductUseCase) decide(ctx context.Context, approvalID string, status entities.Status) (entities.Product, error) {
	approvalID, err := parseID(approvalID, ErrInvalidApprovalID)
	if err != nil {
		return entities.Product{}, err
	}

	req, err := u.queue.GetByApprovalID(ctx, approvalID)
	if err != nil {
		return entities.Product{}, err
	}
	if req.ApprovalID == "" {
		return entities.Product{}, fmt.Errorf("%w: %s", ErrApprovalNotFound, approvalID)
	}

	p, err := u.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ProductID == "" {
		return entities.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, req.ProductID)
	}

	p.Status = status
	p.UpdatedOn = time.Now().UTC()

	decided, err := u.workflow.ApplyDecision(ctx, p, approvalID)
	if err != nil {
		return entities.Product{}, err
	}
	if decided.ProductID == "" {
		// A concurrent decision removed the request first; this caller loses.
		return entities.Product{}, fmt.Errorf("%w: %s", ErrApprovalNotFound, approvalID)
	}
	log.Printf("[product][usecase] decision applied approval_id=%s product_id=%s status=%s", approvalID, decided.ProductID, status)
	return decided, nil
}

func (u *ProductUseCase) validateFields(name string, price float64, status entities.Status) error {
	if name == "" {
		return ErrInvalidProductName
	}
	if price < 0 || price > u.maxPrice {
		return fmt.Errorf("%w: %.2f", ErrInvalidProductPrice, price)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidProductStatus, status)
	}
	return nil
}

func newApprovalRequest(productID string, at time.Time) entities.ApprovalRequest {
	return entities.ApprovalRequest{
		ApprovalID:  uuid.NewString(),
		ProductID:   productID,
		RequestDate: at,
	}
}

func parseID(id string, sentinel error) (string, error) {
	id = strings.TrimSpace(id)
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s", sentinel, id)
	}
	return parsed.String(), nil
}

func validatePaging(pageNumber, pageSize int) error {
	if pageNumber < 1 || pageSize < 1 || pageSize > maxPageSize {
		return fmt.Errorf("%w: pageNumber=%d pageSize=%d", ErrInvalidPaging, pageNumber, pageSize)
	}
	return nil
}
