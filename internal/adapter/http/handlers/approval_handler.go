package handlers

import (
	"context"
	"net/http"

	request "product_catalog/internal/adapter/http/dto/request"
	response "product_catalog/internal/adapter/http/dto/response"
	"product_catalog/internal/domain/entities"
	"product_catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles HTTP requests for the approval queue.

type ApprovalHandler struct {
	usecase usecase.IProductUseCase
}

func NewApprovalHandler(uc usecase.IProductUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// FetchApprovalQueue lists pending products, oldest request first.
func (h *ApprovalHandler) FetchApprovalQueue(c *gin.Context) {
	var query request.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidQueryParams.HTTPStatus, errInvalidQueryParams.ToHTTPError())
		return
	}

	rows, err := h.usecase.FetchApprovalQueue(c.Request.Context(), query.PageNumber, query.PageSize)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPendingProducts(rows))
}

// ApproveProduct resolves a pending request, activating the product.
func (h *ApprovalHandler) ApproveProduct(c *gin.Context) {
	h.decideByRequest(c, h.usecase.ApproveProduct)
}

// RejectProduct resolves a pending request, rejecting the product.
func (h *ApprovalHandler) RejectProduct(c *gin.Context) {
	h.decideByRequest(c, h.usecase.RejectProduct)
}

func (h *ApprovalHandler) decideByRequest(
	c *gin.Context,
	decider func(ctx context.Context, approvalID string) (entities.Product, error),
) {
	product, err := decider(c.Request.Context(), c.Param("approvalId"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}
