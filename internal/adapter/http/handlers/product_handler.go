package handlers

import (
	"errors"
	"net/http"

	request "product_catalog/internal/adapter/http/dto/request"
	response "product_catalog/internal/adapter/http/dto/response"
	"product_catalog/internal/usecase"
	"product_catalog/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidQueryParams    = pkg.NewDomainErrorSimple("INVALID_QUERY_PARAMS", "Invalid query parameters", http.StatusBadRequest)
)

// ProductHandler handles HTTP requests for the product catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// FetchAllActiveProducts lists ACTIVE products, newest first.
func (h *ProductHandler) FetchAllActiveProducts(c *gin.Context) {
	var query request.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidQueryParams.HTTPStatus, errInvalidQueryParams.ToHTTPError())
		return
	}

	products, err := h.usecase.FetchAllActiveProducts(c.Request.Context(), query.PageNumber, query.PageSize)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// SearchProducts lists ACTIVE products matching name, price and posted-date
// filters.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var query request.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidQueryParams.HTTPStatus, errInvalidQueryParams.ToHTTPError())
		return
	}

	filter, err := query.ResolveFilter()
	if err != nil {
		c.JSON(errInvalidQueryParams.HTTPStatus, errInvalidQueryParams.ToHTTPError())
		return
	}

	products, err := h.usecase.SearchProducts(c.Request.Context(), filter, query.PageNumber, query.PageSize)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// CreateProduct creates a product; prices above the auto-approve ceiling land
// in the approval queue instead of the requested status.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), payload.Name, payload.ResolvePrice(), payload.ResolveStatus())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// UpdateProduct replaces name, price and status of an existing product.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), c.Param("productId"), payload.Name, payload.ResolvePrice(), payload.ResolveStatus())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// DeleteProduct soft-deletes a product.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	message, err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: message})
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidApprovalID),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice),
		errors.Is(err, usecase.ErrInvalidProductStatus),
		errors.Is(err, usecase.ErrInvalidPaging):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", err.Error(), http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
