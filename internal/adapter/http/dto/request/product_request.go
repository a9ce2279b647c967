package request

import (
	"errors"
	"strings"
	"time"

	"product_catalog/internal/domain/entities"
)

var ErrInvalidDateFilter = errors.New("invalid date filter")

const dateLayout = "2006-01-02T15:04"

// Search window defaults, matching the documented API contract.
const (
	defaultMinPostedDate = "2000-01-01T00:00"
	defaultMaxPostedDate = "9999-12-31T00:00"
)

// ProductRequest is the payload for product create and update calls.
// Price is a pointer so an explicit zero survives the required check.
type ProductRequest struct {
	Name   string   `json:"name" binding:"required"`
	Price  *float64 `json:"price" binding:"required"`
	Status string   `json:"status" binding:"required"`
}

func (r ProductRequest) ResolvePrice() float64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

func (r ProductRequest) ResolveStatus() entities.Status {
	return entities.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// PageQuery carries the shared 1-indexed pagination parameters.
type PageQuery struct {
	PageNumber int `form:"pageNumber,default=1" binding:"min=1"`
	PageSize   int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

// SearchQuery carries the product search filters. Dates use the
// yyyy-MM-ddTHH:mm layout; absent bounds widen to the defaults above.
type SearchQuery struct {
	ProductName   string  `form:"productName"`
	MinPrice      float64 `form:"minPrice,default=0" binding:"min=0"`
	MaxPrice      float64 `form:"maxPrice,default=1000000000000000000"`
	MinPostedDate string  `form:"minPostedDate"`
	MaxPostedDate string  `form:"maxPostedDate"`
	PageNumber    int     `form:"pageNumber,default=1" binding:"min=1"`
	PageSize      int     `form:"pageSize,default=10" binding:"min=1,max=50"`
}

func (q SearchQuery) ResolveFilter() (entities.ProductFilter, error) {
	minDate, err := parseDate(q.MinPostedDate, defaultMinPostedDate)
	if err != nil {
		return entities.ProductFilter{}, err
	}
	maxDate, err := parseDate(q.MaxPostedDate, defaultMaxPostedDate)
	if err != nil {
		return entities.ProductFilter{}, err
	}

	return entities.ProductFilter{
		Name:         strings.TrimSpace(q.ProductName),
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		MinCreatedOn: minDate,
		MaxCreatedOn: maxDate,
	}, nil
}

func parseDate(raw, def string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		v = def
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDateFilter
	}
	return t, nil
}
