package pagination

import (
	"context"

	"gorm.io/gorm"
)

// DefaultLimit is the default number of items per page
const DefaultLimit = 10

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// DefaultSort is the default sort order (newest first)
const DefaultSort = "created_at DESC"

// ErrCodePagination is the default error code for wrapped query failures
const ErrCodePagination = "PAGINATION_ERROR"

// Query describes one page request over a collection.
type Query struct {
	Page         int
	Limit        int
	Filter       Expr     // base filter, combined with search via AND
	Search       string   // optional search term
	SearchFields []string // fields matched case-insensitively against Search
	Sort         string   // SQL order clause, DefaultSort when empty
	Select       []string // column projection, all columns when empty
	Preload      []string // relations to expand
}

// Meta holds pagination metadata for one result page.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    *int  `json:"prevPage"`
}

// Result is one page of records plus its metadata.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// Error wraps a query failure with a stable code for API clients.
type Error struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Code    string `json:"code"`
}

func (e *Error) Error() string {
	return e.Message
}

func wrapErr(err error) *Error {
	return &Error{Success: false, Message: err.Error(), Code: ErrCodePagination}
}

// Normalize clamps page and limit into their valid ranges and applies
// the default sort order.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
}

// Condition combines the base filter with the search disjunction:
// filter AND (OR of field matches) when both are present, the
// disjunction alone otherwise.
func (q *Query) Condition() Expr {
	if q.Search == "" || len(q.SearchFields) == 0 {
		return q.Filter
	}
	matches := make([]Expr, 0, len(q.SearchFields))
	for _, field := range q.SearchFields {
		matches = append(matches, Contains(field, q.Search))
	}
	search := Or(matches...)
	if q.Filter == nil {
		return search
	}
	return And(q.Filter, search)
}

// Paginate runs a bounded, counted page query for records of type T.
//
// The reported CurrentPage is clamped down to the last page when the
// requested page exceeds it, but the fetch keeps the originally
// requested offset, matching the behavior existing clients depend on.
func Paginate[T any](ctx context.Context, db *gorm.DB, q Query) (*Result[T], error) {
	q.Normalize()
	skip := (q.Page - 1) * q.Limit

	sql, args := Compile(q.Condition())

	var model T
	countQuery := db.WithContext(ctx).Model(&model)
	if sql != "" {
		countQuery = countQuery.Where(sql, args...)
	}

	var totalCount int64
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, wrapErr(err)
	}

	dataQuery := db.WithContext(ctx).Model(&model)
	if sql != "" {
		dataQuery = dataQuery.Where(sql, args...)
	}
	if len(q.Select) > 0 {
		dataQuery = dataQuery.Select(q.Select)
	}
	for _, relation := range q.Preload {
		dataQuery = dataQuery.Preload(relation)
	}

	var data []T
	err := dataQuery.
		Order(q.Sort).
		Offset(skip).
		Limit(q.Limit).
		Find(&data).Error
	if err != nil {
		return nil, wrapErr(err)
	}

	return &Result[T]{
		Data:       data,
		Pagination: BuildMeta(q.Page, q.Limit, totalCount),
	}, nil
}

// BuildMeta calculates pagination metadata for a requested page.
func BuildMeta(page, limit int, totalCount int64) Meta {
	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	currentPage := page
	if currentPage > totalPages && totalPages > 0 {
		currentPage = totalPages
	}

	meta := Meta{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > 1,
	}
	if meta.HasNextPage {
		next := currentPage + 1
		meta.NextPage = &next
	}
	if meta.HasPrevPage {
		prev := currentPage - 1
		meta.PrevPage = &prev
	}
	return meta
}
