package queries

import (
	"errors"

	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetClientsQueryIsNotConstructed = errors.New(
		"GetClientsQuery must be created via NewGetClientsQuery constructor",
	)
)

// GetClientsQuery retrieves a page of clients with optional substring filters.
type GetClientsQuery struct {
	name     string
	email    string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetClientsQuery creates a client listing query.
// Name and email filter by case-insensitive substring; empty strings match
// everything. Page numbering starts at 1; pageSize 0 selects DefaultPageSize.
func NewGetClientsQuery(name string, email string, page int, pageSize int) (GetClientsQuery, error) {
	var errList []error
	if page < 1 {
		errList = append(errList, errs.NewValidationError("page", "page must be at least 1"))
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		errList = append(errList, errs.NewValidationError("pageSize", "pageSize must be between 1 and 100"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetClientsQuery{}, err
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	return GetClientsQuery{
		name:     name,
		email:    email,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

// Name returns the name substring filter, empty for all names.
func (q GetClientsQuery) Name() string {
	return q.name
}

// Email returns the email substring filter, empty for all emails.
func (q GetClientsQuery) Email() string {
	return q.email
}

// Page returns the 1-based page number.
func (q GetClientsQuery) Page() int {
	return q.page
}

// PageSize returns the page size after defaulting.
func (q GetClientsQuery) PageSize() int {
	return q.pageSize
}
