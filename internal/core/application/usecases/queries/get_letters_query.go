// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read from the database
// directly, returning flat read models shaped for the API.
package queries

import (
	"errors"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"
	"pigeonpost/internal/pkg/guard"
)

const (
	// DefaultPageSize is applied when a listing query does not name one.
	DefaultPageSize = 10

	// MaxPageSize caps how many rows a single listing page may return.
	MaxPageSize = 100
)

var (
	ErrGetLettersQueryIsNotConstructed = errors.New(
		"GetLettersQuery must be created via NewGetLettersQuery constructor",
	)
)

// GetLettersQuery retrieves a page of letters with optional filters.
// All filters combine with AND; zero values mean "no filter".
type GetLettersQuery struct {
	status      *letter.Status
	senderID    int64
	recipientID int64
	carrierID   int64
	overdueOnly bool
	page        int
	pageSize    int

	guard guard.ConstructorGuard
}

// GetLettersFilter carries the optional filter set for NewGetLettersQuery.
// The zero value matches everything.
type GetLettersFilter struct {
	Status      *letter.Status
	SenderID    int64
	RecipientID int64
	CarrierID   int64

	// OverdueOnly restricts the listing to dispatched letters whose
	// dispatch stamp is older than the overdue threshold.
	OverdueOnly bool
}

// NewGetLettersQuery creates a letters listing query.
// Page numbering starts at 1; pageSize 0 selects DefaultPageSize.
func NewGetLettersQuery(filter GetLettersFilter, page int, pageSize int) (GetLettersQuery, error) {
	var errList []error
	if page < 1 {
		errList = append(errList, errs.NewValidationError("page", "page must be at least 1"))
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		errList = append(errList, errs.NewValidationError("pageSize", "pageSize must be between 1 and 100"))
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return GetLettersQuery{}, err
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	return GetLettersQuery{
		status:      filter.Status,
		senderID:    filter.SenderID,
		recipientID: filter.RecipientID,
		carrierID:   filter.CarrierID,
		overdueOnly: filter.OverdueOnly,
		page:        page,
		pageSize:    pageSize,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLettersQuery) Validate() error {
	return q.guard.Validate(ErrGetLettersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all statuses.
func (q GetLettersQuery) Status() *letter.Status {
	return q.status
}

// SenderID returns the sender filter, 0 for all senders.
func (q GetLettersQuery) SenderID() int64 {
	return q.senderID
}

// RecipientID returns the recipient filter, 0 for all recipients.
func (q GetLettersQuery) RecipientID() int64 {
	return q.recipientID
}

// CarrierID returns the carrier filter, 0 for all carriers.
func (q GetLettersQuery) CarrierID() int64 {
	return q.carrierID
}

// OverdueOnly reports whether the listing is restricted to overdue letters.
func (q GetLettersQuery) OverdueOnly() bool {
	return q.overdueOnly
}

// Page returns the 1-based page number.
func (q GetLettersQuery) Page() int {
	return q.page
}

// PageSize returns the page size after defaulting.
func (q GetLettersQuery) PageSize() int {
	return q.pageSize
}
