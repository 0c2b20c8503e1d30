package queries

import (
	"errors"

	"pigeonpost/internal/pkg/guard"
)

var (
	ErrGetStatisticsQueryIsNotConstructed = errors.New(
		"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
	)
)

// GetStatisticsQuery retrieves the delivery statistics report.
// This is a parameterless query computed over the whole letters table.
type GetStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatisticsQuery creates a statistics query.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}
