package queries_test

import (
	"testing"

	"pigeonpost/internal/core/application/usecases/queries"
	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLettersQuery_Defaults(t *testing.T) {
	query, err := queries.NewGetLettersQuery(queries.GetLettersFilter{}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, queries.DefaultPageSize, query.PageSize())
	assert.Nil(t, query.Status())
}

func TestNewGetLettersQuery_WithStatusFilter(t *testing.T) {
	status := letter.Dispatched
	query, err := queries.NewGetLettersQuery(queries.GetLettersFilter{Status: &status}, 2, 25)
	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, letter.Dispatched, *query.Status())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.PageSize())
}

func TestNewGetLettersQuery_InvalidPaging(t *testing.T) {
	_, err := queries.NewGetLettersQuery(queries.GetLettersFilter{}, 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = queries.NewGetLettersQuery(queries.GetLettersFilter{}, 1, queries.MaxPageSize+1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewGetLettersQuery_UnknownStatus(t *testing.T) {
	status := letter.Unknown
	_, err := queries.NewGetLettersQuery(queries.GetLettersFilter{Status: &status}, 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestGetLettersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLettersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLettersQueryIsNotConstructed)
}

func TestGetStatisticsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStatisticsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStatisticsQueryIsNotConstructed)
}
