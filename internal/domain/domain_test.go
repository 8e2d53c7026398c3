package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPeriodsOverlap(t *testing.T) {
	existingInicio, existingFim := day("2024-01-15"), day("2024-01-30")

	testCases := map[string]struct {
		inicio, fim string
		want        bool
	}{
		"partial overlap at the tail": {"2024-01-20", "2024-02-05", true},
		"partial overlap at the head": {"2024-01-01", "2024-01-16", true},
		"new inside existing":         {"2024-01-18", "2024-01-25", true},
		"new contains existing":       {"2024-01-01", "2024-02-28", true},
		"touching the end boundary":   {"2024-01-30", "2024-02-10", true},
		"touching the start boundary": {"2024-01-01", "2024-01-15", true},
		"strictly after":              {"2024-02-01", "2024-02-10", false},
		"strictly before":             {"2024-01-01", "2024-01-14", false},
		"identical interval":          {"2024-01-15", "2024-01-30", true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := PeriodsOverlap(existingInicio, existingFim, day(tc.inicio), day(tc.fim))
			assert.Equal(t, tc.want, got)
			// symmetric
			assert.Equal(t, tc.want, PeriodsOverlap(day(tc.inicio), day(tc.fim), existingInicio, existingFim))
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(PageRequest{Page: 2, Limit: 10}, 15)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 15, Pages: 2}, p)

	p = NewPagination(PageRequest{}, 0)
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}, p)

	p = NewPagination(PageRequest{Page: 1, Limit: 5}, 10)
	assert.Equal(t, 2, p.Pages)
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 10, PageRequest{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, Limit: 0}.Offset())
	assert.Equal(t, 40, PageRequest{Page: 5, Limit: 10}.Offset())
}

func TestPageRequestExtremes(t *testing.T) {
	testCases := map[string]struct {
		req       PageRequest
		wantPage  int
		wantLimit int
	}{
		"limit above max":         {PageRequest{Page: 1, Limit: math.MaxInt}, 1, MaxLimit},
		"page overflowing offset": {PageRequest{Page: 1 << 62, Limit: 4}, MaxPage, 4},
		"both at int max":         {PageRequest{Page: math.MaxInt, Limit: math.MaxInt}, MaxPage, MaxLimit},
		"negative values":         {PageRequest{Page: math.MinInt, Limit: math.MinInt}, DefaultPage, DefaultLimit},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			n := tc.req.Normalize()
			assert.Equal(t, tc.wantPage, n.Page)
			assert.Equal(t, tc.wantLimit, n.Limit)
			assert.GreaterOrEqual(t, tc.req.Offset(), 0)

			p := NewPagination(tc.req, 15)
			assert.Equal(t, 15, p.Total)
			assert.Equal(t, (15+n.Limit-1)/n.Limit, p.Pages)
		})
	}
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, "", OptionValue("todos"))
	assert.Equal(t, "", OptionValue(" TODOS "))
	assert.Equal(t, "ativo", OptionValue("ativo"))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("dataInicio", "2024-01-15")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	got, err = ParseDate("dataAprovacao", "2024-01-15T10:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseDate("dataFim", "15/01/2024")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Equal(t, "Data inválida: dataFim", err.Error())

	empty := "  "
	opt, err := ParseOptionalDate("dataVencimento", &empty)
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewConflictError("CPF já cadastrado"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("boom")))
	assert.Equal(t, "not_found", KindNotFound.String())
}
