package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: -3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 25}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, p.Offset())

	p = &PaginationParams{Page: 4, PerPage: 10}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 10, 35)
	assert.Equal(t, 2, pag.CurrentPage)
	assert.Equal(t, 4, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	pag = NewPagination(1, 10, 5)
	assert.Equal(t, 1, pag.TotalPages)
	assert.False(t, pag.HasNext)
	assert.False(t, pag.HasPrev)
}

func TestNewPaginatedResultNilItems(t *testing.T) {
	result := NewPaginatedResult[int](nil, NewPagination(1, 10, 0))
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}
