package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestPaginateUnspecifiedReturnsWholeSet(t *testing.T) {
	rows := codes(7)
	result := Paginate(rows, Page{})

	assert.False(t, result.Paged)
	assert.Equal(t, rows, result.Rows)
	assert.Equal(t, 7, result.TotalResults)
}

func TestPaginateSlices(t *testing.T) {
	rows := codes(7)
	result := Paginate(rows, Page{Size: 3, Number: 2})

	require.True(t, result.Paged)
	assert.Equal(t, []string{"d", "e", "f"}, result.Rows)
	assert.Equal(t, 7, result.TotalResults)
	assert.Equal(t, 3, result.PageSize)
	assert.Equal(t, 2, result.PageNumber)
	assert.Equal(t, 3, result.TotalPages)
}

func TestPaginateTotalResultsIsPreSliceCount(t *testing.T) {
	rows := codes(7)
	result := Paginate(rows, Page{Size: 25, Number: 1})

	assert.Equal(t, 7, result.TotalResults)
	assert.LessOrEqual(t, len(result.Rows), 25)
	assert.Equal(t, 1, result.TotalPages)
}

func TestPaginatePartialLastPage(t *testing.T) {
	rows := codes(7)
	result := Paginate(rows, Page{Size: 3, Number: 3})

	assert.Equal(t, []string{"g"}, result.Rows)
	assert.Equal(t, 3, result.TotalPages)
}

func TestPaginateBeyondEndIsEmpty(t *testing.T) {
	rows := codes(3)
	result := Paginate(rows, Page{Size: 2, Number: 5})

	assert.Empty(t, result.Rows)
	assert.Equal(t, 3, result.TotalResults)
	assert.Equal(t, 2, result.TotalPages)
}

func TestPaginateDefaults(t *testing.T) {
	rows := codes(30)

	bySize := Paginate(rows, Page{Size: 10})
	assert.Equal(t, 1, bySize.PageNumber)
	assert.Len(t, bySize.Rows, 10)

	byNumber := Paginate(rows, Page{Number: 2})
	assert.Equal(t, DefaultPageSize, byNumber.PageSize)
	assert.Len(t, byNumber.Rows, 5)
}

func TestPaginateDoesNotReorder(t *testing.T) {
	rows := []string{"c", "a", "b"}
	result := Paginate(rows, Page{Size: 2, Number: 1})

	assert.Equal(t, []string{"c", "a"}, result.Rows)
	assert.Equal(t, []string{"c", "a", "b"}, rows)
}
