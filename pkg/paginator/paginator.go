// Package paginator slices ordered result sets into 1-indexed pages. It is
// deliberately storage-agnostic: callers hand it the already-filtered rows
// and receive the requested window plus the counts list endpoints put in
// their response metadata.
package paginator

// DefaultPageSize applies when a page number is requested without an
// explicit size.
const DefaultPageSize = 25

// Page describes a requested page. Zero values mean the parameter was not
// supplied; when both are zero the whole set is returned unsliced.
type Page struct {
	Size   int
	Number int
}

// Result holds the requested window of rows and pagination counts.
// TotalResults is always the pre-slice count. PageSize, PageNumber and
// TotalPages are only meaningful when Paged is true.
type Result[T any] struct {
	Rows         []T
	Paged        bool
	TotalResults int
	PageSize     int
	PageNumber   int
	TotalPages   int
}

// Paginate returns the slice [(number-1)*size, number*size) of rows. The
// input is never reordered or mutated; a page beyond the end yields an
// empty window, not an error.
func Paginate[T any](rows []T, page Page) Result[T] {
	result := Result[T]{Rows: rows, TotalResults: len(rows)}

	if page.Size <= 0 && page.Number <= 0 {
		return result
	}

	size := page.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	number := page.Number
	if number <= 0 {
		number = 1
	}

	totalPages := len(rows) / size
	if len(rows)%size != 0 {
		totalPages++
	}

	start := (number - 1) * size
	end := start + size
	switch {
	case start >= len(rows):
		result.Rows = []T{}
	case end > len(rows):
		result.Rows = rows[start:]
	default:
		result.Rows = rows[start:end]
	}

	result.Paged = true
	result.PageSize = size
	result.PageNumber = number
	result.TotalPages = totalPages
	return result
}
