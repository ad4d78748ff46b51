// Package jsonapi provides the response envelope types and link builders
// for JSON:API documents: resource objects keyed by type/id, top-level
// links, pagination metadata, and structured error bodies.
package jsonapi

// Links maps link names to URLs. Absent pagination neighbours (prev on the
// first page, next on the last) are nil so they serialize as JSON null.
type Links map[string]*string

// Link returns a pointer suitable for a Links entry.
func Link(url string) *string {
	return &url
}

// Resource is a single JSON:API resource object.
type Resource struct {
	Type       string      `json:"type"`
	ID         string      `json:"id"`
	Attributes interface{} `json:"attributes"`
	Links      Links       `json:"links,omitempty"`
}

// Meta carries collection counts. The page fields are omitted when the
// response is not paginated.
type Meta struct {
	TotalResults int `json:"totalResults"`
	PageSize     int `json:"pageSize,omitempty"`
	PageNumber   int `json:"pageNumber,omitempty"`
	TotalPages   int `json:"totalPages,omitempty"`
}

// Document is a top-level JSON:API document. Data holds either a single
// Resource or a []Resource.
type Document struct {
	Links Links       `json:"links"`
	Data  interface{} `json:"data"`
	Meta  *Meta       `json:"meta,omitempty"`
}

// ErrorObject is one member of a JSON:API errors array.
type ErrorObject struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

// ErrorDocument is the top-level error body.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}
