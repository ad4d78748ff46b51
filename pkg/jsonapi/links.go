package jsonapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Pagination query parameter names.
const (
	ParamPageSize   = "page[size]"
	ParamPageNumber = "page[number]"
)

// ResourceURL joins the API base URL with a resource path.
func ResourceURL(baseURL, resourcePath string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Trim(resourcePath, "/")
}

// ResourcePathLink appends a resource identifier to a collection URL.
func ResourcePathLink(resourceURL, id string) string {
	return strings.TrimRight(resourceURL, "/") + "/" + url.PathEscape(id)
}

// ParamsLink renders a collection URL with the given query parameters.
// Encoding sorts keys, so the same parameters always produce the same link.
func ParamsLink(resourceURL string, params url.Values) string {
	if len(params) == 0 {
		return resourceURL
	}
	return fmt.Sprintf("%s?%s", resourceURL, params.Encode())
}

// PaginationLinks builds the self/first/last/prev/next link set for a
// paginated collection. params should carry the non-pagination filter
// parameters; the page size and varying page numbers are appended here.
// prev and next are nil at the edges of the set.
func PaginationLinks(resourceURL string, params url.Values, pageSize, pageNumber, totalPages int) Links {
	pageLink := func(number int) *string {
		values := url.Values{}
		for key, vals := range params {
			values[key] = vals
		}
		values.Set(ParamPageSize, strconv.Itoa(pageSize))
		values.Set(ParamPageNumber, strconv.Itoa(number))
		return Link(ParamsLink(resourceURL, values))
	}

	links := Links{
		"self":  pageLink(pageNumber),
		"first": pageLink(1),
		"prev":  nil,
		"next":  nil,
	}
	if totalPages < 1 {
		links["last"] = pageLink(1)
	} else {
		links["last"] = pageLink(totalPages)
	}
	if pageNumber > 1 {
		links["prev"] = pageLink(pageNumber - 1)
	}
	if pageNumber < totalPages {
		links["next"] = pageLink(pageNumber + 1)
	}
	return links
}
