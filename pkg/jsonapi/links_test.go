package jsonapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.example.edu/v1"

func TestResourceURL(t *testing.T) {
	assert.Equal(t, baseURL+"/terms", ResourceURL(baseURL, "terms"))
	assert.Equal(t, baseURL+"/terms", ResourceURL(baseURL+"/", "/terms/"))
}

func TestResourcePathLink(t *testing.T) {
	assert.Equal(t, baseURL+"/terms/201902", ResourcePathLink(baseURL+"/terms", "201902"))
}

func TestParamsLink(t *testing.T) {
	resourceURL := baseURL + "/terms"
	assert.Equal(t, resourceURL, ParamsLink(resourceURL, nil))
	assert.Equal(t, resourceURL, ParamsLink(resourceURL, url.Values{}))

	params := url.Values{}
	params.Set("academicYear", "1819")
	params.Add("status", "open")
	params.Add("status", "current")
	link := ParamsLink(resourceURL, params)
	assert.Equal(t, resourceURL+"?academicYear=1819&status=open&status=current", link)
}

func TestPaginationLinks(t *testing.T) {
	resourceURL := baseURL + "/terms"
	params := url.Values{}
	params.Set("academicYear", "1819")

	links := PaginationLinks(resourceURL, params, 10, 2, 4)

	require.NotNil(t, links["self"])
	assert.Contains(t, *links["self"], "academicYear=1819")
	assert.Contains(t, *links["self"], "page%5Bnumber%5D=2")
	assert.Contains(t, *links["self"], "page%5Bsize%5D=10")

	require.NotNil(t, links["first"])
	assert.Contains(t, *links["first"], "page%5Bnumber%5D=1")
	require.NotNil(t, links["last"])
	assert.Contains(t, *links["last"], "page%5Bnumber%5D=4")
	require.NotNil(t, links["prev"])
	assert.Contains(t, *links["prev"], "page%5Bnumber%5D=1")
	require.NotNil(t, links["next"])
	assert.Contains(t, *links["next"], "page%5Bnumber%5D=3")
}

func TestPaginationLinksEdges(t *testing.T) {
	resourceURL := baseURL + "/terms"

	first := PaginationLinks(resourceURL, url.Values{}, 10, 1, 3)
	assert.Nil(t, first["prev"])
	require.NotNil(t, first["next"])

	last := PaginationLinks(resourceURL, url.Values{}, 10, 3, 3)
	require.NotNil(t, last["prev"])
	assert.Nil(t, last["next"])
}

func TestPaginationLinksDoNotMutateParams(t *testing.T) {
	params := url.Values{}
	params.Set("academicYear", "1819")

	PaginationLinks(baseURL+"/terms", params, 10, 1, 1)

	assert.Equal(t, url.Values{"academicYear": []string{"1819"}}, params)
}
