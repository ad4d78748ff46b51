package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/terms-api/internal/models"
)

func TestListTermsQueryFilter(t *testing.T) {
	query := ListTermsQuery{
		AcademicYear:     "1819",
		Date:             "2019-03-01",
		RegistrationDate: "2019-01-15",
		Status:           []string{"open", "current"},
		PageSize:         10,
		PageNumber:       2,
	}

	filter, err := query.Filter()
	require.NoError(t, err)

	assert.Equal(t, "1819", filter.AcademicYear)
	require.NotNil(t, filter.Date)
	assert.Equal(t, time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), *filter.Date)
	require.NotNil(t, filter.RegistrationDate)
	assert.Nil(t, filter.HousingDate)
	assert.Equal(t, []models.TermStatus{models.StatusOpen, models.StatusCurrent}, filter.Statuses)
	assert.Equal(t, 10, filter.PageSize)
	assert.Equal(t, 2, filter.PageNumber)
}

func TestListTermsQueryFilterRejectsBadDate(t *testing.T) {
	_, err := ListTermsQuery{Date: "not-a-date"}.Filter()
	require.Error(t, err)
}

func TestListTermsQueryFilterParams(t *testing.T) {
	query := ListTermsQuery{
		CalendarYear: "2019",
		HousingDate:  "2019-02-01",
		Status:       []string{"open", "current"},
		PageSize:     10,
		PageNumber:   2,
	}

	params := query.FilterParams()

	assert.Equal(t, "2019", params.Get("calendarYear"))
	assert.Equal(t, "2019-02-01", params.Get("housingDate"))
	assert.Equal(t, []string{"open", "current"}, params["status"])
	// Pagination parameters are never echoed in the top-level self link.
	assert.NotContains(t, params, "page[size]")
	assert.NotContains(t, params, "page[number]")
}

func TestNewTermAttributes(t *testing.T) {
	start := time.Date(2019, 1, 7, 0, 0, 0, 0, time.UTC)
	season := models.SeasonWinter
	calendarYear := "2019"

	attrs := NewTermAttributes(models.EnrichedTerm{
		Term: models.Term{
			TermCode:     "201902",
			Description:  "Winter 2019",
			AcademicYear: "1819",
			StartDate:    &start,
		},
		Season:       &season,
		CalendarYear: &calendarYear,
		Status:       []models.TermStatus{models.StatusOpen},
	})

	assert.Equal(t, "Winter 2019", attrs.Description)
	require.NotNil(t, attrs.StartDate)
	assert.Equal(t, "2019-01-07", *attrs.StartDate)
	assert.Nil(t, attrs.EndDate)
	require.NotNil(t, attrs.Season)
	assert.Equal(t, "Winter", *attrs.Season)
	assert.Equal(t, []models.TermStatus{models.StatusOpen}, attrs.Status)
}
