package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/terms-api/internal/models"
)

func datePtr(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func day(value string) time.Time {
	return *datePtr(value)
}

func TestEnrichTermSeasonAndCalendarYear(t *testing.T) {
	cases := []struct {
		name        string
		description string
		wantSeason  string
		wantYear    string
		wantDerived bool
	}{
		{name: "fall", description: "Fall 1234", wantSeason: "Fall", wantYear: "1234", wantDerived: true},
		{name: "spring", description: "Spring 2020", wantSeason: "Spring", wantYear: "2020", wantDerived: true},
		{name: "leading space", description: " Winter 1234"},
		{name: "trailing space", description: "Winter 1234 "},
		{name: "five digit year", description: "Fall 12345"},
		{name: "three digit year", description: "Fall 123"},
		{name: "lowercase season", description: "fall 2019"},
		{name: "unknown season", description: "Autumn 2019"},
		{name: "extra words", description: "Late Fall 2019"},
		{name: "empty", description: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term := models.Term{TermCode: "201901", Description: tc.description}
			enriched := EnrichTerm(term, models.ReferenceCodes{}, day("2019-03-01"))

			if !tc.wantDerived {
				assert.Nil(t, enriched.Season)
				assert.Nil(t, enriched.CalendarYear)
				return
			}
			require.NotNil(t, enriched.Season)
			require.NotNil(t, enriched.CalendarYear)
			assert.Equal(t, models.Season(tc.wantSeason), *enriched.Season)
			assert.Equal(t, tc.wantYear, *enriched.CalendarYear)
		})
	}
}

func TestEnrichTermRegistrationStatus(t *testing.T) {
	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		today time.Time
		want  models.TermStatus
	}{
		{name: "inside window", start: datePtr("2019-01-01"), end: datePtr("2019-04-01"), today: day("2019-03-01"), want: models.StatusOpen},
		{name: "on start", start: datePtr("2019-01-01"), end: datePtr("2019-04-01"), today: day("2019-01-01"), want: models.StatusOpen},
		{name: "on end", start: datePtr("2019-01-01"), end: datePtr("2019-04-01"), today: day("2019-04-01"), want: models.StatusOpen},
		{name: "after window", start: datePtr("2019-01-01"), end: datePtr("2019-04-01"), today: day("2019-05-01"), want: models.StatusCompleted},
		{name: "before window", start: datePtr("2019-01-01"), end: datePtr("2019-04-01"), today: day("2018-12-31"), want: models.StatusNotOpen},
		{name: "both bounds missing", today: day("2019-03-01"), want: models.StatusNotOpen},
		{name: "missing start after end", end: datePtr("2019-04-01"), today: day("2019-05-01"), want: models.StatusCompleted},
		{name: "missing end", start: datePtr("2019-01-01"), today: day("2019-03-01"), want: models.StatusNotOpen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term := models.Term{
				TermCode:              "201902",
				RegistrationStartDate: tc.start,
				RegistrationEndDate:   tc.end,
			}
			enriched := EnrichTerm(term, models.ReferenceCodes{}, tc.today)

			assert.True(t, enriched.HasStatus(tc.want))

			// Exactly one of open/completed/not-open is always present.
			windowTags := 0
			for _, s := range enriched.Status {
				switch s {
				case models.StatusOpen, models.StatusCompleted, models.StatusNotOpen:
					windowTags++
				}
			}
			assert.Equal(t, 1, windowTags)
		})
	}
}

func TestEnrichTermReferenceStatuses(t *testing.T) {
	term := models.Term{
		TermCode:              "201902",
		RegistrationStartDate: datePtr("2019-01-01"),
		RegistrationEndDate:   datePtr("2019-04-01"),
	}
	refCodes := models.ReferenceCodes{
		CurrentTermCode:     "201902",
		PostInterimTermCode: "201902",
		PreInterimTermCode:  "201902",
	}

	enriched := EnrichTerm(term, refCodes, day("2019-03-01"))

	assert.True(t, enriched.HasStatus(models.StatusCurrent))
	assert.True(t, enriched.HasStatus(models.StatusPostInterim))
	assert.True(t, enriched.HasStatus(models.StatusPreInterim))
	assert.True(t, enriched.HasStatus(models.StatusOpen))
	assert.False(t, enriched.HasStatus(models.StatusCompleted))
	assert.False(t, enriched.HasStatus(models.StatusNotOpen))
}

func TestEnrichTermDuringBreak(t *testing.T) {
	refCodes := models.ReferenceCodes{
		PostInterimTermCode: "202001",
		PreInterimTermCode:  "201903",
	}

	next := EnrichTerm(models.Term{TermCode: "202001"}, refCodes, day("2019-12-20"))
	previous := EnrichTerm(models.Term{TermCode: "201903"}, refCodes, day("2019-12-20"))
	unrelated := EnrichTerm(models.Term{TermCode: "201802"}, refCodes, day("2019-12-20"))

	assert.True(t, next.HasStatus(models.StatusPostInterim))
	assert.False(t, next.HasStatus(models.StatusCurrent))
	assert.True(t, previous.HasStatus(models.StatusPreInterim))
	assert.False(t, previous.HasStatus(models.StatusCurrent))
	assert.False(t, unrelated.HasStatus(models.StatusCurrent))
	assert.False(t, unrelated.HasStatus(models.StatusPostInterim))
	assert.False(t, unrelated.HasStatus(models.StatusPreInterim))
}

func TestEnrichTermIsDeterministic(t *testing.T) {
	term := models.Term{
		TermCode:              "201902",
		Description:           "Winter 2019",
		RegistrationStartDate: datePtr("2019-01-01"),
		RegistrationEndDate:   datePtr("2019-04-01"),
	}
	refCodes := models.ReferenceCodes{CurrentTermCode: "201902", PostInterimTermCode: "201902", PreInterimTermCode: "201902"}

	first := EnrichTerm(term, refCodes, day("2019-03-01"))
	second := EnrichTerm(first.Term, refCodes, day("2019-03-01"))

	require.Equal(t, first, second)
	// The input row is never touched.
	assert.Equal(t, "Winter 2019", term.Description)
}
