package service

import (
	"regexp"
	"time"

	"github.com/noah-isme/terms-api/internal/models"
)

// descriptionPattern must consume the whole description: any leading or
// trailing characters, a misspelled season, or a year that is not exactly
// four digits leaves season and calendar year null.
var descriptionPattern = regexp.MustCompile(`^(Summer|Fall|Winter|Spring) (\d{4})$`)

// EnrichTerm derives season, calendar year, and lifecycle status for one raw
// term row, returning a new value and leaving the input untouched. today
// must already be truncated to a calendar date in the reference timezone.
func EnrichTerm(term models.Term, refCodes models.ReferenceCodes, today time.Time) models.EnrichedTerm {
	enriched := models.EnrichedTerm{Term: term}

	if match := descriptionPattern.FindStringSubmatch(term.Description); match != nil {
		season := models.Season(match[1])
		year := match[2]
		enriched.Season = &season
		enriched.CalendarYear = &year
	}

	status := make([]models.TermStatus, 0, 4)
	if term.TermCode == refCodes.CurrentTermCode {
		status = append(status, models.StatusCurrent)
	}
	if term.TermCode == refCodes.PostInterimTermCode {
		status = append(status, models.StatusPostInterim)
	}
	if term.TermCode == refCodes.PreInterimTermCode {
		status = append(status, models.StatusPreInterim)
	}

	switch {
	case withinDates(today, term.RegistrationStartDate, term.RegistrationEndDate):
		status = append(status, models.StatusOpen)
	case afterDate(today, term.RegistrationEndDate):
		status = append(status, models.StatusCompleted)
	default:
		status = append(status, models.StatusNotOpen)
	}

	enriched.Status = status
	return enriched
}

// dateOnly drops the time of day, pinning the calendar date to UTC so that
// comparisons are pure date arithmetic.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func withinDates(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !day.Before(dateOnly(*start)) && !day.After(dateOnly(*end))
}

func afterDate(day time.Time, end *time.Time) bool {
	return end != nil && day.After(dateOnly(*end))
}
