package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/terms-api/internal/models"
)

// rangeField selects which date pair on a term a range probe is tested
// against.
type rangeField int

const (
	rangeTermDates rangeField = iota
	rangeHousingDates
	rangeRegistrationDates
)

func (f rangeField) bounds(term models.Term) (start, end *time.Time) {
	switch f {
	case rangeTermDates:
		return term.StartDate, term.EndDate
	case rangeHousingDates:
		return term.HousingStartDate, term.HousingEndDate
	case rangeRegistrationDates:
		return term.RegistrationStartDate, term.RegistrationEndDate
	}
	// Only the three variants above exist; anything else is a bug in the
	// filter compiler, not bad input.
	panic(fmt.Sprintf("terms: unrecognized range field %d", f))
}

type rangeProbe struct {
	field rangeField
	date  time.Time
}

// compiledFilter is a TermFilter with its range probes resolved once, so the
// per-term match needs no per-field dispatch.
type compiledFilter struct {
	filter models.TermFilter
	probes []rangeProbe
}

func compileFilter(filter models.TermFilter) compiledFilter {
	compiled := compiledFilter{filter: filter}
	addProbe := func(field rangeField, date *time.Time) {
		if date != nil {
			compiled.probes = append(compiled.probes, rangeProbe{field: field, date: dateOnly(*date)})
		}
	}
	addProbe(rangeTermDates, filter.Date)
	addProbe(rangeHousingDates, filter.HousingDate)
	addProbe(rangeRegistrationDates, filter.RegistrationDate)
	return compiled
}

// matches reports whether the enriched term survives the filter. Every
// specified field is an independent exclusion condition; unspecified fields
// pass vacuously.
func (f compiledFilter) matches(term models.EnrichedTerm) bool {
	academicYearMismatch := exactMismatch(f.filter.AcademicYear, term.AcademicYear)
	calendarYearMismatch := exactMismatch(f.filter.CalendarYear, stringValue(term.CalendarYear))
	aidYearMismatch := exactMismatch(f.filter.FinancialAidYear, term.FinancialAidYear)
	outsideRange := f.outsideRanges(term.Term)
	statusMiss := f.missingStatus(term)

	return !academicYearMismatch && !calendarYearMismatch && !aidYearMismatch &&
		!outsideRange && !statusMiss
}

// apply runs the predicate over the candidate set, returning the retained
// terms in their original order.
func (f compiledFilter) apply(terms []models.EnrichedTerm) []models.EnrichedTerm {
	matched := make([]models.EnrichedTerm, 0, len(terms))
	for _, term := range terms {
		if f.matches(term) {
			matched = append(matched, term)
		}
	}
	return matched
}

func exactMismatch(wanted, actual string) bool {
	return wanted != "" && actual != wanted
}

// outsideRanges reports whether any requested probe date falls outside the
// corresponding date pair. A pair with a missing bound never contains a
// probe.
func (f compiledFilter) outsideRanges(term models.Term) bool {
	for _, probe := range f.probes {
		start, end := probe.field.bounds(term)
		if !withinDates(probe.date, start, end) {
			return true
		}
	}
	return false
}

// missingStatus reports whether a status filter was given and none of the
// requested tags are present on the term.
func (f compiledFilter) missingStatus(term models.EnrichedTerm) bool {
	if len(f.filter.Statuses) == 0 {
		return false
	}
	for _, wanted := range f.filter.Statuses {
		if term.HasStatus(wanted) {
			return false
		}
	}
	return true
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
