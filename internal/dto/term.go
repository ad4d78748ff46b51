package dto

import (
	"net/url"
	"time"

	"github.com/noah-isme/terms-api/internal/models"
)

const dateLayout = "2006-01-02"

// ListTermsQuery binds the supported /terms query parameters. Date values
// stay strings at this layer; the service validates the format and parses
// them into the typed filter.
type ListTermsQuery struct {
	AcademicYear     string   `form:"academicYear"`
	CalendarYear     string   `form:"calendarYear"`
	FinancialAidYear string   `form:"financialAidYear"`
	Date             string   `form:"date" validate:"omitempty,datetime=2006-01-02"`
	HousingDate      string   `form:"housingDate" validate:"omitempty,datetime=2006-01-02"`
	RegistrationDate string   `form:"registrationDate" validate:"omitempty,datetime=2006-01-02"`
	Status           []string `form:"status" validate:"omitempty,dive,oneof=current post-interim pre-interim open completed not-open"`
	PageSize         int      `form:"page[size]" validate:"omitempty,min=1"`
	PageNumber       int      `form:"page[number]" validate:"omitempty,min=1"`
}

// Filter converts the validated query into the typed term filter.
func (q ListTermsQuery) Filter() (models.TermFilter, error) {
	filter := models.TermFilter{
		AcademicYear:     q.AcademicYear,
		CalendarYear:     q.CalendarYear,
		FinancialAidYear: q.FinancialAidYear,
		PageSize:         q.PageSize,
		PageNumber:       q.PageNumber,
	}

	var err error
	if filter.Date, err = parseDate(q.Date); err != nil {
		return filter, err
	}
	if filter.HousingDate, err = parseDate(q.HousingDate); err != nil {
		return filter, err
	}
	if filter.RegistrationDate, err = parseDate(q.RegistrationDate); err != nil {
		return filter, err
	}

	for _, s := range q.Status {
		filter.Statuses = append(filter.Statuses, models.TermStatus(s))
	}
	return filter, nil
}

// FilterParams returns the non-pagination parameters that were actually
// supplied, for echoing into the top-level self link.
func (q ListTermsQuery) FilterParams() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("academicYear", q.AcademicYear)
	set("calendarYear", q.CalendarYear)
	set("financialAidYear", q.FinancialAidYear)
	set("date", q.Date)
	set("housingDate", q.HousingDate)
	set("registrationDate", q.RegistrationDate)
	for _, s := range q.Status {
		params.Add("status", s)
	}
	return params
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// TermAttributes is the attribute block of a term resource object. Dates
// render as calendar dates; derived fields are null when not computable.
type TermAttributes struct {
	Description           string              `json:"description"`
	AcademicYear          string              `json:"academicYear"`
	FinancialAidYear      string              `json:"financialAidYear"`
	StartDate             *string             `json:"startDate"`
	EndDate               *string             `json:"endDate"`
	HousingStartDate      *string             `json:"housingStartDate"`
	HousingEndDate        *string             `json:"housingEndDate"`
	RegistrationStartDate *string             `json:"registrationStartDate"`
	RegistrationEndDate   *string             `json:"registrationEndDate"`
	CalendarYear          *string             `json:"calendarYear"`
	Season                *string             `json:"season"`
	Status                []models.TermStatus `json:"status"`
}

// NewTermAttributes projects an enriched term into its resource attributes.
func NewTermAttributes(term models.EnrichedTerm) TermAttributes {
	attrs := TermAttributes{
		Description:           term.Description,
		AcademicYear:          term.AcademicYear,
		FinancialAidYear:      term.FinancialAidYear,
		StartDate:             formatDate(term.StartDate),
		EndDate:               formatDate(term.EndDate),
		HousingStartDate:      formatDate(term.HousingStartDate),
		HousingEndDate:        formatDate(term.HousingEndDate),
		RegistrationStartDate: formatDate(term.RegistrationStartDate),
		RegistrationEndDate:   formatDate(term.RegistrationEndDate),
		CalendarYear:          term.CalendarYear,
		Status:                term.Status,
	}
	if term.Season != nil {
		season := string(*term.Season)
		attrs.Season = &season
	}
	return attrs
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
