package models

import "time"

// Season is the part of the calendar year a term runs in, parsed from the
// term description.
type Season string

const (
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
)

// TermStatus is a lifecycle tag attached to a term during enrichment.
type TermStatus string

const (
	StatusCurrent     TermStatus = "current"
	StatusPostInterim TermStatus = "post-interim"
	StatusPreInterim  TermStatus = "pre-interim"
	StatusOpen        TermStatus = "open"
	StatusCompleted   TermStatus = "completed"
	StatusNotOpen     TermStatus = "not-open"
)

// Statuses lists every recognized status tag.
var Statuses = []TermStatus{
	StatusCurrent,
	StatusPostInterim,
	StatusPreInterim,
	StatusOpen,
	StatusCompleted,
	StatusNotOpen,
}

// Term is one raw academic term row as returned by storage. Date pairs are
// nullable; institutional data frequently lacks housing or registration
// windows for historical terms.
type Term struct {
	TermCode              string     `db:"term_code"`
	Description           string     `db:"description"`
	AcademicYear          string     `db:"academic_year"`
	FinancialAidYear      string     `db:"financial_aid_year"`
	StartDate             *time.Time `db:"start_date"`
	EndDate               *time.Time `db:"end_date"`
	HousingStartDate      *time.Time `db:"housing_start_date"`
	HousingEndDate        *time.Time `db:"housing_end_date"`
	RegistrationStartDate *time.Time `db:"registration_start_date"`
	RegistrationEndDate   *time.Time `db:"registration_end_date"`
}

// EnrichedTerm is a Term plus the derived attributes computed per request.
// Season and CalendarYear are nil when the description does not match the
// "<Season> <YYYY>" pattern exactly.
type EnrichedTerm struct {
	Term
	Season       *Season
	CalendarYear *string
	Status       []TermStatus
}

// HasStatus reports whether the enriched term carries the given tag.
func (t EnrichedTerm) HasStatus(status TermStatus) bool {
	for _, s := range t.Status {
		if s == status {
			return true
		}
	}
	return false
}

// ReferenceCodes are the per-request reference term codes the status
// calculator compares against. Outside an interim break all three are the
// same code; during a break CurrentTermCode is empty and the post/pre pair
// points at the terms on either side of it.
type ReferenceCodes struct {
	CurrentTermCode     string
	PostInterimTermCode string
	PreInterimTermCode  string
}

// TermFilter captures the parsed list-endpoint query. Zero values impose no
// constraint; date probes are nil when the parameter was absent.
type TermFilter struct {
	AcademicYear     string
	CalendarYear     string
	FinancialAidYear string
	Date             *time.Time
	HousingDate      *time.Time
	RegistrationDate *time.Time
	Statuses         []TermStatus
	PageSize         int
	PageNumber       int
}
