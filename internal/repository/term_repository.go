package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/terms-api/internal/models"
	appErrors "github.com/noah-isme/terms-api/pkg/errors"
)

const termColumns = `term_code, description, academic_year, financial_aid_year,
	start_date, end_date, housing_start_date, housing_end_date,
	registration_start_date, registration_end_date`

// TermRepository reads the academic term catalog.
type TermRepository struct {
	db *sqlx.DB
}

// NewTermRepository instantiates a term repository.
func NewTermRepository(db *sqlx.DB) *TermRepository {
	return &TermRepository{db: db}
}

// FetchAll returns every term ordered by term code, the catalog's canonical
// chronological order.
func (r *TermRepository) FetchAll(ctx context.Context) ([]models.Term, error) {
	query := fmt.Sprintf("SELECT %s FROM terms ORDER BY term_code ASC", termColumns)

	var terms []models.Term
	if err := r.db.SelectContext(ctx, &terms, query); err != nil {
		return nil, fmt.Errorf("fetch terms: %w", err)
	}
	return terms, nil
}

// FetchByCode returns the rows carrying the given term code. The table
// constrains term_code to be unique, so more than one row is a data
// integrity violation the caller must refuse to serve.
func (r *TermRepository) FetchByCode(ctx context.Context, termCode string) ([]models.Term, error) {
	query := fmt.Sprintf("SELECT %s FROM terms WHERE term_code = $1", termColumns)

	var terms []models.Term
	if err := r.db.SelectContext(ctx, &terms, query, termCode); err != nil {
		return nil, fmt.Errorf("fetch term by code: %w", err)
	}
	return terms, nil
}

type refCodesRow struct {
	PostInterimTermCode sql.NullString `db:"post_interim_term_code"`
	PreInterimTermCode  sql.NullString `db:"pre_interim_term_code"`
}

// FetchReferenceCodes resolves the post-interim and pre-interim term codes
// relative to the database's current date. Term codes sort chronologically,
// so the smallest not-yet-ended code is the current-or-next term, and the
// largest already-started code is the current-or-previous term. Outside a
// break both picks land on the same term, which is then also the current
// one.
func (r *TermRepository) FetchReferenceCodes(ctx context.Context) (models.ReferenceCodes, error) {
	const query = `SELECT
		MIN(term_code) FILTER (WHERE end_date >= CURRENT_DATE) AS post_interim_term_code,
		MAX(term_code) FILTER (WHERE start_date <= CURRENT_DATE) AS pre_interim_term_code
	FROM terms`

	var rows []refCodesRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return models.ReferenceCodes{}, fmt.Errorf("fetch reference term codes: %w", err)
	}

	if len(rows) == 0 {
		return models.ReferenceCodes{}, appErrors.Clone(appErrors.ErrDataIntegrity,
			"Expect a single object but got empty results.")
	}
	if len(rows) > 1 {
		return models.ReferenceCodes{}, appErrors.Clone(appErrors.ErrDataIntegrity,
			"Expect a single object but got multiple results.")
	}

	row := rows[0]
	if !row.PostInterimTermCode.Valid || !row.PreInterimTermCode.Valid {
		return models.ReferenceCodes{}, appErrors.Clone(appErrors.ErrDataIntegrity,
			"Result doesn't contain term code.")
	}

	codes := models.ReferenceCodes{
		PostInterimTermCode: row.PostInterimTermCode.String,
		PreInterimTermCode:  row.PreInterimTermCode.String,
	}
	if codes.PostInterimTermCode == codes.PreInterimTermCode {
		codes.CurrentTermCode = codes.PostInterimTermCode
	}
	return codes, nil
}
