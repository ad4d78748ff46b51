package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/terms-api/internal/dto"
	"github.com/noah-isme/terms-api/internal/models"
	appErrors "github.com/noah-isme/terms-api/pkg/errors"
	"github.com/noah-isme/terms-api/pkg/jsonapi"
	"github.com/noah-isme/terms-api/pkg/paginator"
)

const (
	termResourceType   = "term"
	termResourcePath   = "terms"
	termNotFoundDetail = "A term with the specified term code was not found."
)

type termRepository interface {
	FetchAll(ctx context.Context) ([]models.Term, error)
	FetchByCode(ctx context.Context, termCode string) ([]models.Term, error)
	FetchReferenceCodes(ctx context.Context) (models.ReferenceCodes, error)
}

// TermService assembles term resource documents: it fetches the catalog,
// enriches each row, applies the query filter, paginates, and wraps the
// result in the JSON:API envelope.
type TermService struct {
	repo      termRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	baseURL   string
	location  *time.Location
	now       func() time.Time
}

// NewTermService creates a new term service instance. location names the
// timezone whose calendar date drives registration-window status.
func NewTermService(repo termRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, baseURL string, location *time.Location) *TermService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &TermService{
		repo:      repo,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		baseURL:   baseURL,
		location:  location,
		now:       time.Now,
	}
}

// List returns the term collection document for the given query.
func (s *TermService) List(ctx context.Context, query dto.ListTermsQuery) (*jsonapi.Document, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid terms query")
	}
	filter, err := query.Filter()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid terms query")
	}

	refCodes, terms, err := s.fetchCatalog(ctx, "terms_list", s.repo.FetchAll)
	if err != nil {
		return nil, err
	}

	today := s.today()
	enriched := make([]models.EnrichedTerm, 0, len(terms))
	for _, term := range terms {
		enriched = append(enriched, EnrichTerm(term, refCodes, today))
	}

	matched := compileFilter(filter).apply(enriched)
	page := paginator.Paginate(matched, paginator.Page{Size: filter.PageSize, Number: filter.PageNumber})

	return s.collectionDocument(query, page), nil
}

// GetByCode returns the document for a single term, ErrNotFound when the
// code is unknown, and ErrDataIntegrity when storage hands back more than
// one row for a code that is supposed to be unique.
func (s *TermService) GetByCode(ctx context.Context, termCode string) (*jsonapi.Document, error) {
	refCodes, rows, err := s.fetchCatalog(ctx, "terms_by_code", func(ctx context.Context) ([]models.Term, error) {
		return s.repo.FetchByCode(ctx, termCode)
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, termNotFoundDetail)
	}
	if len(rows) > 1 {
		s.logger.Error("duplicate rows for term code", zap.String("term_code", termCode), zap.Int("rows", len(rows)))
		return nil, appErrors.Clone(appErrors.ErrDataIntegrity, "Expect a single object but got multiple results.")
	}

	enriched := EnrichTerm(rows[0], refCodes, s.today())
	resource := s.termResource(jsonapi.ResourceURL(s.baseURL, termResourcePath), enriched)

	return &jsonapi.Document{
		Links: jsonapi.Links{"self": resource.Links["self"]},
		Data:  resource,
	}, nil
}

// fetchCatalog issues the reference-code and term-row queries concurrently;
// both must succeed before enrichment can start.
func (s *TermService) fetchCatalog(ctx context.Context, label string, fetch func(context.Context) ([]models.Term, error)) (models.ReferenceCodes, []models.Term, error) {
	var (
		refCodes models.ReferenceCodes
		terms    []models.Term
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		var err error
		refCodes, err = s.repo.FetchReferenceCodes(gctx)
		s.metrics.ObserveDBQuery("terms_reference_codes", time.Since(start))
		return err
	})
	g.Go(func() error {
		start := time.Now()
		var err error
		terms, err = fetch(gctx)
		s.metrics.ObserveDBQuery(label, time.Since(start))
		return err
	})

	if err := g.Wait(); err != nil {
		var typed *appErrors.Error
		if errors.As(err, &typed) {
			return models.ReferenceCodes{}, nil, typed
		}
		return models.ReferenceCodes{}, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load term catalog")
	}
	return refCodes, terms, nil
}

func (s *TermService) today() time.Time {
	return dateOnly(s.now().In(s.location))
}

func (s *TermService) collectionDocument(query dto.ListTermsQuery, page paginator.Result[models.EnrichedTerm]) *jsonapi.Document {
	resourceURL := jsonapi.ResourceURL(s.baseURL, termResourcePath)

	resources := make([]jsonapi.Resource, 0, len(page.Rows))
	for _, term := range page.Rows {
		resources = append(resources, s.termResource(resourceURL, term))
	}

	params := query.FilterParams()
	links := jsonapi.Links{"self": jsonapi.Link(jsonapi.ParamsLink(resourceURL, params))}
	meta := &jsonapi.Meta{TotalResults: page.TotalResults}

	if page.Paged {
		for name, link := range jsonapi.PaginationLinks(resourceURL, params, page.PageSize, page.PageNumber, page.TotalPages) {
			// The top-level self link keeps echoing the unpaginated query.
			if name == "self" {
				continue
			}
			links[name] = link
		}
		meta.PageSize = page.PageSize
		meta.PageNumber = page.PageNumber
		meta.TotalPages = page.TotalPages
	}

	return &jsonapi.Document{Links: links, Data: resources, Meta: meta}
}

func (s *TermService) termResource(resourceURL string, term models.EnrichedTerm) jsonapi.Resource {
	return jsonapi.Resource{
		Type:       termResourceType,
		ID:         term.TermCode,
		Attributes: dto.NewTermAttributes(term),
		Links:      jsonapi.Links{"self": jsonapi.Link(jsonapi.ResourcePathLink(resourceURL, term.TermCode))},
	}
}
