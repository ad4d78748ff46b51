package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/terms-api/internal/dto"
	appErrors "github.com/noah-isme/terms-api/pkg/errors"
	"github.com/noah-isme/terms-api/pkg/jsonapi"
)

type termService interface {
	List(ctx context.Context, query dto.ListTermsQuery) (*jsonapi.Document, error)
	GetByCode(ctx context.Context, termCode string) (*jsonapi.Document, error)
}

// TermHandler exposes the term resource endpoints.
type TermHandler struct {
	service termService
}

// NewTermHandler constructs a term handler.
func NewTermHandler(svc termService) *TermHandler {
	return &TermHandler{service: svc}
}

// List godoc
// @Summary List terms
// @Description List academic terms with filters and pagination
// @Tags Terms
// @Produce json
// @Param academicYear query string false "Filter by academic year"
// @Param calendarYear query string false "Filter by calendar year"
// @Param financialAidYear query string false "Filter by financial aid year"
// @Param date query string false "Term date range probe (YYYY-MM-DD)"
// @Param housingDate query string false "Housing date range probe (YYYY-MM-DD)"
// @Param registrationDate query string false "Registration date range probe (YYYY-MM-DD)"
// @Param status query []string false "Filter by term status"
// @Param page[size] query int false "Page size"
// @Param page[number] query int false "Page number"
// @Success 200 {object} jsonapi.Document
// @Router /terms [get]
func (h *TermHandler) List(c *gin.Context) {
	var query dto.ListTermsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		jsonapi.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	doc, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		jsonapi.Error(c, err)
		return
	}
	jsonapi.JSON(c, http.StatusOK, doc)
}

// GetByCode godoc
// @Summary Get term by term code
// @Tags Terms
// @Produce json
// @Param termCode path string true "Term code"
// @Success 200 {object} jsonapi.Document
// @Failure 404 {object} jsonapi.ErrorDocument
// @Router /terms/{termCode} [get]
func (h *TermHandler) GetByCode(c *gin.Context) {
	doc, err := h.service.GetByCode(c.Request.Context(), c.Param("termCode"))
	if err != nil {
		jsonapi.Error(c, err)
		return
	}
	jsonapi.JSON(c, http.StatusOK, doc)
}
