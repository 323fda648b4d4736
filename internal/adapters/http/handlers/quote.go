package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/http/dto"
	"github.com/Jaimeman84/daily-quotes-app/internal/app"
	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID      string   `json:"id,omitempty"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags,omitempty"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:      q.ID,
		Content: q.Content,
		Author:  q.Author,
		Tags:    q.Tags,
	}
}

// toQuoteResponses converts a slice of domain Quotes.
func toQuoteResponses(quotes []domain.Quote) []*QuoteResponse {
	resp := make([]*QuoteResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, toQuoteResponse(&quotes[i]))
	}

	return resp
}

// GetRandomQuote handles GET /api/v1/quotes/random
// Returns a random quote from the quote source.
//
// @Summary Get a random quote
// @Description Fetches a random quote from the quote source
// @Tags quotes
// @Produce json
// @Success 200 {object} QuoteResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.Random(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// searchQuotesRequest carries the query parameters for a quote search.
type searchQuotesRequest struct {
	Term   string `form:"q"`
	Author string `form:"author"`
	dto.PaginationRequest
}

// SearchQuotes handles GET /api/v1/quotes/search
// Searches quotes by content term and/or author; the term is matched
// case-insensitively against quote content.
//
// @Summary Search quotes
// @Description Searches quotes by content term and/or author
// @Tags quotes
// @Produce json
// @Param q query string false "Content search term"
// @Param author query string false "Author name"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse[QuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes/search [get]
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	var req searchQuotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.HandleValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.HandleError(c, domain.NewValidationError("query", "malformed query parameters"))

		return
	}

	result, err := h.service.Search(c.Request.Context(), app.SearchParams{
		Term:     req.Term,
		Author:   req.Author,
		Page:     req.GetPage(),
		PageSize: req.GetLimit(),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(
		toQuoteResponses(result.Quotes),
		result.TotalCount,
		result.Page,
		result.TotalPages,
	))
}

// ListAuthors handles GET /api/v1/authors
// Returns the author names known to the quote source.
//
// @Summary List authors
// @Description Returns the author names known to the quote source
// @Tags quotes
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/authors [get]
func (h *QuoteHandler) ListAuthors(c *gin.Context) {
	authors, err := h.service.Authors(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if authors == nil {
		authors = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/search", h.SearchQuotes)

	rg.GET("/authors", h.ListAuthors)
}
