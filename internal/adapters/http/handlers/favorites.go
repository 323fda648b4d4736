package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/http/dto"
	"github.com/Jaimeman84/daily-quotes-app/internal/app"
	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
)

// FavoritesHandler handles favorite-quote HTTP endpoints.
type FavoritesHandler struct {
	service *app.FavoritesService
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(service *app.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
	}
}

// SaveFavoriteRequest is the request body for saving a favorite.
type SaveFavoriteRequest struct {
	Content  string `json:"content" validate:"required,notempty"`
	Author   string `json:"author"  validate:"required,notempty"`
	SourceID string `json:"sourceId"`
}

// SavedQuoteResponse is the HTTP response structure for a saved quote.
type SavedQuoteResponse struct {
	Content  string    `json:"content"`
	Author   string    `json:"author"`
	SourceID string    `json:"sourceId,omitempty"`
	SavedAt  time.Time `json:"savedAt"`
}

// toSavedQuoteResponses converts domain SavedQuotes to the HTTP shape.
func toSavedQuoteResponses(saved []domain.SavedQuote) []*SavedQuoteResponse {
	resp := make([]*SavedQuoteResponse, 0, len(saved))
	for i := range saved {
		resp = append(resp, &SavedQuoteResponse{
			Content:  saved[i].Content,
			Author:   saved[i].Author,
			SourceID: saved[i].SourceID,
			SavedAt:  saved[i].SavedAt,
		})
	}

	return resp
}

// ListFavorites handles GET /api/v1/favorites
// Returns all saved quotes in the order they were saved.
//
// @Summary List saved quotes
// @Description Returns all saved quotes in insertion order
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string][]SavedQuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	saved, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      toSavedQuoteResponses(saved),
		"totalCount": len(saved),
	})
}

// SaveFavorite handles POST /api/v1/favorites
// Saves a quote to the favorites store. Saving a quote that is already
// stored returns 409 Conflict and leaves the store unchanged.
//
// @Summary Save a quote
// @Description Saves a quote to the local favorites store
// @Tags favorites
// @Accept json
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *FavoritesHandler) SaveFavorite(c *gin.Context) {
	var req SaveFavoriteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.HandleValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.HandleError(c, domain.NewValidationError("body", "malformed request body"))

		return
	}

	alreadySaved, err := h.service.Save(c.Request.Context(), &domain.Quote{
		ID:      req.SourceID,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if alreadySaved {
		dto.HandleError(c, domain.NewConflictError("favorite", "already saved"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "saved"})
}

// RegisterFavoriteRoutes registers favorites routes on the given router group.
func (h *FavoritesHandler) RegisterFavoriteRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.POST("", h.SaveFavorite)
}
