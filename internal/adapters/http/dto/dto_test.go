package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	return c, w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) *ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return &resp
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("quote", "q-1"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("favorite", "already saved"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("content", "cannot be empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "source unavailable",
			err:        domain.NewUnavailableError("quotable", "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "bad upstream response",
			err:        domain.NewBadResponseError("quotable", "missing content"),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeBadResponse,
		},
		{
			name:       "storage failure",
			err:        domain.NewStorageError("append", "quotes.csv", "disk full"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainError_NilError(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapDomainError_ValidationIncludesFieldDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("author", "cannot be empty"))

	assert.Equal(t, map[string]string{"author": "cannot be empty"}, resp.Error.Details)
}

func TestMapDomainError_StorageHidesPath(t *testing.T) {
	_, resp := MapDomainError(domain.NewStorageError("read", "/var/data/quotes.csv", "permission denied"))

	assert.NotContains(t, resp.Error.Message, "/var/data/quotes.csv")
}

func TestMapDomainError_UnavailableHidesUpstreamURL(t *testing.T) {
	// the transport failure reason includes the full request URL
	reason := `Get "https://api.quotable.io/random": dial tcp: connection refused`

	_, resp := MapDomainError(domain.NewUnavailableError("quotable", reason))

	assert.NotContains(t, resp.Error.Message, "api.quotable.io")
	assert.Equal(t, "the quote source is unreachable", resp.Error.Message)
}

func TestMapDomainError_BadResponseHidesUpstreamDetail(t *testing.T) {
	_, resp := MapDomainError(domain.NewBadResponseError("quotable", "decoding https://api.quotable.io/quotes: unexpected EOF"))

	assert.NotContains(t, resp.Error.Message, "api.quotable.io")
}

func TestHandleError_WritesEnvelope(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, domain.NewUnavailableError("quotable", "timeout"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decodeErrorResponse(t, w)
	assert.Equal(t, ErrorCodeUnavailable, resp.Error.Code)
	assert.Equal(t, "the quote source is unreachable", resp.Error.Message)
}

func TestHandleValidationErrors(t *testing.T) {
	c, w := newTestContext(t)

	HandleValidationErrors(c, map[string]string{"content": "this field is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeErrorResponse(t, w)
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, "this field is required", resp.Error.Details["content"])
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeBadResponse, http.StatusBadGateway},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestPaginationRequest_Defaults(t *testing.T) {
	p := PaginationRequest{}

	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, DefaultLimit, p.GetLimit())
}

func TestPaginationRequest_ClampsLimit(t *testing.T) {
	p := PaginationRequest{Page: 3, Limit: 500}

	assert.Equal(t, 3, p.GetPage())
	assert.Equal(t, MaxLimit, p.GetLimit())
}

func TestNewPaginatedResponse_NilItemsBecomeEmptyArray(t *testing.T) {
	resp := NewPaginatedResponse[string](nil, 0, 1, 1)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`)
}

func TestValidate_NotEmptyTag(t *testing.T) {
	type form struct {
		Content string `json:"content" validate:"notempty"`
	}

	assert.NoError(t, Validate(form{Content: "hello"}))

	err := Validate(form{Content: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	fields := ValidationErrors(err)
	assert.Equal(t, "must not be empty", fields["content"])
}

func TestBindQueryAndValidate(t *testing.T) {
	type query struct {
		Page int `form:"page" validate:"omitempty,gte=1"`
	}

	c, _ := newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=2", nil)

	var q query
	require.NoError(t, BindQueryAndValidate(c, &q))
	assert.Equal(t, 2, q.Page)

	c2, _ := newTestContext(t)
	c2.Request = httptest.NewRequest(http.MethodGet, "/?page=-1", nil)

	var q2 query
	err := BindQueryAndValidate(c2, &q2)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
