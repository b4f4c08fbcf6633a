package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestParseListQuery_Defaults(t *testing.T) {
	c, _ := testContext(t, "/members")

	query := ParseListQuery(c)

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)
	assert.Empty(t, query.Search)
}

func TestParseListQuery_WhitelistedFilters(t *testing.T) {
	c, _ := testContext(t, "/members?page=3&per_page=50&search=ali&status=frozen&role=coach")

	query := ParseListQuery(c, "status")

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 50, query.PerPage)
	assert.Equal(t, "ali", query.Search)
	assert.Equal(t, "frozen", query.Filters["status"])
	// role was not whitelisted for this endpoint
	assert.Empty(t, query.Filters["role"])
}

func TestParseListQuery_CapsPerPage(t *testing.T) {
	c, _ := testContext(t, "/members?per_page=500")

	query := ParseListQuery(c)

	assert.Equal(t, 20, query.PerPage)
}

func TestParamID(t *testing.T) {
	tests := []struct {
		name   string
		param  string
		wantID uint
		wantOK bool
	}{
		{"valid", "42", 42, true},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, false},
		{"not a number", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t, "/members/"+tt.param)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := ParamID(c)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", services.NewValidationError("amount", "must be positive"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized},
		{"no sessions", services.ErrNoSessionsLeft, http.StatusUnprocessableEntity},
		{"concurrency", services.ErrConcurrency, http.StatusConflict},
		{"invalid state", services.ErrInvalidState, http.StatusUnprocessableEntity},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t, "/")
			RespondError(c, tt.err)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRespondError_ConcurrencyIsMarkedRetryable(t *testing.T) {
	c, w := testContext(t, "/")
	RespondError(c, services.ErrConcurrency)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"retryable":true`)
}
