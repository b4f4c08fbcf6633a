package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ParseListQuery builds a repository ListQuery from common query
// parameters: page, per_page, search, sort_by, sort_dir plus any
// whitelisted filter keys.
func ParseListQuery(c *gin.Context, filterKeys ...string) *repository.ListQuery {
	query := repository.NewListQuery()

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		query.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil && perPage > 0 && perPage <= 100 {
		query.PerPage = perPage
	}

	query.Search = c.Query("search")
	query.SortBy = c.Query("sort_by")
	query.SortDir = c.Query("sort_dir")

	for _, key := range filterKeys {
		if v := c.Query(key); v != "" {
			query.Filters[key] = v
		}
	}

	return query
}

// ParamID parses the :id path parameter; responds 400 and returns false
// when it is not a positive integer
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ParseDate parses a YYYY-MM-DD date in the given location
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// ParseDateTime parses either a date or a date-time query value in the
// given location
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, loc)
}

// RespondError maps service errors to HTTP responses
func RespondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoSessionsLeft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConcurrency):
		// retryable: the client repeats the full request
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
