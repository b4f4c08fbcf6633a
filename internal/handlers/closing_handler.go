package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ClosingHandler serves the daily financial rollup and its exports.
type ClosingHandler struct {
	closingService *services.ClosingService
	exportService  *services.ExportService
}

func NewClosingHandler(closingService *services.ClosingService, exportService *services.ExportService) *ClosingHandler {
	return &ClosingHandler{closingService: closingService, exportService: exportService}
}

// resolveWindow turns the range query parameters into an inclusive
// [from, to] window in the report timezone. range=last7 and range=month
// are shortcuts; range=custom reads from and to. A bare date for "to"
// extends to the end of that day.
func (h *ClosingHandler) resolveWindow(c *gin.Context) (time.Time, time.Time, error) {
	loc := h.closingService.Location()
	now := time.Now().In(loc)

	switch c.DefaultQuery("range", "last7") {
	case "last7":
		from, to := h.closingService.LastSevenDays(now)
		return from, to, nil
	case "month":
		from, to := h.closingService.CurrentMonth(now)
		return from, to, nil
	case "custom":
		from, err := ParseDateTime(c.Query("from"), loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from must be YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS")
		}
		to, err := ParseDateTime(c.Query("to"), loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to must be YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS")
		}
		if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
			to = to.Add(24*time.Hour - time.Second)
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("range must be last7, month or custom")
	}
}

// @Summary Closing Report
// @Description Per-day revenue, payment method and expense rollup
// @Tags Closing
// @Produce json
// @Param range query string false "last7, month or custom" default(last7)
// @Param from query string false "Window start (custom range)"
// @Param to query string false "Window end (custom range)"
// @Success 200 {object} models.ClosingReport
// @Failure 400 {object} map[string]string
// @Router /closing [get]
// @Security BearerAuth
func (h *ClosingHandler) Report(c *gin.Context) {
	from, to, err := h.resolveWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.closingService.Report(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Export Closing Report
// @Description Downloads the rollup as CSV, XLSX or PDF
// @Tags Closing
// @Produce application/octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param range query string false "last7, month or custom" default(last7)
// @Param from query string false "Window start (custom range)"
// @Param to query string false "Window end (custom range)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /closing/export [get]
// @Security BearerAuth
func (h *ClosingHandler) Export(c *gin.Context) {
	from, to, err := h.resolveWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.closingService.Report(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, err)
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
	)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err = h.exportService.ExportCSV(c.Request.Context(), report)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.exportService.ExportXLSX(c.Request.Context(), report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, filename, err = h.exportService.ExportPDF(c.Request.Context(), report)
		contentType = "application/pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, xlsx or pdf"})
		return
	}
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
