package handlers

import (
	"net/http"

	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
)

type VisitorHandler struct {
	visitorService *services.VisitorService
}

func NewVisitorHandler(visitorService *services.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

type VisitorRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// @Summary Log Visitor
// @Description Records a walk-in for follow-up
// @Tags Visitors
// @Accept json
// @Produce json
// @Param request body VisitorRequest true "Visitor"
// @Success 201 {object} models.Visitor
// @Router /visitors [post]
// @Security BearerAuth
func (h *VisitorHandler) Create(c *gin.Context) {
	var req VisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visitor, err := h.visitorService.Create(c.Request.Context(), req.Name, req.Phone, req.Note)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, visitor)
}

// @Summary List Visitors
// @Tags Visitors
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Search by name or phone"
// @Success 200 {object} map[string]interface{}
// @Router /visitors [get]
// @Security BearerAuth
func (h *VisitorHandler) List(c *gin.Context) {
	query := ParseListQuery(c)

	visitors, total, err := h.visitorService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visitors": visitors,
		"total":    total,
		"page":     query.Page,
	})
}

// @Summary Delete Visitor
// @Tags Visitors
// @Param id path int true "Visitor ID"
// @Success 200 {object} map[string]string
// @Router /visitors/{id} [delete]
// @Security BearerAuth
func (h *VisitorHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.visitorService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "visitor deleted"})
}
