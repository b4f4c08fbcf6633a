package handlers

import (
	"net/http"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

type StaffRequest struct {
	Name   string          `json:"name" binding:"required"`
	Role   string          `json:"role"`
	Phone  string          `json:"phone"`
	Salary decimal.Decimal `json:"salary"`
}

func (r StaffRequest) toInput() services.StaffInput {
	return services.StaffInput{
		Name:   r.Name,
		Role:   r.Role,
		Phone:  r.Phone,
		Salary: r.Salary,
	}
}

// @Summary Create Staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body StaffRequest true "Staff"
// @Success 201 {object} models.StaffResponse
// @Router /staff [post]
// @Security BearerAuth
func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.staffService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staff.ToResponse())
}

// @Summary Update Staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body StaffRequest true "Staff"
// @Success 200 {object} models.StaffResponse
// @Router /staff/{id} [put]
// @Security BearerAuth
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.staffService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff.ToResponse())
}

// @Summary List Staff
// @Tags Staff
// @Produce json
// @Param page query int false "Page"
// @Success 200 {object} map[string]interface{}
// @Router /staff [get]
// @Security BearerAuth
func (h *StaffHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "role")

	staff, total, err := h.staffService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.StaffResponse, 0, len(staff))
	for i := range staff {
		responses = append(responses, staff[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": responses,
		"total": total,
		"page":  query.Page,
	})
}

// @Summary Get Staff
// @Tags Staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} models.StaffResponse
// @Router /staff/{id} [get]
// @Security BearerAuth
func (h *StaffHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	staff, err := h.staffService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff.ToResponse())
}

// @Summary Delete Staff
// @Tags Staff
// @Param id path int true "Staff ID"
// @Success 200 {object} map[string]string
// @Router /staff/{id} [delete]
// @Security BearerAuth
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "staff deleted"})
}
