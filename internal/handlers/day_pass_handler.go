package handlers

import (
	"errors"
	"net/http"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DayPassHandler struct {
	dayPassService *services.DayPassService
}

func NewDayPassHandler(dayPassService *services.DayPassService) *DayPassHandler {
	return &DayPassHandler{dayPassService: dayPassService}
}

type DayPassRequest struct {
	Kind          string          `json:"kind" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

type dayPassResponse struct {
	Pass    models.DayPassResponse  `json:"pass"`
	Receipt *models.ReceiptResponse `json:"receipt,omitempty"`
	Warning string                  `json:"warning,omitempty"`
}

// @Summary Record Day Entry
// @Description Records a day-use or InBody visit and issues its receipt
// @Tags DayPasses
// @Accept json
// @Produce json
// @Param request body DayPassRequest true "Entry"
// @Success 201 {object} dayPassResponse
// @Failure 400 {object} map[string]string
// @Router /day-passes [post]
// @Security BearerAuth
func (h *DayPassHandler) Create(c *gin.Context) {
	var req DayPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pass, receipt, err := h.dayPassService.Enter(c.Request.Context(), services.EntryInput{
		Kind:          req.Kind,
		Name:          req.Name,
		Phone:         req.Phone,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var pf *services.PartialFailure
		if errors.As(err, &pf) && pass != nil {
			c.JSON(http.StatusCreated, dayPassResponse{
				Pass:    pass.ToResponse(),
				Warning: "receipt could not be generated, please reissue manually",
			})
			return
		}
		RespondError(c, err)
		return
	}

	resp := dayPassResponse{Pass: pass.ToResponse()}
	if receipt != nil {
		r := receipt.ToResponse()
		resp.Receipt = &r
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List Day Entries
// @Tags DayPasses
// @Produce json
// @Param page query int false "Page"
// @Param kind query string false "Filter by kind"
// @Success 200 {object} map[string]interface{}
// @Router /day-passes [get]
// @Security BearerAuth
func (h *DayPassHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "kind")

	passes, total, err := h.dayPassService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.DayPassResponse, 0, len(passes))
	for i := range passes {
		responses = append(responses, passes[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"passes": responses,
		"total":  total,
		"page":   query.Page,
	})
}

// @Summary Get Day Entry
// @Tags DayPasses
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} models.DayPassResponse
// @Router /day-passes/{id} [get]
// @Security BearerAuth
func (h *DayPassHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	pass, err := h.dayPassService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pass.ToResponse())
}

// @Summary Delete Day Entry
// @Tags DayPasses
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Router /day-passes/{id} [delete]
// @Security BearerAuth
func (h *DayPassHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.dayPassService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
