package handlers

import (
	"errors"
	"net/http"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PTHandler struct {
	ptService *services.PTService
}

func NewPTHandler(ptService *services.PTService) *PTHandler {
	return &PTHandler{ptService: ptService}
}

type SellPTRequest struct {
	MemberID      *uint           `json:"member_id"`
	ClientName    string          `json:"client_name"`
	CoachID       *uint           `json:"coach_id"`
	Sessions      int             `json:"sessions" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Paid          decimal.Decimal `json:"paid"`
	PaymentMethod string          `json:"payment_method"`
}

type ptSaleResponse struct {
	Package models.PTPackageResponse `json:"package"`
	Receipt *models.ReceiptResponse  `json:"receipt,omitempty"`
	Warning string                   `json:"warning,omitempty"`
}

// @Summary Sell PT Package
// @Description Creates a personal training package and issues its receipt
// @Tags PT
// @Accept json
// @Produce json
// @Param request body SellPTRequest true "New Package"
// @Success 201 {object} ptSaleResponse
// @Failure 400 {object} map[string]string
// @Router /pt-packages [post]
// @Security BearerAuth
func (h *PTHandler) Create(c *gin.Context) {
	var req SellPTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, receipt, err := h.ptService.Sell(c.Request.Context(), services.SellInput{
		MemberID:      req.MemberID,
		ClientName:    req.ClientName,
		CoachID:       req.CoachID,
		Sessions:      req.Sessions,
		Price:         req.Price,
		Paid:          req.Paid,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var pf *services.PartialFailure
		if errors.As(err, &pf) && pkg != nil {
			c.JSON(http.StatusCreated, ptSaleResponse{
				Package: pkg.ToResponse(),
				Warning: "receipt could not be generated, please reissue manually",
			})
			return
		}
		RespondError(c, err)
		return
	}

	resp := ptSaleResponse{Package: pkg.ToResponse()}
	if receipt != nil {
		r := receipt.ToResponse()
		resp.Receipt = &r
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Use PT Session
// @Description Consumes one session from the package
// @Tags PT
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.PTPackageResponse
// @Failure 422 {object} map[string]string
// @Router /pt-packages/{id}/use-session [post]
// @Security BearerAuth
func (h *PTHandler) UseSession(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	pkg, err := h.ptService.UseSession(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.ToResponse())
}

// @Summary List PT Packages
// @Tags PT
// @Produce json
// @Param page query int false "Page"
// @Param member_id query int false "Filter by member"
// @Success 200 {object} map[string]interface{}
// @Router /pt-packages [get]
// @Security BearerAuth
func (h *PTHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "member_id", "coach_id")

	packages, total, err := h.ptService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.PTPackageResponse, 0, len(packages))
	for i := range packages {
		responses = append(responses, packages[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"packages": responses,
		"total":    total,
		"page":     query.Page,
	})
}

// @Summary Get PT Package
// @Tags PT
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.PTPackageResponse
// @Router /pt-packages/{id} [get]
// @Security BearerAuth
func (h *PTHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	pkg, err := h.ptService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.ToResponse())
}

// @Summary Delete PT Package
// @Tags PT
// @Param id path int true "Package ID"
// @Success 200 {object} map[string]string
// @Router /pt-packages/{id} [delete]
// @Security BearerAuth
func (h *PTHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.ptService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
