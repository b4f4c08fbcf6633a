package handlers

import (
	"net/http"

	"github.com/fitcore/fitcore-api/internal/middleware"
	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler exposes the receipt ledger. Receipts are only created
// through the issuing endpoints (members, PT, day passes), never here.
type ReceiptHandler struct {
	ledgerService *services.LedgerService
}

func NewReceiptHandler(ledgerService *services.LedgerService) *ReceiptHandler {
	return &ReceiptHandler{ledgerService: ledgerService}
}

// @Summary List Receipts
// @Tags Receipts
// @Produce json
// @Param page query int false "Page"
// @Param type query string false "Filter by receipt type"
// @Param payment_method query string false "Filter by payment method"
// @Param member_id query int false "Filter by member"
// @Success 200 {object} map[string]interface{}
// @Router /receipts [get]
// @Security BearerAuth
func (h *ReceiptHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "type", "payment_method", "member_id")

	receipts, total, err := h.ledgerService.ListReceipts(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		responses = append(responses, receipts[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"receipts": responses,
		"total":    total,
		"page":     query.Page,
	})
}

// @Summary Get Receipt
// @Tags Receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} models.ReceiptResponse
// @Router /receipts/{id} [get]
// @Security BearerAuth
func (h *ReceiptHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	receipt, err := h.ledgerService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt.ToResponse())
}

// @Summary Next Receipt Number
// @Description Shows the number the next receipt will carry. Advisory
// @Description only, issuing in between can consume it
// @Tags Receipts
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /receipts/next-number [get]
// @Security BearerAuth
func (h *ReceiptHandler) NextNumber(c *gin.Context) {
	next, err := h.ledgerService.PeekNext(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"next_number": next})
}

type ResetCounterRequest struct {
	NewStart int64 `json:"new_start" binding:"required"`
}

// @Summary Reset Receipt Counter
// @Description Points the counter at a new starting number. Admin only
// @Tags Receipts
// @Accept json
// @Produce json
// @Param request body ResetCounterRequest true "New Start"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /receipts/reset-counter [put]
// @Security BearerAuth
func (h *ReceiptHandler) ResetCounter(c *gin.Context) {
	var req ResetCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)

	current, err := h.ledgerService.ResetCounter(c.Request.Context(), userID, req.NewStart)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"next_number": current})
}
