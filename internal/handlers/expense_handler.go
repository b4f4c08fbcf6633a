package handlers

import (
	"net/http"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type ExpenseRequest struct {
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	StaffID     *uint           `json:"staff_id"`
	IsPaid      bool            `json:"is_paid"`
}

func (r ExpenseRequest) toInput() services.ExpenseInput {
	return services.ExpenseInput{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		StaffID:     r.StaffID,
		IsPaid:      r.IsPaid,
	}
}

// @Summary Create Expense
// @Description Records a gym expense or staff loan
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense"
// @Success 201 {object} models.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /expenses [post]
// @Security BearerAuth
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense.ToResponse())
}

// @Summary Update Expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense"
// @Success 200 {object} models.ExpenseResponse
// @Router /expenses/{id} [put]
// @Security BearerAuth
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense.ToResponse())
}

// @Summary List Expenses
// @Tags Expenses
// @Produce json
// @Param page query int false "Page"
// @Param type query string false "Filter by type"
// @Success 200 {object} map[string]interface{}
// @Router /expenses [get]
// @Security BearerAuth
func (h *ExpenseHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "type", "staff_id")

	expenses, total, err := h.expenseService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, expenses[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": responses,
		"total":    total,
		"page":     query.Page,
	})
}

// @Summary Get Expense
// @Tags Expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} models.ExpenseResponse
// @Router /expenses/{id} [get]
// @Security BearerAuth
func (h *ExpenseHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense.ToResponse())
}

// @Summary Mark Staff Loan Paid
// @Description Marks a staff loan as settled
// @Tags Expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} models.ExpenseResponse
// @Router /expenses/{id}/mark-paid [post]
// @Security BearerAuth
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense.ToResponse())
}

// @Summary Delete Expense
// @Tags Expenses
// @Param id path int true "Expense ID"
// @Success 200 {object} map[string]string
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
