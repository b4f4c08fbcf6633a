package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MemberHandler struct {
	memberService *services.MemberService
	loc           *time.Location
}

func NewMemberHandler(memberService *services.MemberService, loc *time.Location) *MemberHandler {
	return &MemberHandler{memberService: memberService, loc: loc}
}

type SignupRequest struct {
	MemberNumber      int64           `json:"member_number"`
	Name              string          `json:"name" binding:"required"`
	Phone             string          `json:"phone"`
	SubscriptionStart string          `json:"subscription_start" binding:"required"`
	SubscriptionEnd   string          `json:"subscription_end" binding:"required"`
	Price             decimal.Decimal `json:"price"`
	Paid              decimal.Decimal `json:"paid"`
	PaymentMethod     string          `json:"payment_method"`
	Notes             *string         `json:"notes"`
}

// signupResponse wraps the member and its receipt; warning is set when
// the member was saved but the receipt could not be issued
type signupResponse struct {
	Member  models.MemberResponse   `json:"member"`
	Receipt *models.ReceiptResponse `json:"receipt,omitempty"`
	Warning string                  `json:"warning,omitempty"`
}

// @Summary Member Signup
// @Description Creates a member and issues the signup receipt
// @Tags Members
// @Accept json
// @Produce json
// @Param request body SignupRequest true "New Member"
// @Success 201 {object} signupResponse
// @Failure 400 {object} map[string]string
// @Router /members [post]
// @Security BearerAuth
func (h *MemberHandler) Create(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := ParseDate(req.SubscriptionStart, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscription_start must be YYYY-MM-DD"})
		return
	}
	end, err := ParseDate(req.SubscriptionEnd, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscription_end must be YYYY-MM-DD"})
		return
	}

	member, receipt, err := h.memberService.Signup(c.Request.Context(), services.SignupInput{
		MemberNumber:      req.MemberNumber,
		Name:              req.Name,
		Phone:             req.Phone,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
		Price:             req.Price,
		Paid:              req.Paid,
		PaymentMethod:     req.PaymentMethod,
		Notes:             req.Notes,
	})
	respondWithReceipt(c, member, receipt, err)
}

type RenewRequest struct {
	NewEnd        string          `json:"new_end" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Paid          decimal.Decimal `json:"paid"`
	PaymentMethod string          `json:"payment_method"`
}

// @Summary Renew Membership
// @Description Extends the subscription window and issues a renewal receipt
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body RenewRequest true "Renewal"
// @Success 200 {object} signupResponse
// @Router /members/{id}/renew [post]
// @Security BearerAuth
func (h *MemberHandler) Renew(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newEnd, err := ParseDate(req.NewEnd, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_end must be YYYY-MM-DD"})
		return
	}

	member, receipt, err := h.memberService.Renew(c.Request.Context(), id, services.RenewInput{
		NewEnd:        newEnd,
		Price:         req.Price,
		Paid:          req.Paid,
		PaymentMethod: req.PaymentMethod,
	})
	respondWithReceipt(c, member, receipt, err)
}

type MemberPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
	Note          string          `json:"note"`
}

// @Summary Record Member Payment
// @Description Applies a payment against the remaining balance and issues a receipt
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body MemberPaymentRequest true "Payment"
// @Success 200 {object} signupResponse
// @Router /members/{id}/payments [post]
// @Security BearerAuth
func (h *MemberHandler) RecordPayment(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	var req MemberPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, receipt, err := h.memberService.RecordPayment(c.Request.Context(), id, req.Amount, req.PaymentMethod, req.Note)
	respondWithReceipt(c, member, receipt, err)
}

// @Summary List Members
// @Tags Members
// @Produce json
// @Param page query int false "Page"
// @Param search query string false "Search by name, phone or number"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Router /members [get]
// @Security BearerAuth
func (h *MemberHandler) List(c *gin.Context) {
	query := ParseListQuery(c, "status")

	members, total, err := h.memberService.List(c.Request.Context(), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	responses := make([]models.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, members[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"members": responses,
		"total":   total,
		"page":    query.Page,
	})
}

// @Summary Get Member
// @Tags Members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id} [get]
// @Security BearerAuth
func (h *MemberHandler) Show(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member.ToResponse())
}

type MemberUpdateRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes"`
}

// @Summary Update Member
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body MemberUpdateRequest true "Fields"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id} [put]
// @Security BearerAuth
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	var req MemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), id, services.UpdateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member.ToResponse())
}

// @Summary Delete Member
// @Tags Members
// @Param id path int true "Member ID"
// @Success 200 {object} map[string]string
// @Router /members/{id} [delete]
// @Security BearerAuth
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}

// @Summary Freeze Membership
// @Tags Members
// @Param id path int true "Member ID"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id}/freeze [post]
// @Security BearerAuth
func (h *MemberHandler) Freeze(c *gin.Context) {
	h.lifecycle(c, h.memberService.Freeze)
}

// @Summary Unfreeze Membership
// @Tags Members
// @Param id path int true "Member ID"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id}/unfreeze [post]
// @Security BearerAuth
func (h *MemberHandler) Unfreeze(c *gin.Context) {
	h.lifecycle(c, h.memberService.Unfreeze)
}

// @Summary Cancel Membership
// @Tags Members
// @Param id path int true "Member ID"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id}/cancel [post]
// @Security BearerAuth
func (h *MemberHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.memberService.Cancel)
}

func (h *MemberHandler) lifecycle(c *gin.Context, transition func(ctx context.Context, id uint) (*models.Member, error)) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	member, err := transition(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member.ToResponse())
}

// @Summary Upload Member Photo
// @Tags Members
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Member ID"
// @Param photo formData file true "Photo"
// @Success 200 {object} models.MemberResponse
// @Router /members/{id}/photo [post]
// @Security BearerAuth
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	member, err := h.memberService.UploadPhoto(c.Request.Context(), id, file, header)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member.ToResponse())
}

// @Summary Member Photo
// @Tags Members
// @Produce image/jpeg
// @Param id path int true "Member ID"
// @Success 200 {file} file
// @Router /members/{id}/photo [get]
// @Security BearerAuth
func (h *MemberHandler) Photo(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	path, err := h.memberService.PhotoPath(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.File(path)
}

// respondWithReceipt renders the entity + receipt pair shared by the
// issuing endpoints, downgrading a PartialFailure to a success payload
// with a warning
func respondWithReceipt(c *gin.Context, member *models.Member, receipt *models.Receipt, err error) {
	if err != nil {
		var pf *services.PartialFailure
		if errors.As(err, &pf) && member != nil {
			c.JSON(http.StatusCreated, signupResponse{
				Member:  member.ToResponse(),
				Warning: "receipt could not be generated, please reissue manually",
			})
			return
		}
		RespondError(c, err)
		return
	}

	resp := signupResponse{Member: member.ToResponse()}
	if receipt != nil {
		r := receipt.ToResponse()
		resp.Receipt = &r
	}
	c.JSON(http.StatusCreated, resp)
}
