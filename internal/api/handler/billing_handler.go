package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/service"
	pkgerrors "github.com/mainlycc/aw/pkg/errors"
	"github.com/mainlycc/aw/pkg/response"
)

// BillingHandler handles the hour-tracking endpoints.
type BillingHandler struct {
	billingSvc service.BillingService
}

// NewBillingHandler creates a BillingHandler.
func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

// CreateMonth opens a billing month for an enrollment.
// POST /api/v1/billing/months
func (h *BillingHandler) CreateMonth(c *gin.Context) {
	var req dto.CreateBillingMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	month, err := h.billingSvc.CreateMonth(c.Request.Context(), &req, callerID, role)
	if err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.Created(c, month)
}

// ListMonths lists billing months with optional filters.
// GET /api/v1/billing/months
func (h *BillingHandler) ListMonths(c *gin.Context) {
	var req dto.BillingMonthListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	months, err := h.billingSvc.ListMonths(c.Request.Context(), &req, callerID, role)
	if err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.OK(c, gin.H{"list": months})
}

// GetMonth returns one billing month with entries and totals.
// GET /api/v1/billing/months/:id
func (h *BillingHandler) GetMonth(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "billing month id is required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	month, err := h.billingSvc.GetMonth(c.Request.Context(), id, callerID, role)
	if err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.OK(c, month)
}

// AddEntry logs hours within a billing month.
// POST /api/v1/billing/months/:id/entries
func (h *BillingHandler) AddEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "billing month id is required")
		return
	}

	var req dto.AddBillingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	month, err := h.billingSvc.AddEntry(c.Request.Context(), id, &req, callerID, role)
	if err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.Created(c, month)
}

// DeleteEntry removes a logged entry from an open month.
// DELETE /api/v1/billing/months/:id/entries/:entryId
func (h *BillingHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	entryID := c.Param("entryId")
	if id == "" || entryID == "" {
		response.BadRequest(c, 10001, "billing month id and entry id are required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.billingSvc.DeleteEntry(c.Request.Context(), id, entryID, callerID, role); err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.OK(c, nil)
}

// CloseMonth freezes a billing month.
// PUT /api/v1/billing/months/:id/close
func (h *BillingHandler) CloseMonth(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "billing month id is required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	month, err := h.billingSvc.CloseMonth(c.Request.Context(), id, callerID, role)
	if err != nil {
		h.handleBillingError(c, err)
		return
	}

	response.OK(c, month)
}

func (h *BillingHandler) handleBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBillingMonthNotFound):
		response.NotFound(c, 15001, "billing month not found")
	case errors.Is(err, service.ErrBillingMonthClosed):
		response.Conflict(c, 15002, "billing month is closed")
	case errors.Is(err, service.ErrBadEntryDate):
		response.BadRequest(c, 15003, "entry date must be YYYY-MM-DD")
	case errors.Is(err, service.ErrEntryOutsideMonth):
		response.BadRequest(c, 15004, "entry date falls outside the billing month")
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.BadRequest(c, 14001, "enrollment not found")
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted on this resource")
	default:
		response.InternalError(c)
	}
}
