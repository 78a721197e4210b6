package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/service"
	"github.com/mainlycc/aw/pkg/response"
)

// ParentHandler handles the parent contact endpoints.
type ParentHandler struct {
	parentSvc service.ParentService
}

// NewParentHandler creates a ParentHandler.
func NewParentHandler(parentSvc service.ParentService) *ParentHandler {
	return &ParentHandler{parentSvc: parentSvc}
}

// CreateParent records a parent contact.
// POST /api/v1/parents
func (h *ParentHandler) CreateParent(c *gin.Context) {
	var req dto.CreateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	parent, err := h.parentSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleParentError(c, err)
		return
	}

	response.Created(c, parent)
}

// ListParents lists all parent contacts.
// GET /api/v1/parents
func (h *ParentHandler) ListParents(c *gin.Context) {
	parents, err := h.parentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": parents})
}

// GetParent returns one parent contact.
// GET /api/v1/parents/:id
func (h *ParentHandler) GetParent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "parent id is required")
		return
	}

	parent, err := h.parentSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleParentError(c, err)
		return
	}

	response.OK(c, parent)
}

// UpdateParent updates a parent contact.
// PUT /api/v1/parents/:id
func (h *ParentHandler) UpdateParent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "parent id is required")
		return
	}

	var req dto.UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	parent, err := h.parentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleParentError(c, err)
		return
	}

	response.OK(c, parent)
}

// DeleteParent removes a parent contact.
// DELETE /api/v1/parents/:id
func (h *ParentHandler) DeleteParent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "parent id is required")
		return
	}

	if err := h.parentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleParentError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ParentHandler) handleParentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrParentNotFound):
		response.NotFound(c, 13001, "parent not found")
	default:
		response.InternalError(c)
	}
}
