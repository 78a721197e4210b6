package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/service"
	"github.com/mainlycc/aw/pkg/response"
)

// EnrollmentHandler handles the tutor/student enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler creates an EnrollmentHandler.
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// CreateEnrollment assigns a student to a tutor for a subject and level.
// POST /api/v1/enrollments
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// ListEnrollments lists enrollments with optional filters.
// GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	var req dto.EnrollmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	enrollments, err := h.enrollmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": enrollments})
}

// GetEnrollment returns one enrollment.
// GET /api/v1/enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "enrollment id is required")
		return
	}

	enrollment, err := h.enrollmentSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// UpdateEnrollment updates an enrollment's rate or active flag.
// PUT /api/v1/enrollments/:id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "enrollment id is required")
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	enrollment, err := h.enrollmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// DeleteEnrollment removes an enrollment.
// DELETE /api/v1/enrollments/:id
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "enrollment id is required")
		return
	}

	if err := h.enrollmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, 14001, "enrollment not found")
	case errors.Is(err, service.ErrUnknownSubject):
		response.BadRequest(c, 14002, "unknown subject")
	case errors.Is(err, service.ErrUnknownLevel):
		response.BadRequest(c, 14003, "unknown level")
	case errors.Is(err, service.ErrNotATutor):
		response.BadRequest(c, 14004, "the assigned user is not a tutor")
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 14005, "referenced student does not exist")
	default:
		response.InternalError(c)
	}
}
