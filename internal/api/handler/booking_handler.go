package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mainlycc/aw/internal/booking"
	"github.com/mainlycc/aw/internal/dto"
	"github.com/mainlycc/aw/internal/service"
	"github.com/mainlycc/aw/pkg/response"
)

// BookingHandler handles the public availability calendar endpoints. No
// authentication; sessions are addressed by their opaque ids.
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// GetCatalog returns the static subject and level catalogs.
// GET /api/v1/calendar/catalog
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	response.OK(c, h.bookingSvc.Catalog())
}

// CreateSession opens a booking session anchored on the current week.
// POST /api/v1/calendar/sessions
func (h *BookingHandler) CreateSession(c *gin.Context) {
	state, err := h.bookingSvc.CreateSession(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, state)
}

// GetSession returns the session snapshot with the active projection.
// GET /api/v1/calendar/sessions/:id
func (h *BookingHandler) GetSession(c *gin.Context) {
	state, err := h.bookingSvc.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, state)
}

// ConfigureSession narrows the subject/level/view selection.
// PUT /api/v1/calendar/sessions/:id
func (h *BookingHandler) ConfigureSession(c *gin.Context) {
	var req dto.ConfigureSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.bookingSvc.Configure(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, state)
}

// Navigate moves the visible week.
// POST /api/v1/calendar/sessions/:id/navigate
func (h *BookingHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.bookingSvc.Navigate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, state)
}

// SelectSlot marks a slot as the booking candidate.
// POST /api/v1/calendar/sessions/:id/select
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var req dto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.bookingSvc.SelectSlot(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, state)
}

// UpdateContact syncs the contact form. Propagation is debounced.
// PUT /api/v1/calendar/sessions/:id/contact
func (h *BookingHandler) UpdateContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.bookingSvc.UpdateContact(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, state)
}

// Book commits a booking for a selected slot.
// POST /api/v1/calendar/sessions/:id/book
func (h *BookingHandler) Book(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.bookingSvc.Book(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, result)
}

// LessonICS downloads a booked lesson as an iCalendar file.
// GET /api/v1/calendar/sessions/:id/lessons/:slotId/ics
func (h *BookingHandler) LessonICS(c *gin.Context) {
	data, filename, err := h.bookingSvc.LessonICS(c.Request.Context(), c.Param("id"), c.Param("slotId"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar", data)
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		response.NotFound(c, 16001, "booking session not found or expired")
	case errors.Is(err, booking.ErrSlotNotFound):
		response.NotFound(c, 16002, "slot not found in the current week")
	case errors.Is(err, booking.ErrSlotUnavailable):
		response.Conflict(c, 16003, "slot is not open for booking")
	case errors.Is(err, booking.ErrBookingInProgress):
		response.Conflict(c, 16004, "a booking for this slot is already in progress")
	case errors.Is(err, service.ErrUnknownSubject):
		response.BadRequest(c, 14002, "unknown subject")
	case errors.Is(err, service.ErrUnknownLevel):
		response.BadRequest(c, 14003, "unknown level")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 16005, "date must be YYYY-MM-DD")
	case errors.Is(err, service.ErrLessonNotFound):
		response.NotFound(c, 16006, "lesson not found in this session")
	default:
		response.InternalError(c)
	}
}
