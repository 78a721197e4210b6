package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/mainlycc/aw/internal/service"
	pkgerrors "github.com/mainlycc/aw/pkg/errors"
	"github.com/mainlycc/aw/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles the file export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBillingMonth downloads one billing month as an .xlsx report.
// GET /api/v1/export/billing/:id
func (h *ExportHandler) ExportBillingMonth(c *gin.Context) {
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

	buf, filename, err := h.exportSvc.ExportBillingMonth(c.Request.Context(), id, callerID, role)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportMonthNotFound):
		response.NotFound(c, 17001, "billing month not found")
	case errors.Is(err, service.ErrExportNoEntries):
		response.BadRequest(c, 17002, "billing month has no entries to export")
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, 10003, "operation not permitted on this resource")
	default:
		response.InternalError(c)
	}
}
