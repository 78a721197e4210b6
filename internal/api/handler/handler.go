package handler

import (
	"github.com/mainlycc/aw/internal/service"
	"github.com/mainlycc/aw/pkg/jwt"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Parent     *ParentHandler
	Student    *StudentHandler
	Enrollment *EnrollmentHandler
	Billing    *BillingHandler
	Booking    *BookingHandler
	Export     *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service, jwtMgr *jwt.Manager) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth, jwtMgr),
		User:       NewUserHandler(svc.User),
		Parent:     NewParentHandler(svc.Parent),
		Student:    NewStudentHandler(svc.Student),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Billing:    NewBillingHandler(svc.Billing),
		Booking:    NewBookingHandler(svc.Booking),
		Export:     NewExportHandler(svc.Export),
	}
}
