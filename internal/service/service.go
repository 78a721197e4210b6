package service

import (
	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/notify"
	"github.com/mainlycc/aw/internal/repository"
	"github.com/mainlycc/aw/pkg/jwt"
	"github.com/mainlycc/aw/pkg/redis"
)

// Service aggregates every business interface.
type Service struct {
	Auth       AuthService
	User       UserService
	Parent     ParentService
	Student    StudentService
	Enrollment EnrollmentService
	Billing    BillingService
	Booking    BookingService
	Export     ExportService
}

// NewService wires the service implementations.
// rdb may be nil; token revocation then degrades to TTL-only expiry.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	dispatcher := notify.NewDispatcher(&cfg.Webhook, logger)

	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Parent:     NewParentService(repo, logger),
		Student:    NewStudentService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Billing:    NewBillingService(repo, logger),
		Booking:    NewBookingService(&cfg.Booking, dispatcher, logger),
		Export:     NewExportService(repo, logger),
	}
}
