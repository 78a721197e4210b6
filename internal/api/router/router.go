package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/api/handler"
	"github.com/mainlycc/aw/internal/api/middleware"
	"github.com/mainlycc/aw/pkg/jwt"
	"github.com/mainlycc/aw/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with all routes attached.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no authentication)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// public booking calendar, rate limited per IP
		calendar := v1.Group("/calendar")
		calendar.Use(middleware.RateLimit(rdb, 120, time.Minute))
		{
			calendar.GET("/catalog", h.Booking.GetCatalog)
			calendar.POST("/sessions", h.Booking.CreateSession)
			calendar.GET("/sessions/:id", h.Booking.GetSession)
			calendar.PUT("/sessions/:id", h.Booking.ConfigureSession)
			calendar.POST("/sessions/:id/navigate", h.Booking.Navigate)
			calendar.POST("/sessions/:id/select", h.Booking.SelectSlot)
			calendar.PUT("/sessions/:id/contact", h.Booking.UpdateContact)
			calendar.POST("/sessions/:id/book", middleware.RateLimit(rdb, 10, time.Minute), h.Booking.Book)
			calendar.GET("/sessions/:id/lessons/:slotId/ics", h.Booking.LessonICS)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// account administration
			users := authorized.Group("/users")
			users.Use(middleware.RoleAuth("admin"))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/:id", h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
				users.PUT("/:id/approve", h.User.ApproveUser)
				users.DELETE("/:id/reject", h.User.RejectUser)
			}

			// parents
			parents := authorized.Group("/parents")
			{
				parents.GET("", h.Parent.ListParents)
				parents.GET("/:id", h.Parent.GetParent)
				parents.POST("", h.Parent.CreateParent)
				parents.PUT("/:id", h.Parent.UpdateParent)
				parents.DELETE("/:id", middleware.RoleAuth("admin"), h.Parent.DeleteParent)
			}

			// students
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.ListStudents)
				students.GET("/mine", h.Student.ListMyStudents)
				students.GET("/:id", h.Student.GetStudent)
				students.POST("", h.Student.CreateStudent)
				students.PUT("/:id", h.Student.UpdateStudent)
				students.DELETE("/:id", middleware.RoleAuth("admin"), h.Student.DeleteStudent)
			}

			// enrollments
			enrollments := authorized.Group("/enrollments")
			{
				enrollments.GET("", h.Enrollment.ListEnrollments)
				enrollments.GET("/:id", h.Enrollment.GetEnrollment)
				enrollments.POST("", middleware.RoleAuth("admin"), h.Enrollment.CreateEnrollment)
				enrollments.PUT("/:id", middleware.RoleAuth("admin"), h.Enrollment.UpdateEnrollment)
				enrollments.DELETE("/:id", middleware.RoleAuth("admin"), h.Enrollment.DeleteEnrollment)
			}

			// billing
			billing := authorized.Group("/billing")
			{
				billing.GET("/months", h.Billing.ListMonths)
				billing.GET("/months/:id", h.Billing.GetMonth)
				billing.POST("/months", h.Billing.CreateMonth)
				billing.POST("/months/:id/entries", h.Billing.AddEntry)
				billing.DELETE("/months/:id/entries/:entryId", h.Billing.DeleteEntry)
				billing.PUT("/months/:id/close", h.Billing.CloseMonth)
			}

			// exports
			export := authorized.Group("/export")
			{
				export.GET("/billing/:id", h.Export.ExportBillingMonth)
			}
		}
	}

	return r
}
