package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
	"github.com/6394981696/Lecture-Scheduling/internal/api/handler"
	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/internal/session"
	"github.com/6394981696/Lecture-Scheduling/pkg/redis"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
	"github.com/6394981696/Lecture-Scheduling/web"
)

// loginRateLimit throttles credential submissions per IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup builds the Gin engine with the full route table.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	store session.Store,
	tokens *token.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	tmpl, err := handler.LoadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── assets and health, no session resolution needed ──
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// every page resolves the visitor's principal
	r.Use(middleware.WithPrincipal(store, tokens))

	r.GET("/", handler.Home)

	// ── authentication ──
	r.GET("/login", middleware.RedirectAuthenticated(), h.Auth.ShowLogin)
	r.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
	r.GET("/register", middleware.RedirectAuthenticated(), h.Auth.ShowRegister)
	r.POST("/register", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Register)
	r.POST("/logout", h.Auth.Logout)

	// ── admin views ──
	admin := r.Group("", middleware.RequireRole(session.RoleAdmin))
	{
		admin.GET("/admin", h.Admin.Dashboard)
		admin.POST("/admin/courses", h.Admin.AddCourse)
		admin.POST("/admin/instructors", h.Admin.AddInstructor)
		admin.GET("/individual-course/:courseId", h.Course.Show)
		admin.POST("/individual-course/:courseId/schedule", h.Course.Schedule)
		admin.GET("/individual-instructor/:username", h.Instructor.Show)
	}

	// ── instructor views ──
	instructor := r.Group("", middleware.RequireRole(session.RoleInstructor))
	{
		instructor.GET("/instructor", h.Instructor.Dashboard)
		instructor.GET("/instructor/export/xlsx", h.Export.Workbook)
		instructor.GET("/instructor/export/ics", h.Export.Calendar)
	}

	r.NoRoute(handler.NotFound)

	return r, nil
}
