package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/dto"
	"github.com/6394981696/Lecture-Scheduling/internal/session"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
)

// AuthHandler serves the login and registration views and owns the
// session lifecycle.
type AuthHandler struct {
	api    apiclient.AuthAPI
	store  session.Store
	tokens *token.Manager
	cfg    *config.SessionConfig
	logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(
	api apiclient.AuthAPI,
	store session.Store,
	tokens *token.Manager,
	cfg *config.SessionConfig,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{api: api, store: store, tokens: tokens, cfg: cfg, logger: logger}
}

// ShowLogin renders the login form.
// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", pageData(c, "Log In", gin.H{"Form": dto.LoginForm{}}))
}

// Login validates and submits the login form.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "login", pageData(c, "Log In", gin.H{
			"Form":  form,
			"Flash": err.Error(),
		}))
		return
	}

	p, err := h.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login", pageData(c, "Log In", gin.H{
			"Form":  form,
			"Flash": h.failureMessage(err, "Login failed. Please try again."),
		}))
		return
	}

	if err := h.startSession(c, p); err != nil {
		h.logger.Error("starting session failed", zap.Error(err))
		c.HTML(http.StatusOK, "login", pageData(c, "Log In", gin.H{
			"Form":  form,
			"Flash": "Login failed. Please try again.",
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, middleware.HomePath(session.RoleOf(p)))
}

// ShowRegister renders the registration form.
// GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register", pageData(c, "Register", gin.H{"Form": dto.RegisterForm{}}))
}

// Register validates and submits the registration form.
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	_ = c.ShouldBind(&form)

	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "register", pageData(c, "Register", gin.H{
			"Form":  form,
			"Flash": err.Error(),
		}))
		return
	}

	p, err := h.api.Register(c.Request.Context(), form.Username, form.Email, form.Password, form.IsAdmin)
	if err != nil {
		c.HTML(http.StatusOK, "register", pageData(c, "Register", gin.H{
			"Form":  form,
			"Flash": h.failureMessage(err, "Registration failed. Please try again."),
		}))
		return
	}

	if err := h.startSession(c, p); err != nil {
		h.logger.Error("starting session failed", zap.Error(err))
		c.HTML(http.StatusOK, "register", pageData(c, "Register", gin.H{
			"Form":  form,
			"Flash": "Registration failed. Please try again.",
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, middleware.HomePath(session.RoleOf(p)))
}

// Logout clears the session and returns to the landing page.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		if err := h.store.Clear(c.Request.Context(), sid); err != nil {
			h.logger.Error("clearing session failed", zap.Error(err))
		}
	}

	h.setSameSite(c)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// failureMessage distinguishes the two failure channels: an upstream
// rejection carries its own user-facing message, anything else gets
// the generic fallback and a log line.
func (h *AuthHandler) failureMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	h.logger.Error("auth request failed", zap.Error(err))
	return fallback
}

func (h *AuthHandler) startSession(c *gin.Context, p *session.Principal) error {
	sid := uuid.New().String()
	if err := h.store.Set(c.Request.Context(), sid, p); err != nil {
		return err
	}

	tok, err := h.tokens.Issue(sid)
	if err != nil {
		return err
	}

	h.setSameSite(c)
	maxAge := int(h.cfg.TTL.Seconds())
	c.SetCookie(middleware.SessionCookie, tok, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
	return nil
}

func (h *AuthHandler) setSameSite(c *gin.Context) {
	switch h.cfg.Cookie.SameSite {
	case "Strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "None":
		c.SetSameSite(http.SameSiteNoneMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
}
