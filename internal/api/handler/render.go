package handler

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6394981696/Lecture-Scheduling/internal/api/middleware"
	"github.com/6394981696/Lecture-Scheduling/web"
)

// LoadTemplates parses the embedded view templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"shortDate": shortDate,
	}).ParseFS(web.Templates, "templates/*.html")
}

// shortDate formats an upstream date value for display. The stored
// value is left untouched; unparseable values render as-is.
func shortDate(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// flashCookie carries a one-shot notification across a redirect, the
// toast of the server-rendered world.
const flashCookie = "flash"

func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}

// pageData assembles the data common to every page. Keys in extra
// override the defaults, so a handler can set Flash directly when it
// re-renders instead of redirecting.
func pageData(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"Title":     title,
		"Principal": middleware.PrincipalFrom(c),
		"Flash":     takeFlash(c),
		"HomePath":  middleware.HomePath(middleware.RoleFrom(c)),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// Home renders the public landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", pageData(c, "Home", nil))
}

// NotFound renders the catch-all error page.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", pageData(c, "Not Found", gin.H{
		"Code":    http.StatusNotFound,
		"Message": "The page you are looking for does not exist.",
	}))
}
