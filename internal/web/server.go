// Package web serves the pantry UI over HTTP.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/foodsaver/internal/reminder"
	"github.com/Veraticus/foodsaver/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server wires the pantry service and storage into HTTP handlers.
// Reminders may be nil when email is not configured; the endpoint then
// reports that instead of failing.
type Server struct {
	pantry    *service.Pantry
	storage   service.Storage
	reminders *reminder.Service
	now       func() time.Time
}

// NewServer creates a Server.
func NewServer(pantry *service.Pantry, storage service.Storage, reminders *reminder.Service) *Server {
	return &Server{
		pantry:    pantry,
		storage:   storage,
		reminders: reminders,
		now:       time.Now,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	r.SetHTMLTemplate(template.Must(template.ParseFS(sub, "*.html")))

	r.GET("/", s.index)
	r.POST("/add", s.addItem)
	r.GET("/edit/:id", s.editItemForm)
	r.POST("/edit/:id", s.editItem)
	r.POST("/delete/:id", s.deleteItem)

	r.GET("/recipes", s.recipesPage)
	r.POST("/recipes/add", s.addRecipe)
	r.POST("/recipes/delete/:id", s.deleteRecipe)

	r.GET("/export", s.exportCSV)
	r.POST("/seed", s.seed)
	r.POST("/send-reminders", s.sendReminders)

	return r
}

// requestLogger logs each request through slog, keeping gin's default
// writer out of the picture.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// redirectWithFlash sends the browser back to a page with a one-shot
// message in the query string.
func redirectWithFlash(c *gin.Context, location, msg string) {
	if msg != "" {
		location += "?msg=" + template.URLQueryEscaper(msg)
	}
	c.Redirect(http.StatusSeeOther, location)
}
