package server

import (
	"html/template"
	"time"

	"nova-packaging/internal/config"
	"nova-packaging/internal/handlers"
	"nova-packaging/internal/middleware"
	"nova-packaging/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// DefaultTemplates is the glob the server binary uses; tests pass their
// own relative path.
const DefaultTemplates = "web/templates/*.html"

func NewRouter(cfg *config.Config, h *handlers.Handlers, templates string) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"glyph": func(i models.Icon) string { return i.Glyph() },
		"fmtTime": func(t time.Time) string {
			return t.Local().Format("Jan 2, 2006 15:04")
		},
	})
	r.LoadHTMLGlob(templates)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("nova_session", store))

	// PUBLIC
	r.GET("/", h.IndexPage)
	r.POST("/contact", h.SubmitContact)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("", h.AdminPanel)

	admin.GET("/products/new", h.ShowNewProduct)
	admin.POST("/products/new", h.CreateProduct)
	admin.GET("/products/:id/edit", h.ShowEditProduct)
	admin.POST("/products/:id/edit", h.UpdateProduct)
	admin.POST("/products/:id/delete", h.DeleteProduct)

	admin.POST("/messages/:id/status", h.SetMessageStatus)
	admin.POST("/messages/:id/delete", h.DeleteMessage)

	// HEALTHCHECK
	r.GET("/health", h.Health)

	return r
}
