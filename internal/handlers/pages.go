package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IndexPage renders the public marketing page; an authenticated admin is
// sent straight to the panel.
func (h *Handlers) IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	if isAdmin, _ := sess.Get("is_admin").(bool); isAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"products": h.Products.List(),
		"sent":     c.Query("sent") == "1",
		"warning":  c.Query("warn"),
	})
}

// SubmitContact records the inquiry first, then fires the email relay.
// The message is kept even when the email fails; the visitor only sees a
// warning.
func (h *Handlers) SubmitContact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	msg, err := h.Messages.Add(name, email, message)
	if err != nil {
		render(c, http.StatusBadRequest, "index.html", gin.H{
			"products": h.Products.List(),
			"error":    "Please fill in your name, email and message.",
			"form":     gin.H{"name": name, "email": email, "message": message},
		})
		return
	}

	if err := h.Mail.SendContact(name, email, message); err != nil {
		h.Log.Warn("email relay failed",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		c.Redirect(http.StatusFound, "/?sent=1&warn=email")
		return
	}

	c.Redirect(http.StatusFound, "/?sent=1")
}

// Health is a plain liveness probe.
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
