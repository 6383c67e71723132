package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Login checks the single admin credential. Failed attempts are accepted
// indefinitely; there is no lockout.
func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if !h.Gate.Login(form.Email, form.Password) {
		h.Log.Info("rejected login attempt", zap.String("email", form.Email))
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid email or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("is_admin", true)
	sess.Set("email", form.Email)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) Logout(c *gin.Context) {
	h.Gate.Logout()

	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}
