package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and adds the viewer's auth state to every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	isAdmin, _ := sess.Get("is_admin").(bool)
	email, _ := sess.Get("email").(string)

	data["IsAdmin"] = isAdmin
	data["CurrentEmail"] = email

	c.HTML(status, tmpl, data)
}
