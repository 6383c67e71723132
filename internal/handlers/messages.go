package handlers

import (
	"net/http"

	"nova-packaging/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminPanel shows the catalog and the inquiry inbox. The status filter
// is a read-side projection driven by the ?status= query param.
func (h *Handlers) AdminPanel(c *gin.Context) {
	filter := models.MessageStatus(c.Query("status"))

	messages := h.Messages.List()
	if filter.Valid() {
		messages = h.Messages.FilterByStatus(filter)
	}

	render(c, http.StatusOK, "admin.html", gin.H{
		"products": h.Products.List(),
		"messages": messages,
		"filter":   string(filter),
	})
}

func (h *Handlers) SetMessageStatus(c *gin.Context) {
	id := c.Param("id")
	status := models.MessageStatus(c.PostForm("status"))

	if err := h.Messages.SetStatus(id, status); err != nil {
		c.String(http.StatusBadRequest, "unknown status")
		return
	}

	h.Log.Info("message status changed",
		zap.String("id", id),
		zap.String("status", string(status)),
	)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	h.Messages.Delete(id)
	h.Log.Info("message deleted", zap.String("id", id))
	c.Redirect(http.StatusFound, "/admin")
}
