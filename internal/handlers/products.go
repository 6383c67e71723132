package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"nova-packaging/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) ShowNewProduct(c *gin.Context) {
	render(c, http.StatusOK, "product_form.html", gin.H{
		"title":  "New product",
		"action": "/admin/products/new",
		"error":  "",
	})
}

func (h *Handlers) CreateProduct(c *gin.Context) {
	p, errMsg := productFromForm(c)
	if errMsg == "" {
		if _, err := h.Products.Add(p); err != nil {
			errMsg = err.Error()
		}
	}
	if errMsg != "" {
		render(c, http.StatusBadRequest, "product_form.html", gin.H{
			"title":   "New product",
			"action":  "/admin/products/new",
			"product": p,
			"error":   errMsg,
		})
		return
	}

	h.Log.Info("product created", zap.String("name", p.Name))
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) ShowEditProduct(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.Products.Get(id)
	if !ok {
		c.String(http.StatusNotFound, "product not found")
		return
	}

	render(c, http.StatusOK, "product_form.html", gin.H{
		"title":   "Edit product",
		"action":  "/admin/products/" + id + "/edit",
		"product": p,
		"error":   "",
	})
}

func (h *Handlers) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	p, errMsg := productFromForm(c)
	if errMsg == "" {
		patch := models.ProductPatch{
			Name:        &p.Name,
			Description: &p.Description,
			Price:       &p.Price,
			Category:    &p.Category,
			Image:       &p.Image,
			Icon:        &p.Icon,
		}
		if err := h.Products.Update(id, patch); err != nil {
			errMsg = err.Error()
		}
	}
	if errMsg != "" {
		p.ID = id
		render(c, http.StatusBadRequest, "product_form.html", gin.H{
			"title":   "Edit product",
			"action":  "/admin/products/" + id + "/edit",
			"product": p,
			"error":   errMsg,
		})
		return
	}

	h.Log.Info("product updated", zap.String("id", id))
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	h.Products.Delete(id)
	h.Log.Info("product deleted", zap.String("id", id))
	c.Redirect(http.StatusFound, "/admin")
}

func productFromForm(c *gin.Context) (models.Product, string) {
	p := models.Product{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		Image:       strings.TrimSpace(c.PostForm("image")),
		Icon:        models.Icon(c.PostForm("icon")),
	}

	priceStr := strings.TrimSpace(c.PostForm("price"))
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return p, "Price must be a number"
	}
	p.Price = price
	return p, ""
}
