package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thegriller/internal/menu"
)

type Handler struct {
	store *Store
	menu  *menu.Store
}

func NewHandler(store *Store, menuStore *menu.Store) *Handler {
	return &Handler{store: store, menu: menuStore}
}

func (h *Handler) List(c *gin.Context) {
	deliveryType := c.DefaultQuery("deliveryType", "delivery")
	c.JSON(http.StatusOK, gin.H{
		"items":  h.store.Lines(),
		"totals": h.store.Quote(deliveryType),
	})
}

// Add puts one unit of a cached menu item into the cart.
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	item, ok := h.menu.Get(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	h.store.Add(item)
	c.JSON(http.StatusOK, gin.H{"items": h.store.Lines()})
}

func (h *Handler) SetQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.store.SetQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": h.store.Lines()})
}

func (h *Handler) Remove(c *gin.Context) {
	h.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"items": h.store.Lines()})
}

func (h *Handler) Clear(c *gin.Context) {
	h.store.Clear()
	c.Status(http.StatusNoContent)
}
