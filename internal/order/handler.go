package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thegriller/internal/cart"
)

type Handler struct {
	store *Store
	cart  *cart.Store
}

func NewHandler(store *Store, cartStore *cart.Store) *Handler {
	return &Handler{store: store, cart: cartStore}
}

type checkoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryType    string `json:"deliveryType"`
}

// Checkout snapshots the cart into a new order, then clears the cart.
// The two steps are deliberately independent: placing the order never
// depends on the clear succeeding.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.CustomerName == "" || req.CustomerPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}
	if req.DeliveryType != TypeDelivery && req.DeliveryType != TypeCollection {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deliveryType must be delivery or collection"})
		return
	}
	if req.DeliveryType == TypeDelivery && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address is required"})
		return
	}

	lines := h.cart.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	totals := h.cart.Quote(req.DeliveryType)

	draft := Draft{
		Items:         lines,
		Total:         totals.Total,
		Status:        StatusOrdered,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryType:  req.DeliveryType,
		EstimatedTime: "20-30 mins",
	}
	if req.DeliveryType == TypeDelivery {
		draft.DeliveryAddress = req.DeliveryAddress
		draft.EstimatedTime = "45-60 mins"
	}

	placed := h.store.Add(draft)
	h.cart.Clear()

	c.JSON(http.StatusCreated, placed)
}

// List serves the customer order-tracking view.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.store.List()})
}

func (h *Handler) Get(c *gin.Context) {
	o, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

// StaffList includes the next status of each order so the management
// screen can render its advance button.
func (h *Handler) StaffList(c *gin.Context) {
	orders := h.store.List()
	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"order":      o,
			"nextStatus": Next(o.Status, o.DeliveryType),
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !Known(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	o, err := h.store.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}
