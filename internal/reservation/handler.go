package reservation

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type createRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PartySize     int    `json:"partySize"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" ||
		req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if req.PartySize < 1 || req.PartySize > MaxPartySize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("party size must be between 1 and %d; for larger parties, please call us at (555) 123-4567", MaxPartySize),
		})
		return
	}

	r := h.store.Add(Draft{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		PartySize:     req.PartySize,
	})
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reservations": h.store.List()})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !Known(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown reservation status"})
		return
	}

	r, err := h.store.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
