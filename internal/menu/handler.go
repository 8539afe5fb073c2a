package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"thegriller/internal/remote"
)

// TokenSource hands the handler the current session token, if any.
type TokenSource interface {
	Token() string
}

type Handler struct {
	store  *Store
	tokens TokenSource
}

func NewHandler(store *Store, tokens TokenSource) *Handler {
	return &Handler{store: store, tokens: tokens}
}

// --------------------------------------------------
// Browsing
// --------------------------------------------------

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *Handler) Get(c *gin.Context) {
	item, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// --------------------------------------------------
// Management
// --------------------------------------------------

func (h *Handler) Create(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.store.Create(c.Request.Context(), h.tokens.Token(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.store.Update(c.Request.Context(), h.tokens.Token(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), h.tokens.Token(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps store errors onto the surface: the remote service's
// own status and message pass straight through, a missing token is a
// local 401, anything else is a failed upstream call.
func writeError(c *gin.Context, err error) {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrNotAuthorized.Error()})
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
