package directory

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
	service *Service
	tokens  TokenSource
}

func NewHandler(service *Service, tokens TokenSource) *Handler {
	return &Handler{service: service, tokens: tokens}
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), h.tokens.Token())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) Update(c *gin.Context) {
	var in UserUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.service.Update(c.Request.Context(), h.tokens.Token(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), h.tokens.Token(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

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
