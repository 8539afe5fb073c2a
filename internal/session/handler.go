package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"thegriller/internal/remote"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if req.Role == "" {
		req.Role = RoleCustomer
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeAuthError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	user, err := h.store.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeAuthError(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	h.store.Logout()
	c.Status(http.StatusNoContent)
}

// Session reports the signed-in user, so the view shell can restore
// its header state after a reload.
func (h *Handler) Session(c *gin.Context) {
	user := h.store.Current()
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// writeAuthError passes the server's own message through verbatim when
// it sent one, falling back to a generic string otherwise.
func writeAuthError(c *gin.Context, err error, fallback string) {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		c.JSON(apiErr.Status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to connect to server"})
}
