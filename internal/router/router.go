package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"thegriller/internal/cart"
	"thegriller/internal/directory"
	"thegriller/internal/menu"
	"thegriller/internal/middleware"
	"thegriller/internal/order"
	"thegriller/internal/reservation"
	"thegriller/internal/session"
)

// Handlers collects the feature handlers the router wires up.
type Handlers struct {
	Sessions    *session.Store
	Session     *session.Handler
	Menu        *menu.Handler
	Cart        *cart.Handler
	Order       *order.Handler
	Reservation *reservation.Handler
	Directory   *directory.Handler
}

// New builds the consumer surface: public storefront routes, auth,
// role-gated staff and admin groups.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// View resolution for the shell's hash router.
	r.GET("/views", func(c *gin.Context) {
		c.JSON(http.StatusOK, Resolve(c.Query("fragment")))
	})

	// ───────────────────────── AUTH ─────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Session.Login)
		auth.POST("/register", h.Session.Register)
		auth.POST("/logout", h.Session.Logout)
		auth.GET("/session", h.Session.Session)
	}

	// ───────────────────────── STOREFRONT ─────────────────────────
	r.GET("/menu", h.Menu.List)
	r.GET("/menu/:id", h.Menu.Get)
	r.POST("/menu/refresh", h.Menu.Refresh)

	r.GET("/cart", h.Cart.List)
	r.POST("/cart/items", h.Cart.Add)
	r.PATCH("/cart/items/:id", h.Cart.SetQuantity)
	r.DELETE("/cart/items/:id", h.Cart.Remove)
	r.DELETE("/cart", h.Cart.Clear)

	r.POST("/checkout", h.Order.Checkout)
	r.GET("/orders", h.Order.List)
	r.GET("/orders/:id", h.Order.Get)

	r.POST("/reservations", h.Reservation.Create)

	// ───────────────────────── STAFF ─────────────────────────
	staff := r.Group("/staff")
	staff.Use(middleware.RequireRole(h.Sessions, session.RoleStaff, session.RoleAdmin))
	{
		staff.GET("/orders", h.Order.StaffList)
		staff.PATCH("/orders/:id/status", h.Order.UpdateStatus)
		staff.GET("/reservations", h.Reservation.List)
		staff.PATCH("/reservations/:id/status", h.Reservation.UpdateStatus)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(h.Sessions, session.RoleAdmin))
	{
		admin.POST("/menu", h.Menu.Create)
		admin.PUT("/menu/:id", h.Menu.Update)
		admin.DELETE("/menu/:id", h.Menu.Delete)

		admin.GET("/users", h.Directory.List)
		admin.PATCH("/users/:id", h.Directory.Update)
		admin.DELETE("/users/:id", h.Directory.Delete)
	}

	return r
}
