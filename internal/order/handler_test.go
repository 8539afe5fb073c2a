package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"thegriller/internal/cart"
	"thegriller/internal/menu"
)

func setupCheckoutRouter(orders *Store, cartStore *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(orders, cartStore)
	r.POST("/checkout", h.Checkout)
	r.GET("/orders", h.List)
	return r
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	orders := NewStore()
	cartStore := cart.NewStore()
	cartStore.Add(menu.Item{ID: "1", Name: "Ribeye", Price: 10})
	cartStore.Add(menu.Item{ID: "1", Name: "Ribeye", Price: 10})
	cartStore.Add(menu.Item{ID: "2", Name: "Lemonade", Price: 5})
	r := setupCheckoutRouter(orders, cartStore)

	body, _ := json.Marshal(map[string]string{
		"customerName":  "Ada",
		"customerPhone": "555-0100",
		"deliveryType":  "collection",
	})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var placed Order
	if err := json.Unmarshal(w.Body.Bytes(), &placed); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if placed.Status != StatusOrdered {
		t.Fatalf("expected status Ordered, got %q", placed.Status)
	}
	if placed.Total != 27.5 {
		t.Fatalf("expected total 27.50, got %v", placed.Total)
	}
	if placed.EstimatedTime != "20-30 mins" {
		t.Fatalf("unexpected estimate %q", placed.EstimatedTime)
	}
	if len(cartStore.Lines()) != 0 {
		t.Fatalf("cart should be cleared after checkout")
	}
	if len(orders.List()) != 1 {
		t.Fatalf("expected exactly one order")
	}
}

func TestCheckoutDeliveryRequiresAddress(t *testing.T) {
	cartStore := cart.NewStore()
	cartStore.Add(menu.Item{ID: "1", Price: 10})
	r := setupCheckoutRouter(NewStore(), cartStore)

	body, _ := json.Marshal(map[string]string{
		"customerName":  "Ada",
		"customerPhone": "555-0100",
		"deliveryType":  "delivery",
	})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if len(cartStore.Lines()) != 1 {
		t.Fatalf("failed checkout must not touch the cart")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := setupCheckoutRouter(NewStore(), cart.NewStore())

	body, _ := json.Marshal(map[string]string{
		"customerName":  "Ada",
		"customerPhone": "555-0100",
		"deliveryType":  "collection",
	})
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orders := NewStore()
	placed := orders.Add(Draft{DeliveryType: TypeDelivery, Status: StatusOrdered})

	r := gin.New()
	r.PATCH("/staff/orders/:id/status", NewHandler(orders, cart.NewStore()).UpdateStatus)

	body, _ := json.Marshal(map[string]string{"status": "Teleported"})
	req := httptest.NewRequest(http.MethodPatch, "/staff/orders/"+placed.ID+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
