package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(url, 5*time.Second, log)
}

func TestFetchMenuDecodesBothPriceShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/menu", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Ribeye","price":"24.50","category":"Main Course","is_spicy":1,"allergens":"Dairy"},
			{"id":2,"name":"Lemonade","price":4.5,"category":"Drinks","allergens":null}
		]`))
	}))
	defer srv.Close()

	rows, err := testClient(srv.URL).FetchMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Decimal(24.5), rows[0].Price)
	assert.Equal(t, Decimal(4.5), rows[1].Price)
	assert.Equal(t, 1, rows[0].IsSpicy)
	assert.Nil(t, rows[1].Allergens)
}

func TestServerErrorMessagePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"email already exists"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Register(context.Background(), "Ada", "ada@example.com", "pw", "")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already exists", apiErr.Message)
}

func TestServerErrorWithoutBodyGetsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchMenu(context.Background())
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.NotEmpty(t, apiErr.Message)
}

func TestLoginSendsRole(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-1","user":{"id":7,"name":"Ada","email":"ada@example.com","role":"staff"}}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Login(context.Background(), "ada@example.com", "pw", "staff")
	require.NoError(t, err)

	assert.Equal(t, "staff", got["role"])
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, 7, resp.User.ID)
	assert.Nil(t, resp.User.Phone)
}

func TestBearerTokenAttached(t *testing.T) {
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListUsers(context.Background(), "tok-9")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", authHeader)
}

func TestDeleteUserNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/users/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, testClient(srv.URL).DeleteUser(context.Background(), "tok", "5"))
}

func TestDecimalRejectsGarbage(t *testing.T) {
	var d Decimal
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &d))
	assert.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, Decimal(0), d)
}
