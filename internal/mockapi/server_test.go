// internal/mockapi/server_test.go
package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/auth"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/logger"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	data, err := Seeded("amina@example.com", "secret")
	require.NoError(t, err)
	return NewServer(data, auth.NewManager("test-secret", time.Hour), logger.Discard()).Routes("/api")
}

func call(t *testing.T, h http.Handler, method, path, token string, body interface{}) (int, gjson.Result) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, gjson.ParseBytes(rec.Body.Bytes())
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()
	code, res := call(t, h, http.MethodPost, "/api/login", "", map[string]string{"email": "amina@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, code)
	require.True(t, res.Get("success").Bool(), res.Raw)
	return res.Get("customer_token").String()
}

func TestLogin(t *testing.T) {
	h := newTestAPI(t)

	tests := []struct {
		name     string
		email    string
		password string
		success  bool
	}{
		{name: "valid", email: "amina@example.com", password: "secret", success: true},
		{name: "case insensitive email", email: "AMINA@example.com", password: "secret", success: true},
		{name: "wrong password", email: "amina@example.com", password: "nope"},
		{name: "unknown email", email: "who@example.com", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := call(t, h, http.MethodPost, "/api/login", "", map[string]string{"email": tt.email, "password": tt.password})
			if res.Get("success").Bool() != tt.success {
				t.Errorf("login success = %v, want %v (%s)", res.Get("success").Bool(), tt.success, res.Raw)
			}
			if !tt.success {
				assert.Equal(t, "Invalid credentials", res.Get("error.message").String())
			} else {
				assert.NotEmpty(t, res.Get("customer_token").String())
				assert.Equal(t, "Amina", res.Get("customer.firstname").String())
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	h := newTestAPI(t)

	code, res := call(t, h, http.MethodGet, "/api/stores", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, res.Get("success").Bool())

	code, _ = call(t, h, http.MethodGet, "/api/stores", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLogoutRevokesToken(t *testing.T) {
	h := newTestAPI(t)
	token := login(t, h)

	code, _ := call(t, h, http.MethodGet, "/api/stores", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodGet, "/api/stores", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProductsPagination(t *testing.T) {
	h := newTestAPI(t)
	token := login(t, h)

	_, res := call(t, h, http.MethodGet, "/api/products?store_id=2&page=1&limit=10", token, nil)
	assert.Len(t, res.Get("products").Array(), 10)
	assert.Equal(t, int64(101), res.Get("products.0.product_id").Int())

	_, res = call(t, h, http.MethodGet, "/api/products?store_id=2&page=3&limit=10", token, nil)
	assert.Len(t, res.Get("products").Array(), 3)

	_, res = call(t, h, http.MethodGet, "/api/products?store_id=2&page=4&limit=10", token, nil)
	assert.True(t, res.Get("products").IsArray())
	assert.Empty(t, res.Get("products").Array())
}

func TestCustomOrder(t *testing.T) {
	h := newTestAPI(t)
	token := login(t, h)

	tests := []struct {
		name    string
		body    string
		success bool
		message string
	}{
		{
			name:    "valid",
			body:    `{"products":[{"product_id":101,"quantity":1}],"customer":{"customer_id":"1"},"payment_address":{"firstname":"Amina","lastname":"Njeri"},"errand_details":{}}`,
			success: true,
		},
		{name: "empty cart", body: `{"products":[]}`, message: "No products in order"},
		{name: "unknown product", body: `{"products":[{"product_id":999,"quantity":1}]}`, message: "Product 999 not found"},
		{name: "zero quantity", body: `{"products":[{"product_id":101,"quantity":0}]}`, message: "Invalid quantity for product 101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := call(t, h, http.MethodPost, "/api/custom_order", token, json.RawMessage(tt.body))
			assert.Equal(t, tt.success, res.Get("success").Bool(), res.Raw)
			if !tt.success {
				assert.Equal(t, tt.message, res.Get("error.message").String())
			}
		})
	}

	_, res := call(t, h, http.MethodGet, "/api/orders?page=1&limit=10", token, nil)
	require.Len(t, res.Get("orders").Array(), 1)
	assert.Equal(t, "Amina Njeri", res.Get("orders.0.name").String())
	assert.Equal(t, "175.00", res.Get("orders.0.total").String())
	assert.Equal(t, int64(1), res.Get("pagination.total_pages").Int())
}

func TestOrdersPagination(t *testing.T) {
	data, err := Seeded("amina@example.com", "secret")
	require.NoError(t, err)
	h := NewServer(data, auth.NewManager("test-secret", time.Hour), logger.Discard()).Routes("api")
	token := login(t, h)

	for i := 0; i < 12; i++ {
		_, res := call(t, h, http.MethodPost, "/api/custom_order", token, json.RawMessage(`{"products":[{"product_id":11,"quantity":2}]}`))
		require.True(t, res.Get("success").Bool())
	}

	_, res := call(t, h, http.MethodGet, "/api/orders?page=2&limit=5", token, nil)
	assert.Len(t, res.Get("orders").Array(), 5)
	assert.Equal(t, int64(2), res.Get("pagination.current_page").Int())
	assert.Equal(t, int64(3), res.Get("pagination.total_pages").Int())
	assert.Equal(t, "900.00", res.Get("orders.0.total").String())
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestAPI(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
