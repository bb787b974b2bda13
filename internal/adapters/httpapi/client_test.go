package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL + "/api/", Logger: logger.Discard()})
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantToken string
		wantMsg   string
		wantErr   bool
	}{
		{
			name:      "Success",
			status:    http.StatusOK,
			body:      `{"success":true,"customer_token":"tok-1","customer":{"customer_id":"9","firstname":"Ada","lastname":"Lovelace","email":"ada@example.com","telephone":"0712"}}`,
			wantToken: "tok-1",
		},
		{
			name:    "Rejected credentials",
			status:  http.StatusOK,
			body:    `{"success":false,"error":{"message":"Invalid email or password"}}`,
			wantMsg: "Invalid email or password",
			wantErr: true,
		},
		{
			name:    "Rejected with 401 status",
			status:  http.StatusUnauthorized,
			body:    `{"success":false,"error":{"message":"Account locked"}}`,
			wantMsg: "Account locked",
			wantErr: true,
		},
		{
			name:    "Not JSON",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: true,
		},
		{
			name:    "Missing customer",
			status:  http.StatusOK,
			body:    `{"success":true,"customer_token":"tok-1"}`,
			wantErr: true,
		},
		{
			name:    "Null customer",
			status:  http.StatusOK,
			body:    `{"success":true,"customer_token":"tok-1","customer":null}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/login", r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))
				var body map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "ada@example.com", body["email"])
				assert.Equal(t, "secret", body["password"])
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			res, err := client.Login(context.Background(), "ada@example.com", "secret")
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *domain.APIError
				if tt.wantMsg != "" {
					require.True(t, errors.As(err, &apiErr), "err = %v", err)
					assert.Equal(t, tt.wantMsg, apiErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, res.Token)
			assert.Equal(t, "Ada", res.Customer.Firstname)
			assert.Equal(t, domain.Text("9"), res.Customer.CustomerID)
		})
	}
}

type headerRecorder struct {
	next http.RoundTripper
	got  []string
}

func (h *headerRecorder) RoundTrip(r *http.Request) (*http.Response, error) {
	h.got = append(h.got, r.Header.Get("Authorization"))
	return h.next.RoundTrip(r)
}

// The header is captured on the way out; net/http servers trim the trailing
// space of "Bearer " before a handler sees it.
func TestClient_BearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	t.Cleanup(server.Close)

	rec := &headerRecorder{next: http.DefaultTransport}
	client := NewClient(ClientConfig{
		BaseURL:    server.URL + "/api",
		HTTPClient: &http.Client{Transport: rec},
		Logger:     logger.Discard(),
	})

	_, err := client.ListStores(context.Background(), "tok-1")
	require.NoError(t, err)
	_, err = client.ListStores(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer tok-1", "Bearer "}, rec.got)
}

func TestClient_ListStores(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []domain.Store
		wantErr error
	}{
		{
			name:   "Bare array",
			status: http.StatusOK,
			body:   `[{"store_id":1,"name":"A"},{"store_id":"2","name":"Weusifix Logistics","url":"https://weusifix.example"}]`,
			want:   []domain.Store{{StoreID: 1, Name: "A"}, {StoreID: 2, Name: "Weusifix Logistics", URL: "https://weusifix.example"}},
		},
		{
			name:   "Envelope",
			status: http.StatusOK,
			body:   `{"success":true,"stores":[{"store_id":5,"name":"X"}]}`,
			want:   []domain.Store{{StoreID: 5, Name: "X"}},
		},
		{
			name:   "Empty envelope",
			status: http.StatusOK,
			body:   `{"success":true}`,
			want:   []domain.Store{},
		},
		{
			name:    "Unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":"expired"}`,
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/stores", r.URL.Path)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			stores, err := client.ListStores(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stores)
		})
	}
}

func TestClient_ListStores_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"boom"}`)
	})

	_, err := client.ListStores(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestClient_ListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("store_id"))
		io.WriteString(w, `{"products":[{"product_id":"7","name":"Delivery","price":"12.50"},{"product_id":8,"name":"Pickup","price":3}]}`)
	})

	page, err := client.ListProducts(context.Background(), "tok", 2, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, []domain.Product{
		{ProductID: 7, Name: "Delivery", Price: "12.50"},
		{ProductID: 8, Name: "Pickup", Price: "3"},
	}, page.Items)
}

func TestClient_ListProducts_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListProducts(context.Background(), "tok", 2, 1, 10)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized), "err = %v", err)
}

func TestClient_ListProducts_MissingList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	page, err := client.ListProducts(context.Background(), "tok", 2, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
}

func TestClient_ListOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		io.WriteString(w, `{
			"orders":[{"order_id":"101","name":"Ada Lovelace","status":"Pending","date_added":"2024-05-01","total":"12.50",
				"products":[{"product_id":"7","name":"Delivery","quantity":"1","price":"12.50","total":"12.50"}]}],
			"pagination":{"current_page":2,"total_pages":4}}`)
	})

	page, err := client.ListOrders(context.Background(), "tok", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.Text("101"), page.Items[0].OrderID)
	require.Len(t, page.Items[0].Products, 1)
	assert.Equal(t, domain.Text("1"), page.Items[0].Products[0].Quantity)
}

func TestClient_CreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantErr error
	}{
		{name: "Success", status: http.StatusOK, body: `{"success":true}`},
		{name: "Rejected", status: http.StatusOK, body: `{"success":false,"error":{"message":"Out of stock"}}`, wantMsg: "Out of stock"},
		{name: "Rejected with 422", status: http.StatusUnprocessableEntity, body: `{"success":false,"error":{"message":"Missing pickup"}}`, wantMsg: "Missing pickup"},
		{name: "Unauthorized", status: http.StatusUnauthorized, body: ``, wantErr: domain.ErrUnauthorized},
	}

	var customer domain.Customer
	require.NoError(t, json.Unmarshal([]byte(`{"customer_id": "9", "firstname": "Ada", "custom_field": [1, 2]}`), &customer))
	payload := domain.OrderPayload{
		Products:       []domain.OrderItem{{ProductID: 7, Quantity: 1}},
		Customer:       customer,
		PaymentAddress: domain.PaymentAddress{Firstname: "Ada", City: "Nairobi"},
		ErrandDetails:  domain.ErrandDetails{PickupLocation: "Depot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/custom_order", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{
					"products":[{"product_id":7,"quantity":1}],
					"customer":{"customer_id":"9","firstname":"Ada","custom_field":[1,2]},
					"payment_address":{"firstname":"Ada","lastname":"","address_1":"","city":"Nairobi","zone":"","country":"","postcode":""},
					"errand_details":{"pickup_location":"Depot","dropoff_location":"","comment":""}}`, string(body))
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			err := client.CreateOrder(context.Background(), "tok", payload)
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
			case tt.wantMsg != "":
				var apiErr *domain.APIError
				require.True(t, errors.As(err, &apiErr), "err = %v", err)
				assert.Equal(t, tt.wantMsg, apiErr.Message)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_LogoutIgnoresBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `not json`)
	})

	assert.NoError(t, client.Logout(context.Background(), "tok"))
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(ClientConfig{BaseURL: server.URL + "/api", Logger: logger.Discard()})

	_, err := client.ListOrders(context.Background(), "tok", 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Error(t, client.Logout(context.Background(), "tok"))
}
