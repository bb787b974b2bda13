// internal/mockapi/server.go
package mockapi

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/auth"
)

type ctxKey int

const claimsKey ctxKey = iota

// Server serves the storefront JSON API from in-memory data.
type Server struct {
	data   *Data
	tokens *auth.Manager
	log    *logrus.Entry
}

func NewServer(data *Data, tokens *auth.Manager, log *logrus.Entry) *Server {
	return &Server{data: data, tokens: tokens, log: log.WithField("component", "mockapi")}
}

// Routes mounts the API under basePath, e.g. "/api".
func (s *Server) Routes(basePath string) http.Handler {
	r := mux.NewRouter()
	r.Use(requestID)

	api := r.PathPrefix("/" + strings.Trim(basePath, "/")).Subrouter()
	api.HandleFunc("/login", s.login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/logout", s.logout).Methods(http.MethodPost)
	authed.HandleFunc("/stores", s.listStores).Methods(http.MethodGet)
	authed.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	authed.HandleFunc("/orders", s.listOrders).Methods(http.MethodGet)
	authed.HandleFunc("/custom_order", s.createOrder).Methods(http.MethodPost)
	return r
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := s.data.Authenticate(req.Email, req.Password)
	if err != nil {
		writeFailure(w, http.StatusOK, err.Error())
		return
	}
	token, err := s.tokens.GenerateToken(customer.Email, string(customer.CustomerID))
	if err != nil {
		s.log.WithError(err).Error("failed to sign token")
		writeFailure(w, http.StatusInternalServerError, "Could not create session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"customer_token": token,
		"customer":       customer,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.tokens.Revoke(bearerToken(r))
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) listStores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stores":  s.data.Stores(),
	})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := paging(r)
	storeID, _ := strconv.ParseInt(r.URL.Query().Get("store_id"), 10, 64)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": s.data.Products(domain.NumericID(storeID), page, limit),
	})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	page, limit := paging(r)
	orders, total := s.data.Orders(domain.Text(claims.CustomerID), page, limit)

	lastPage := int(math.Ceil(float64(total) / float64(limit)))
	if lastPage < 1 {
		lastPage = 1
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
		"pagination": map[string]int{
			"current_page": page,
			"total_pages":  lastPage,
			"total":        total,
			"per_page":     limit,
		},
	})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	var payload domain.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := s.data.PlaceOrder(domain.Text(claims.CustomerID), payload)
	if err != nil {
		writeFailure(w, http.StatusOK, err.Error())
		return
	}
	s.log.WithFields(logrus.Fields{
		"order_id":    order.OrderID,
		"customer_id": claims.CustomerID,
	}).Info("order created")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"order_id": order.OrderID,
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeFailure(w, http.StatusUnauthorized, "missing authorization")
			return
		}
		claims, err := s.tokens.ValidateToken(token)
		if err != nil {
			writeFailure(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	if claims == nil {
		return &auth.Claims{}
	}
	return claims
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func paging(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	limit, _ = strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   map[string]string{"message": message},
	})
}
