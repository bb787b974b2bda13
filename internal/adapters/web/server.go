// internal/adapters/web/server.go
package web

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/application"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ui"
)

// Pinger reports whether session storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes the storefront controller as HTML pages. Every POST
// performs one intent and redirects back to the index.
type Server struct {
	ctrl    *application.Controller
	storage Pinger
	log     *logrus.Entry
}

func NewServer(ctrl *application.Controller, storage Pinger, log *logrus.Entry) *Server {
	return &Server{ctrl: ctrl, storage: storage, log: log.WithField("component", "web")}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.logout).Methods(http.MethodPost)
	r.HandleFunc("/stores/refresh", s.refreshStores).Methods(http.MethodPost)
	r.HandleFunc("/stores/{id:[0-9]+}/select", s.selectStore).Methods(http.MethodPost)
	r.HandleFunc("/products/page", s.productPage).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}/select", s.selectProduct).Methods(http.MethodPost)
	r.HandleFunc("/order", s.order).Methods(http.MethodPost)
	r.HandleFunc("/order/cancel", s.cancelOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", s.viewOrders).Methods(http.MethodPost)
	r.HandleFunc("/orders/page", s.orderPage).Methods(http.MethodPost)
	r.HandleFunc("/orders/back", s.backToMain).Methods(http.MethodPost)
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := ui.Render(&buf, ui.Build(s.ctrl.View())); err != nil {
		s.log.WithError(err).Error("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.storage != nil {
		if err := s.storage.Ping(r.Context()); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	s.ctrl.SubmitLogin(r.Context(), strings.TrimSpace(r.PostForm.Get("email")), r.PostForm.Get("password"))
	back(w, r)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Logout(r.Context())
	back(w, r)
}

func (s *Server) selectStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid store id", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.SelectStore(r.Context(), id); err != nil {
		s.log.WithError(err).Warn("store selection ignored")
	}
	back(w, r)
}

func (s *Server) refreshStores(w http.ResponseWriter, r *http.Request) {
	s.ctrl.RefreshStores(r.Context())
	back(w, r)
}

func (s *Server) productPage(w http.ResponseWriter, r *http.Request) {
	page, ok := formPage(r)
	if !ok {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	s.ctrl.ChangeProductPage(r.Context(), page)
	back(w, r)
}

func (s *Server) selectProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := s.ctrl.SelectProduct(id); err != nil {
		s.log.WithError(err).Warn("product selection ignored")
	}
	back(w, r)
}

// order merges the submitted form fields into the draft, then places the
// order when action=submit.
func (s *Server) order(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	for key, values := range r.PostForm {
		group, field, found := strings.Cut(key, ".")
		if !found || len(values) == 0 {
			continue
		}
		var err error
		switch group {
		case ui.GroupPaymentAddress:
			err = s.ctrl.EditPaymentAddress(field, values[0])
		case ui.GroupErrandDetails:
			err = s.ctrl.EditErrandDetails(field, values[0])
		default:
			continue
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if r.PostForm.Get("action") == "submit" {
		s.ctrl.SubmitOrder(r.Context())
	}
	back(w, r)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	s.ctrl.CancelOrder()
	back(w, r)
}

func (s *Server) viewOrders(w http.ResponseWriter, r *http.Request) {
	s.ctrl.ViewOrders(r.Context())
	back(w, r)
}

func (s *Server) orderPage(w http.ResponseWriter, r *http.Request) {
	page, ok := formPage(r)
	if !ok {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	s.ctrl.ChangeOrderPage(r.Context(), page)
	back(w, r)
}

func (s *Server) backToMain(w http.ResponseWriter, r *http.Request) {
	s.ctrl.BackToMain()
	back(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request")
	})
}

func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func pathID(r *http.Request) (domain.NumericID, error) {
	n, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return domain.NumericID(n), err
}

func formPage(r *http.Request) (int, bool) {
	if err := r.ParseForm(); err != nil {
		return 0, false
	}
	page, err := strconv.Atoi(r.PostForm.Get("page"))
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
