// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/auth"
)

type AuthService struct {
	gateway  ports.GatewayPort
	sessions *SessionStore
	log      *logrus.Entry
}

func NewAuthService(gateway ports.GatewayPort, sessions *SessionStore, log *logrus.Entry) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions, log: log.WithField("component", "auth")}
}

// Login authenticates and persists the session. A persistence failure is
// logged and does not fail the login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	res, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, errors.New("login response carried no token")
	}
	if res.Customer.Empty() {
		return nil, errors.New("login response carried no customer")
	}
	sess := &domain.Session{Token: res.Token, Customer: res.Customer}
	if err := s.sessions.SaveSession(ctx, *sess); err != nil {
		s.log.WithError(err).Error("failed to persist session")
	}
	s.log.WithField("email", email).Info("customer logged in")
	return sess, nil
}

// Logout calls the remote logout best-effort, then clears the session and selected store.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if err := s.gateway.Logout(ctx, token); err != nil {
		s.log.WithError(err).Error("error during logout API call")
	}
	s.forget(ctx)
	s.log.Info("customer logged out")
}

// Expire drops a session the server no longer accepts. No remote call is made.
func (s *AuthService) Expire(ctx context.Context) {
	s.forget(ctx)
	s.log.Warn("session expired")
}

func (s *AuthService) forget(ctx context.Context) {
	if err := s.sessions.ClearSession(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear persisted session")
	}
	if err := s.sessions.ClearSelectedStore(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear persisted store")
	}
}

// Restore loads a persisted session, returning nil when there is none.
func (s *AuthService) Restore(ctx context.Context) *domain.Session {
	sess, err := s.sessions.LoadSession(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not restore session")
		return nil
	}
	if sess == nil {
		return nil
	}
	// diagnostics only: the server stays the authority on token validity
	if claims, err := auth.Inspect(sess.Token); err == nil && claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		s.log.WithField("expired_at", claims.ExpiresAt.Time).Warn("restored token looks expired")
	}
	return sess
}
