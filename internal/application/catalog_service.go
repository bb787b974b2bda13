// internal/application/catalog_service.go
package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
)

type CatalogService struct {
	gateway  ports.GatewayPort
	sessions *SessionStore
	limit    int
	log      *logrus.Entry
}

func NewCatalogService(gateway ports.GatewayPort, sessions *SessionStore, limit int, log *logrus.Entry) *CatalogService {
	if limit < 1 {
		limit = 10
	}
	return &CatalogService{gateway: gateway, sessions: sessions, limit: limit, log: log.WithField("component", "catalog")}
}

func (s *CatalogService) Stores(ctx context.Context, token string) ([]domain.Store, error) {
	return s.gateway.ListStores(ctx, token)
}

func (s *CatalogService) Products(ctx context.Context, token string, storeID domain.NumericID, page int) (*domain.ProductPage, error) {
	return s.gateway.ListProducts(ctx, token, storeID, page, s.limit)
}

// Remember persists the selected store. Failures are logged only.
func (s *CatalogService) Remember(ctx context.Context, store domain.Store) {
	if err := s.sessions.SaveSelectedStore(ctx, store); err != nil {
		s.log.WithError(err).Error("failed to persist selected store")
	}
}

// Forget drops a persisted store selection.
func (s *CatalogService) Forget(ctx context.Context) {
	if err := s.sessions.ClearSelectedStore(ctx); err != nil {
		s.log.WithError(err).Error("failed to clear selected store")
	}
}

func (s *CatalogService) RestoreSelection(ctx context.Context) *domain.Store {
	store, err := s.sessions.LoadSelectedStore(ctx)
	if err != nil {
		s.log.WithError(err).Warn("could not restore selected store")
		return nil
	}
	return store
}
