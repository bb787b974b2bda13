// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

// GatewayPort is the remote storefront API.
type GatewayPort interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ListStores(ctx context.Context, token string) ([]domain.Store, error)
	ListProducts(ctx context.Context, token string, storeID domain.NumericID, page, limit int) (*domain.ProductPage, error)
	ListOrders(ctx context.Context, token string, page, limit int) (*domain.OrderPage, error)
	CreateOrder(ctx context.Context, token string, payload domain.OrderPayload) error
}

// KeyValueStorePort is a durable key/value store. Get returns domain.ErrNotFound for a missing key.
type KeyValueStorePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
