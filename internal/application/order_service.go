// internal/application/order_service.go
package application

import (
	"context"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
)

type OrderService struct {
	gateway ports.GatewayPort
	limit   int
}

func NewOrderService(gateway ports.GatewayPort, limit int) *OrderService {
	if limit < 1 {
		limit = 10
	}
	return &OrderService{gateway: gateway, limit: limit}
}

// PlaceOrder submits a single unit of the draft's product on behalf of the customer.
func (s *OrderService) PlaceOrder(ctx context.Context, token string, draft domain.DraftOrder, customer domain.Customer) error {
	payload, err := draft.Payload(customer)
	if err != nil {
		return err
	}
	return s.gateway.CreateOrder(ctx, token, payload)
}

func (s *OrderService) ListOrders(ctx context.Context, token string, page int) (*domain.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	return s.gateway.ListOrders(ctx, token, page, s.limit)
}
