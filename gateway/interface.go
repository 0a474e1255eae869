package gateway

import (
	"context"

	"github.com/mealgrid/gateway/rpc/orderpb"
	"github.com/mealgrid/gateway/rpc/restaurantpb"
)

// OrderBackend is the Order adapter surface consumed by both protocol
// surfaces. Every read issues one fresh RPC; the gateway holds no
// authoritative copy of any entity.
type OrderBackend interface {
	// Degraded reports whether the backend connection was never
	// established; surfaces short-circuit to their unavailable response
	// before invoking any operation.
	Degraded() bool

	ListOrders(ctx context.Context) ([]orderpb.Order, error)
	GetOrder(ctx context.Context, id string) (*orderpb.Order, error)
	CreateOrder(ctx context.Context, req *orderpb.CreateOrderRequest) (*orderpb.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*orderpb.Order, error)
}

// RestaurantBackend is the Restaurant adapter surface consumed by the
// protocol surfaces.
type RestaurantBackend interface {
	Degraded() bool

	ListRestaurants(ctx context.Context) ([]restaurantpb.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*restaurantpb.Restaurant, error)
	CreateRestaurant(ctx context.Context, req *restaurantpb.CreateRestaurantRequest) (*restaurantpb.Restaurant, error)
}

// EventPublisher is the best-effort domain event side channel. Publish
// errors are informational; callers are permitted to ignore them and must
// never let them alter an already-determined response.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
