package adapter

import (
	"context"
	"log/slog"
	"sync/atomic"

	"google.golang.org/grpc"

	"github.com/mealgrid/gateway/rpc"
	"github.com/mealgrid/gateway/rpc/restaurantpb"
)

const restaurantComponent = "RestaurantAdapter"

// RestaurantAdapter wraps the single connection to the Restaurant service.
type RestaurantAdapter struct {
	client restaurantpb.RestaurantServiceClient
	conn   *grpc.ClientConn
	logger *slog.Logger
	state  atomic.Int32
}

// DialRestaurant creates the Restaurant adapter with one long-lived
// connection, degrading instead of failing startup when the connection
// cannot be established.
func DialRestaurant(addr string, logger *slog.Logger) *RestaurantAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	a := &RestaurantAdapter{logger: logger.With("component", "restaurant-adapter")}

	conn, err := grpc.NewClient(addr, rpc.DialOptions()...)
	if err != nil {
		a.logger.Error("restaurant service connection failed, adapter degraded",
			"addr", addr, "error", err)
		a.state.Store(int32(StateDegraded))
		return a
	}

	a.conn = conn
	a.client = restaurantpb.NewRestaurantServiceClient(conn)
	a.state.Store(int32(StateConnected))
	a.logger.Info("restaurant adapter connected", "addr", addr)
	return a
}

// NewRestaurantAdapter creates a connected adapter over an existing client stub.
func NewRestaurantAdapter(client restaurantpb.RestaurantServiceClient, logger *slog.Logger) *RestaurantAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	a := &RestaurantAdapter{
		client: client,
		logger: logger.With("component", "restaurant-adapter"),
	}
	a.state.Store(int32(StateConnected))
	return a
}

// State returns the adapter lifecycle state.
func (a *RestaurantAdapter) State() State {
	return State(a.state.Load())
}

// Degraded reports whether the adapter permanently short-circuits calls.
func (a *RestaurantAdapter) Degraded() bool {
	return a.State() == StateDegraded
}

// Close releases the backend connection.
func (a *RestaurantAdapter) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// ListRestaurants fetches every restaurant. One fresh RPC per call.
func (a *RestaurantAdapter) ListRestaurants(ctx context.Context) ([]restaurantpb.Restaurant, error) {
	if a.Degraded() {
		return nil, degraded(restaurantComponent, "ListRestaurants")
	}
	resp, err := a.client.GetAllRestaurants(ctx, &restaurantpb.GetAllRestaurantsRequest{})
	if err != nil {
		return nil, normalize(err, restaurantComponent, "ListRestaurants", a.logger)
	}
	return resp.Restaurants, nil
}

// GetRestaurant fetches a single restaurant by identifier.
func (a *RestaurantAdapter) GetRestaurant(ctx context.Context, id string) (*restaurantpb.Restaurant, error) {
	if a.Degraded() {
		return nil, degraded(restaurantComponent, "GetRestaurant")
	}
	restaurant, err := a.client.GetRestaurant(ctx, &restaurantpb.GetRestaurantRequest{ID: id})
	if err != nil {
		return nil, normalize(err, restaurantComponent, "GetRestaurant", a.logger)
	}
	return restaurant, nil
}

// CreateRestaurant forwards a new restaurant to the backend.
func (a *RestaurantAdapter) CreateRestaurant(ctx context.Context, req *restaurantpb.CreateRestaurantRequest) (*restaurantpb.Restaurant, error) {
	if a.Degraded() {
		return nil, degraded(restaurantComponent, "CreateRestaurant")
	}
	restaurant, err := a.client.CreateRestaurant(ctx, req)
	if err != nil {
		return nil, normalize(err, restaurantComponent, "CreateRestaurant", a.logger)
	}
	return restaurant, nil
}
