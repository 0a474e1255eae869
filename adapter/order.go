package adapter

import (
	"context"
	"log/slog"
	"sync/atomic"

	"google.golang.org/grpc"

	"github.com/mealgrid/gateway/rpc"
	"github.com/mealgrid/gateway/rpc/orderpb"
)

const orderComponent = "OrderAdapter"

// OrderAdapter wraps the single connection to the Order service.
type OrderAdapter struct {
	client orderpb.OrderServiceClient
	conn   *grpc.ClientConn
	logger *slog.Logger
	state  atomic.Int32
}

// DialOrder creates the Order adapter with one long-lived connection. If
// the connection cannot be established the adapter comes up degraded
// instead of failing gateway startup.
func DialOrder(addr string, logger *slog.Logger) *OrderAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	a := &OrderAdapter{logger: logger.With("component", "order-adapter")}

	conn, err := grpc.NewClient(addr, rpc.DialOptions()...)
	if err != nil {
		a.logger.Error("order service connection failed, adapter degraded",
			"addr", addr, "error", err)
		a.state.Store(int32(StateDegraded))
		return a
	}

	a.conn = conn
	a.client = orderpb.NewOrderServiceClient(conn)
	a.state.Store(int32(StateConnected))
	a.logger.Info("order adapter connected", "addr", addr)
	return a
}

// NewOrderAdapter creates a connected adapter over an existing client stub.
func NewOrderAdapter(client orderpb.OrderServiceClient, logger *slog.Logger) *OrderAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	a := &OrderAdapter{
		client: client,
		logger: logger.With("component", "order-adapter"),
	}
	a.state.Store(int32(StateConnected))
	return a
}

// State returns the adapter lifecycle state.
func (a *OrderAdapter) State() State {
	return State(a.state.Load())
}

// Degraded reports whether the adapter permanently short-circuits calls.
func (a *OrderAdapter) Degraded() bool {
	return a.State() == StateDegraded
}

// Close releases the backend connection.
func (a *OrderAdapter) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// ListOrders fetches every order. One fresh RPC per call, no caching.
func (a *OrderAdapter) ListOrders(ctx context.Context) ([]orderpb.Order, error) {
	if a.Degraded() {
		return nil, degraded(orderComponent, "ListOrders")
	}
	resp, err := a.client.GetAllOrders(ctx, &orderpb.GetAllOrdersRequest{})
	if err != nil {
		return nil, normalize(err, orderComponent, "ListOrders", a.logger)
	}
	return resp.Orders, nil
}

// GetOrder fetches a single order by identifier. Identifier presence is not
// validated here; the backend is the authority on validation.
func (a *OrderAdapter) GetOrder(ctx context.Context, id string) (*orderpb.Order, error) {
	if a.Degraded() {
		return nil, degraded(orderComponent, "GetOrder")
	}
	order, err := a.client.GetOrder(ctx, &orderpb.GetOrderRequest{ID: id})
	if err != nil {
		return nil, normalize(err, orderComponent, "GetOrder", a.logger)
	}
	return order, nil
}

// CreateOrder forwards a new order to the backend.
func (a *OrderAdapter) CreateOrder(ctx context.Context, req *orderpb.CreateOrderRequest) (*orderpb.Order, error) {
	if a.Degraded() {
		return nil, degraded(orderComponent, "CreateOrder")
	}
	order, err := a.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, normalize(err, orderComponent, "CreateOrder", a.logger)
	}
	return order, nil
}

// UpdateOrderStatus mutates the status of an existing order.
func (a *OrderAdapter) UpdateOrderStatus(ctx context.Context, id, orderStatus string) (*orderpb.Order, error) {
	if a.Degraded() {
		return nil, degraded(orderComponent, "UpdateOrderStatus")
	}
	order, err := a.client.UpdateOrderStatus(ctx, &orderpb.UpdateOrderStatusRequest{
		ID:     id,
		Status: orderStatus,
	})
	if err != nil {
		return nil, normalize(err, orderComponent, "UpdateOrderStatus", a.logger)
	}
	return order, nil
}
