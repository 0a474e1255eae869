package adapter

import (
	"context"
	"net"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/rpc"
	"github.com/mealgrid/gateway/rpc/orderpb"
)

// fakeOrderClient counts calls and returns a fixed response or error.
type fakeOrderClient struct {
	calls atomic.Int32
	order *orderpb.Order
	list  *orderpb.OrderList
	err   error
}

func (f *fakeOrderClient) GetAllOrders(_ context.Context, _ *orderpb.GetAllOrdersRequest, _ ...grpc.CallOption) (*orderpb.OrderList, error) {
	f.calls.Add(1)
	return f.list, f.err
}

func (f *fakeOrderClient) GetOrder(_ context.Context, _ *orderpb.GetOrderRequest, _ ...grpc.CallOption) (*orderpb.Order, error) {
	f.calls.Add(1)
	return f.order, f.err
}

func (f *fakeOrderClient) CreateOrder(_ context.Context, _ *orderpb.CreateOrderRequest, _ ...grpc.CallOption) (*orderpb.Order, error) {
	f.calls.Add(1)
	return f.order, f.err
}

func (f *fakeOrderClient) UpdateOrderStatus(_ context.Context, _ *orderpb.UpdateOrderStatusRequest, _ ...grpc.CallOption) (*orderpb.Order, error) {
	f.calls.Add(1)
	return f.order, f.err
}

func degradedOrderAdapter(client *fakeOrderClient) *OrderAdapter {
	a := NewOrderAdapter(client, nil)
	a.state.Store(int32(StateDegraded))
	return a
}

func TestDegradedAdapterShortCircuitsWithoutNetworkCalls(t *testing.T) {
	ctx := context.Background()
	fake := &fakeOrderClient{}
	a := degradedOrderAdapter(fake)

	_, err := a.ListOrders(ctx)
	assert.True(t, errors.IsUnavailable(err))

	_, err = a.GetOrder(ctx, "42")
	assert.True(t, errors.IsUnavailable(err))

	_, err = a.CreateOrder(ctx, &orderpb.CreateOrderRequest{})
	assert.True(t, errors.IsUnavailable(err))

	_, err = a.UpdateOrderStatus(ctx, "42", orderpb.StatusReady)
	assert.True(t, errors.IsUnavailable(err))

	assert.Equal(t, int32(0), fake.calls.Load(), "degraded adapter must not attempt the network")
	assert.Equal(t, StateDegraded, a.State())
	assert.True(t, a.Degraded())
}

func TestConnectedAdapterState(t *testing.T) {
	a := NewOrderAdapter(&fakeOrderClient{}, nil)
	assert.Equal(t, StateConnected, a.State())
	assert.False(t, a.Degraded())
}

func TestErrorNormalization(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		kind  errors.Kind
	}{
		{"not found status", status.Error(codes.NotFound, "order not found"), errors.IsNotFound, errors.KindNotFound},
		{"invalid argument status", status.Error(codes.InvalidArgument, "bad payload"), errors.IsInvalid, errors.KindInvalid},
		{"failed precondition status", status.Error(codes.FailedPrecondition, "wrong state"), errors.IsInvalid, errors.KindInvalid},
		{"unavailable status", status.Error(codes.Unavailable, "connection refused"), errors.IsUnavailable, errors.KindUnavailable},
		{"deadline status", status.Error(codes.DeadlineExceeded, "timed out"), errors.IsUnavailable, errors.KindUnavailable},
		{"internal status", status.Error(codes.Internal, "boom"), func(err error) bool {
			return errors.KindOf(err) == errors.KindInternal
		}, errors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeOrderClient{err: tt.err}
			a := NewOrderAdapter(fake, nil)

			_, err := a.GetOrder(context.Background(), "42")
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.kind, errors.KindOf(err))
			assert.Equal(t, int32(1), fake.calls.Load())
		})
	}
}

func TestEachReadIssuesFreshCall(t *testing.T) {
	fake := &fakeOrderClient{list: &orderpb.OrderList{Orders: []orderpb.Order{
		{ID: "1", Status: orderpb.StatusCreated},
	}}}
	a := NewOrderAdapter(fake, nil)

	for i := 0; i < 3; i++ {
		orders, err := a.ListOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "1", orders[0].ID)
	}
	assert.Equal(t, int32(3), fake.calls.Load(), "reads must not be cached")
}

// stubOrderBackend is an in-process Order service used to exercise the full
// wire path: codec, stubs, and status propagation.
type stubOrderBackend struct {
	orders map[string]*orderpb.Order
}

func (s *stubOrderBackend) GetAllOrders(_ context.Context, _ *orderpb.GetAllOrdersRequest) (*orderpb.OrderList, error) {
	list := &orderpb.OrderList{}
	for _, o := range s.orders {
		list.Orders = append(list.Orders, *o)
	}
	return list, nil
}

func (s *stubOrderBackend) GetOrder(_ context.Context, in *orderpb.GetOrderRequest) (*orderpb.Order, error) {
	o, ok := s.orders[in.ID]
	if !ok {
		return nil, status.Error(codes.NotFound, "order not found")
	}
	return o, nil
}

func (s *stubOrderBackend) CreateOrder(_ context.Context, in *orderpb.CreateOrderRequest) (*orderpb.Order, error) {
	if in.RestaurantID == "" {
		return nil, status.Error(codes.InvalidArgument, "restaurant_id is required")
	}
	o := &orderpb.Order{ID: "100", RestaurantID: in.RestaurantID, Status: orderpb.StatusCreated, Items: in.Items}
	s.orders[o.ID] = o
	return o, nil
}

func (s *stubOrderBackend) UpdateOrderStatus(_ context.Context, in *orderpb.UpdateOrderStatusRequest) (*orderpb.Order, error) {
	o, ok := s.orders[in.ID]
	if !ok {
		return nil, status.Error(codes.NotFound, "order not found")
	}
	o.Status = in.Status
	return o, nil
}

func dialOrderBackend(t *testing.T, backend orderpb.OrderServiceServer) *OrderAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	orderpb.RegisterOrderServiceServer(srv, backend)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	conn, err := grpc.NewClient("passthrough:///orders",
		rpc.DialOptions(grpc.WithContextDialer(dialer))...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewOrderAdapter(orderpb.NewOrderServiceClient(conn), nil)
}

func TestOrderAdapterOverWire(t *testing.T) {
	backend := &stubOrderBackend{orders: map[string]*orderpb.Order{
		"42": {ID: "42", Status: orderpb.StatusCreated},
	}}
	a := dialOrderBackend(t, backend)
	ctx := context.Background()

	t.Run("get existing order", func(t *testing.T) {
		order, err := a.GetOrder(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "42", order.ID)
		assert.Equal(t, orderpb.StatusCreated, order.Status)
	})

	t.Run("get missing order is not found", func(t *testing.T) {
		_, err := a.GetOrder(ctx, "99")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("create order", func(t *testing.T) {
		order, err := a.CreateOrder(ctx, &orderpb.CreateOrderRequest{
			RestaurantID: "7",
			Items:        []orderpb.OrderItem{{Name: "margherita", Quantity: 2, Price: 11.5}},
		})
		require.NoError(t, err)
		assert.Equal(t, orderpb.StatusCreated, order.Status)
		assert.Equal(t, "7", order.RestaurantID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int32(2), order.Items[0].Quantity)
	})

	t.Run("create order with rejected payload is invalid", func(t *testing.T) {
		_, err := a.CreateOrder(ctx, &orderpb.CreateOrderRequest{})
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("update order status", func(t *testing.T) {
		order, err := a.UpdateOrderStatus(ctx, "42", orderpb.StatusPreparing)
		require.NoError(t, err)
		assert.Equal(t, orderpb.StatusPreparing, order.Status)
	})
}
