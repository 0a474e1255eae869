package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/rpc/orderpb"
	"github.com/mealgrid/gateway/rpc/restaurantpb"
)

type fakeOrders struct {
	degraded bool
}

func (f *fakeOrders) Degraded() bool { return f.degraded }

func (f *fakeOrders) ListOrders(ctx context.Context) ([]orderpb.Order, error) {
	return []orderpb.Order{{ID: "42", RestaurantID: "7", Status: orderpb.StatusCreated}}, nil
}

func (f *fakeOrders) GetOrder(ctx context.Context, id string) (*orderpb.Order, error) {
	if id != "42" {
		return nil, errors.WrapNotFound(errors.ErrNotFound, "OrderAdapter", "GetOrder", "get order "+id)
	}
	return &orderpb.Order{ID: "42", RestaurantID: "7", Status: orderpb.StatusCreated}, nil
}

func (f *fakeOrders) CreateOrder(ctx context.Context, req *orderpb.CreateOrderRequest) (*orderpb.Order, error) {
	return &orderpb.Order{ID: "100", RestaurantID: req.RestaurantID, Status: orderpb.StatusCreated, Items: req.Items}, nil
}

func (f *fakeOrders) UpdateOrderStatus(ctx context.Context, id, status string) (*orderpb.Order, error) {
	return &orderpb.Order{ID: id, RestaurantID: "7", Status: status}, nil
}

type fakeRestaurants struct {
	degraded bool
}

func (f *fakeRestaurants) Degraded() bool { return f.degraded }

func (f *fakeRestaurants) ListRestaurants(ctx context.Context) ([]restaurantpb.Restaurant, error) {
	return []restaurantpb.Restaurant{{ID: "7", Name: "Luigi's"}}, nil
}

func (f *fakeRestaurants) GetRestaurant(ctx context.Context, id string) (*restaurantpb.Restaurant, error) {
	return &restaurantpb.Restaurant{ID: id, Name: "Luigi's"}, nil
}

func (f *fakeRestaurants) CreateRestaurant(ctx context.Context, req *restaurantpb.CreateRestaurantRequest) (*restaurantpb.Restaurant, error) {
	return &restaurantpb.Restaurant{ID: "8", Name: req.Name, Menu: req.Menu}, nil
}

type fakeEvents struct {
	degraded bool
}

func (f *fakeEvents) Degraded() bool { return f.degraded }

func (f *fakeEvents) Publish(ctx context.Context, topic string, payload any) error {
	return nil
}

func newTestServer(t *testing.T, orders *fakeOrders, restaurants *fakeRestaurants, events *fakeEvents) *Server {
	t.Helper()
	s, err := New(Options{
		ListenAddr:  "127.0.0.1:0",
		Orders:      orders,
		Restaurants: restaurants,
		Events:      events,
	})
	require.NoError(t, err)
	return s
}

func TestNewRejectsMissingDependencies(t *testing.T) {
	_, err := New(Options{ListenAddr: ":3001"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestNewRejectsMissingListenAddr(t *testing.T) {
	_, err := New(Options{
		Orders:      &fakeOrders{},
		Restaurants: &fakeRestaurants{},
		Events:      &fakeEvents{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestHealthReportsPerDependencyState(t *testing.T) {
	orders := &fakeOrders{degraded: true}
	s := newTestServer(t, orders, &fakeRestaurants{}, &fakeEvents{degraded: true})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "degraded", body["order_service"])
	assert.Equal(t, "connected", body["restaurant_service"])
	assert.Equal(t, "degraded", body["bus"])
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	s := newTestServer(t, &fakeOrders{}, &fakeRestaurants{}, &fakeEvents{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-7")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "req-7", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRESTAndGraphQLShareOneRouter(t *testing.T) {
	s := newTestServer(t, &fakeOrders{}, &fakeRestaurants{}, &fakeEvents{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	query := `{"query": "{ order(id: \"42\") { id status } }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(query))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Order struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"order"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "42", resp.Data.Order.ID)
	assert.Equal(t, "created", resp.Data.Order.Status)
}

func TestMetricsEndpointIsExposed(t *testing.T) {
	s := newTestServer(t, &fakeOrders{}, &fakeRestaurants{}, &fakeEvents{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStartStopLifecycle(t *testing.T) {
	s := newTestServer(t, &fakeOrders{}, &fakeRestaurants{}, &fakeEvents{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx, ready)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server never became ready")
	}
	assert.True(t, s.IsRunning())

	require.NoError(t, s.Stop(5*time.Second))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
	assert.False(t, s.IsRunning())
}
