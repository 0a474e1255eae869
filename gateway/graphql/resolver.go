// Package graphql provides the GraphQL surface of the gateway. Resolvers
// are thin: each delegates to one backend adapter call, translates the
// normalized error kind into a coded resolver error, and for order
// mutations fans out a best-effort domain event.
package graphql

import (
	"context"
	"log/slog"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/event"
	"github.com/mealgrid/gateway/gateway"
	"github.com/mealgrid/gateway/rpc/orderpb"
	"github.com/mealgrid/gateway/rpc/restaurantpb"
)

// Resolver is the root resolver over the backend adapters and the event
// publisher.
type Resolver struct {
	orders      gateway.OrderBackend
	restaurants gateway.RestaurantBackend
	events      gateway.EventPublisher
	logger      *slog.Logger
}

// NewResolver creates the root resolver.
func NewResolver(orders gateway.OrderBackend, restaurants gateway.RestaurantBackend, events gateway.EventPublisher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		orders:      orders,
		restaurants: restaurants,
		events:      events,
		logger:      logger.With("component", "graphql-surface"),
	}
}

// NewSchema parses the gateway schema against the resolver.
func NewSchema(r *Resolver) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(Schema, r, graphqlgo.UseFieldResolvers())
}

// NewHandler serves the schema over HTTP POST.
func NewHandler(schema *graphqlgo.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// OrderInput mirrors the createOrder wire contract.
type OrderInput struct {
	RestaurantID string
	Items        []OrderItemInput
}

// OrderItemInput is one line item of an order being created.
type OrderItemInput struct {
	Name     string
	Quantity int32
	Price    float64
}

// RestaurantInput mirrors the createRestaurant wire contract.
type RestaurantInput struct {
	Name string
	Menu []MenuItemInput
}

// MenuItemInput is one menu entry of a restaurant being created.
type MenuItemInput struct {
	Name  string
	Price float64
}

// Orders resolves the orders query.
func (r *Resolver) Orders(ctx context.Context) ([]orderpb.Order, error) {
	if r.orders.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "orders")
	}
	orders, err := r.orders.ListOrders(ctx)
	if err != nil {
		return nil, resolverError(err, "orders")
	}
	return orders, nil
}

// Order resolves the order query.
func (r *Resolver) Order(ctx context.Context, args struct{ ID string }) (*orderpb.Order, error) {
	if r.orders.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "order")
	}
	order, err := r.orders.GetOrder(ctx, args.ID)
	if err != nil {
		return nil, resolverError(err, "order")
	}
	return order, nil
}

// Restaurants resolves the restaurants query.
func (r *Resolver) Restaurants(ctx context.Context) ([]restaurantpb.Restaurant, error) {
	if r.restaurants.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "restaurants")
	}
	restaurants, err := r.restaurants.ListRestaurants(ctx)
	if err != nil {
		return nil, resolverError(err, "restaurants")
	}
	return restaurants, nil
}

// Restaurant resolves the restaurant query.
func (r *Resolver) Restaurant(ctx context.Context, args struct{ ID string }) (*restaurantpb.Restaurant, error) {
	if r.restaurants.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "restaurant")
	}
	restaurant, err := r.restaurants.GetRestaurant(ctx, args.ID)
	if err != nil {
		return nil, resolverError(err, "restaurant")
	}
	return restaurant, nil
}

// CreateOrder resolves the createOrder mutation. On success an
// order.created event is published before returning; the publish outcome
// never alters the mutation result.
func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input OrderInput }) (*orderpb.Order, error) {
	if r.orders.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "createOrder")
	}

	req := &orderpb.CreateOrderRequest{
		RestaurantID: args.Input.RestaurantID,
		Items:        orderItemsFromInput(args.Input.Items),
	}
	order, err := r.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, resolverError(err, "createOrder")
	}

	r.publish(ctx, event.TopicOrderCreated, order)
	return order, nil
}

// UpdateOrderStatus resolves the updateOrderStatus mutation. On success an
// order.status_updated event is published before returning.
func (r *Resolver) UpdateOrderStatus(ctx context.Context, args struct{ ID, Status string }) (*orderpb.Order, error) {
	if r.orders.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "updateOrderStatus")
	}

	order, err := r.orders.UpdateOrderStatus(ctx, args.ID, args.Status)
	if err != nil {
		return nil, resolverError(err, "updateOrderStatus")
	}

	r.publish(ctx, event.TopicOrderStatusUpdated, order)
	return order, nil
}

// CreateRestaurant resolves the createRestaurant mutation. Restaurant
// mutations emit no domain events.
func (r *Resolver) CreateRestaurant(ctx context.Context, args struct{ Input RestaurantInput }) (*restaurantpb.Restaurant, error) {
	if r.restaurants.Degraded() {
		return nil, resolverError(errors.ErrBackendDegraded, "createRestaurant")
	}

	req := &restaurantpb.CreateRestaurantRequest{
		Name: args.Input.Name,
		Menu: menuFromInput(args.Input.Menu),
	}
	restaurant, err := r.restaurants.CreateRestaurant(ctx, req)
	if err != nil {
		return nil, resolverError(err, "createRestaurant")
	}
	return restaurant, nil
}

// publish fans out an order event. The outcome is intentionally dropped:
// mutation responses reflect the RPC result only.
func (r *Resolver) publish(ctx context.Context, topic string, order *orderpb.Order) {
	payload := event.OrderEvent{OrderID: order.ID, Status: order.Status}
	if err := r.events.Publish(ctx, topic, payload); err != nil {
		r.logger.Debug("event publish skipped", "topic", topic, "order_id", order.ID, "error", err)
	}
}

func orderItemsFromInput(items []OrderItemInput) []orderpb.OrderItem {
	out := make([]orderpb.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, orderpb.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return out
}

func menuFromInput(menu []MenuItemInput) []restaurantpb.MenuItem {
	out := make([]restaurantpb.MenuItem, 0, len(menu))
	for _, m := range menu {
		out = append(out, restaurantpb.MenuItem{Name: m.Name, Price: m.Price})
	}
	return out
}
