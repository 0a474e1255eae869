// Package restaurantpb contains the wire types and call stubs for the
// Restaurant service contract (rpc/restaurant.proto).
package restaurantpb

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name of the Restaurant service.
const ServiceName = "restaurant.RestaurantService"

// Restaurant is a single restaurant as owned by the Restaurant service.
type Restaurant struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Menu []MenuItem `json:"menu"`
}

// MenuItem is one menu entry.
type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GetAllRestaurantsRequest is the empty request of GetAllRestaurants.
type GetAllRestaurantsRequest struct{}

// RestaurantList is the response of GetAllRestaurants.
type RestaurantList struct {
	Restaurants []Restaurant `json:"restaurants"`
}

// GetRestaurantRequest identifies a single restaurant.
type GetRestaurantRequest struct {
	ID string `json:"id"`
}

// CreateRestaurantRequest carries the fields of a new restaurant.
type CreateRestaurantRequest struct {
	Name string     `json:"name"`
	Menu []MenuItem `json:"menu"`
}

// RestaurantServiceClient is the client API of the Restaurant service.
type RestaurantServiceClient interface {
	GetAllRestaurants(ctx context.Context, in *GetAllRestaurantsRequest, opts ...grpc.CallOption) (*RestaurantList, error)
	GetRestaurant(ctx context.Context, in *GetRestaurantRequest, opts ...grpc.CallOption) (*Restaurant, error)
	CreateRestaurant(ctx context.Context, in *CreateRestaurantRequest, opts ...grpc.CallOption) (*Restaurant, error)
}

type restaurantServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRestaurantServiceClient returns a client stub bound to cc.
func NewRestaurantServiceClient(cc grpc.ClientConnInterface) RestaurantServiceClient {
	return &restaurantServiceClient{cc: cc}
}

func (c *restaurantServiceClient) GetAllRestaurants(ctx context.Context, in *GetAllRestaurantsRequest, opts ...grpc.CallOption) (*RestaurantList, error) {
	out := new(RestaurantList)
	if err := c.cc.Invoke(ctx, "/restaurant.RestaurantService/GetAllRestaurants", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restaurantServiceClient) GetRestaurant(ctx context.Context, in *GetRestaurantRequest, opts ...grpc.CallOption) (*Restaurant, error) {
	out := new(Restaurant)
	if err := c.cc.Invoke(ctx, "/restaurant.RestaurantService/GetRestaurant", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restaurantServiceClient) CreateRestaurant(ctx context.Context, in *CreateRestaurantRequest, opts ...grpc.CallOption) (*Restaurant, error) {
	out := new(Restaurant)
	if err := c.cc.Invoke(ctx, "/restaurant.RestaurantService/CreateRestaurant", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RestaurantServiceServer is the server API of the Restaurant service.
// In-process test backends register against it.
type RestaurantServiceServer interface {
	GetAllRestaurants(ctx context.Context, in *GetAllRestaurantsRequest) (*RestaurantList, error)
	GetRestaurant(ctx context.Context, in *GetRestaurantRequest) (*Restaurant, error)
	CreateRestaurant(ctx context.Context, in *CreateRestaurantRequest) (*Restaurant, error)
}

// RegisterRestaurantServiceServer registers srv with the gRPC service registrar.
func RegisterRestaurantServiceServer(s grpc.ServiceRegistrar, srv RestaurantServiceServer) {
	s.RegisterService(&RestaurantService_ServiceDesc, srv)
}

func _RestaurantService_GetAllRestaurants_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAllRestaurantsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RestaurantServiceServer).GetAllRestaurants(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/restaurant.RestaurantService/GetAllRestaurants"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RestaurantServiceServer).GetAllRestaurants(ctx, req.(*GetAllRestaurantsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RestaurantService_GetRestaurant_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRestaurantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RestaurantServiceServer).GetRestaurant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/restaurant.RestaurantService/GetRestaurant"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RestaurantServiceServer).GetRestaurant(ctx, req.(*GetRestaurantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RestaurantService_CreateRestaurant_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateRestaurantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RestaurantServiceServer).CreateRestaurant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/restaurant.RestaurantService/CreateRestaurant"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RestaurantServiceServer).CreateRestaurant(ctx, req.(*CreateRestaurantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RestaurantService_ServiceDesc is the grpc.ServiceDesc for the Restaurant service.
var RestaurantService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RestaurantServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllRestaurants", Handler: _RestaurantService_GetAllRestaurants_Handler},
		{MethodName: "GetRestaurant", Handler: _RestaurantService_GetRestaurant_Handler},
		{MethodName: "CreateRestaurant", Handler: _RestaurantService_CreateRestaurant_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpc/restaurant.proto",
}
