package adapter

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mealgrid/gateway/errors"
	"github.com/mealgrid/gateway/rpc/restaurantpb"
)

type fakeRestaurantClient struct {
	calls      atomic.Int32
	restaurant *restaurantpb.Restaurant
	list       *restaurantpb.RestaurantList
	err        error
}

func (f *fakeRestaurantClient) GetAllRestaurants(_ context.Context, _ *restaurantpb.GetAllRestaurantsRequest, _ ...grpc.CallOption) (*restaurantpb.RestaurantList, error) {
	f.calls.Add(1)
	return f.list, f.err
}

func (f *fakeRestaurantClient) GetRestaurant(_ context.Context, _ *restaurantpb.GetRestaurantRequest, _ ...grpc.CallOption) (*restaurantpb.Restaurant, error) {
	f.calls.Add(1)
	return f.restaurant, f.err
}

func (f *fakeRestaurantClient) CreateRestaurant(_ context.Context, _ *restaurantpb.CreateRestaurantRequest, _ ...grpc.CallOption) (*restaurantpb.Restaurant, error) {
	f.calls.Add(1)
	return f.restaurant, f.err
}

func TestDegradedRestaurantAdapterShortCircuits(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRestaurantClient{}
	a := NewRestaurantAdapter(fake, nil)
	a.state.Store(int32(StateDegraded))

	_, err := a.ListRestaurants(ctx)
	assert.True(t, errors.IsUnavailable(err))

	_, err = a.GetRestaurant(ctx, "7")
	assert.True(t, errors.IsUnavailable(err))

	_, err = a.CreateRestaurant(ctx, &restaurantpb.CreateRestaurantRequest{})
	assert.True(t, errors.IsUnavailable(err))

	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestRestaurantAdapterNormalizesBackendErrors(t *testing.T) {
	fake := &fakeRestaurantClient{err: status.Error(codes.NotFound, "restaurant not found")}
	a := NewRestaurantAdapter(fake, nil)

	_, err := a.GetRestaurant(context.Background(), "7")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRestaurantAdapterReturnsBackendData(t *testing.T) {
	fake := &fakeRestaurantClient{
		list: &restaurantpb.RestaurantList{Restaurants: []restaurantpb.Restaurant{
			{ID: "7", Name: "Luigi's", Menu: []restaurantpb.MenuItem{{Name: "margherita", Price: 11.5}}},
		}},
	}
	a := NewRestaurantAdapter(fake, nil)

	restaurants, err := a.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Luigi's", restaurants[0].Name)
}
