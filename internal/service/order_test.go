package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
)

type orderFixture struct {
	log      *eventLog
	kv       *fakeKV
	orders   *fakeWriter[model.Order]
	products *fakeWriter[model.Product]
	svc      OrderService
}

func newOrderFixture() *orderFixture {
	log := &eventLog{}
	kv := newFakeKV(log)
	orders := newFakeWriter[model.Order](log, "orders")
	products := newFakeWriter[model.Product](log, "products")

	orderEngine := cache.NewEngine(cache.Config[model.Order]{
		Kind: cache.KindOrder,
		Tag:  cache.TagOrders,
	}, kv, stubStore[model.Order]{}, zerolog.Nop())
	productEngine := cache.NewEngine(cache.Config[model.Product]{
		Kind: cache.KindProduct,
		Tag:  cache.TagProducts,
	}, kv, stubStore[model.Product]{}, zerolog.Nop())

	return &orderFixture{
		log:      log,
		kv:       kv,
		orders:   orders,
		products: products,
		svc:      NewOrderService(orderEngine, orders, products, productEngine, NoopMailer{}),
	}
}

func (f *orderFixture) seedProduct(stock int) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.products.docs[id] = &model.Product{
		ID:     id,
		Name:   "Honeycrisp Apple",
		Price:  349,
		Stock:  stock,
		Status: model.StatusActive,
	}
	return id
}

func testCustomer() Identity {
	return Identity{
		ID:      primitive.NewObjectID(),
		Subject: model.SubjectUser,
		Email:   "shopper@example.com",
		Name:    "Jane Doe",
	}
}

func stockDelta(update bson.M) int {
	inc, ok := update["$inc"].(bson.M)
	if !ok {
		return 0
	}
	delta, _ := inc["stock"].(int)
	return delta
}

func TestOrderService_CreateDecrementsStockAndInvalidates(t *testing.T) {
	f := newOrderFixture()
	productID := f.seedProduct(10)

	order, err := f.svc.Create(context.Background(), testCustomer(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID.Hex(), Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(349), order.Items[0].UnitPrice)
	assert.Equal(t, int64(3*349), order.Total)

	require.Len(t, f.products.whereUpdates, 1)
	assert.Equal(t, -3, stockDelta(f.products.whereUpdates[0]))
	require.Len(t, f.products.whereFilters, 1)
	assert.Equal(t, bson.M{"$gte": 3}, f.products.whereFilters[0]["stock"],
		"the decrement must be guarded by a minimum-stock filter")

	// One invalidation for the order listings, one for the product listings.
	assert.Equal(t, 2, f.log.count("cache_invalidate"))
	assert.Less(t, f.log.indexOf("orders_insert"), f.log.indexOf("cache_invalidate"))
}

func TestOrderService_InsufficientStockReleasesClaimedLines(t *testing.T) {
	f := newOrderFixture()
	first := f.seedProduct(10)
	second := f.seedProduct(10)
	f.products.whereResults = []bool{true, false}

	_, err := f.svc.Create(context.Background(), testCustomer(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: first.Hex(), Quantity: 2},
			{ProductID: second.Hex(), Quantity: 5},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Claim for line one, failed claim for line two, release of line one.
	require.Len(t, f.products.whereUpdates, 3)
	assert.Equal(t, -2, stockDelta(f.products.whereUpdates[0]))
	assert.Equal(t, -5, stockDelta(f.products.whereUpdates[1]))
	assert.Equal(t, 2, stockDelta(f.products.whereUpdates[2]),
		"the first line's units must be returned")

	assert.Zero(t, f.log.count("orders_insert"))
}

func TestOrderService_FailedInsertReleasesStockAndSkipsOrderInvalidation(t *testing.T) {
	f := newOrderFixture()
	productID := f.seedProduct(10)
	f.orders.insertErr = errStoreDown

	_, err := f.svc.Create(context.Background(), testCustomer(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: productID.Hex(), Quantity: 1}},
	})
	require.ErrorIs(t, err, errStoreDown)

	// Claim then release.
	require.Len(t, f.products.whereUpdates, 2)
	assert.Equal(t, -1, stockDelta(f.products.whereUpdates[0]))
	assert.Equal(t, 1, stockDelta(f.products.whereUpdates[1]))

	// Only the product listings are invalidated by the release; the order
	// collection stays untouched because no order was written.
	assert.Equal(t, 1, f.log.count("cache_invalidate"))
}

func TestOrderService_CreateUnknownProduct(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.Create(context.Background(), testCustomer(), dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: primitive.NewObjectID().Hex(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.Empty(t, f.products.whereUpdates)
}

func TestOrderService_CancelRestoresStockOncePendingOnly(t *testing.T) {
	f := newOrderFixture()
	productID := f.seedProduct(10)
	customer := testCustomer()

	orderID := f.orders.insertedID
	f.orders.docs[orderID] = &model.Order{
		ID:     orderID,
		UserID: customer.ID,
		Status: model.OrderPending,
		Items:  []model.OrderItem{{ProductID: productID, Quantity: 4, UnitPrice: 349}},
	}

	cancelled, err := f.svc.Cancel(context.Background(), orderID.Hex(), customer)
	require.NoError(t, err)
	require.NotNil(t, cancelled)

	require.Len(t, f.products.whereUpdates, 1)
	assert.Equal(t, 4, stockDelta(f.products.whereUpdates[0]))

	otherCustomer := testCustomer()
	_, err = f.svc.Cancel(context.Background(), orderID.Hex(), otherCustomer)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOrderService_DeleteReleasesPendingStock(t *testing.T) {
	f := newOrderFixture()
	productID := f.seedProduct(10)

	orderID := f.orders.insertedID
	f.orders.docs[orderID] = &model.Order{
		ID:     orderID,
		Status: model.OrderPending,
		Items:  []model.OrderItem{{ProductID: productID, Quantity: 2}},
	}

	require.NoError(t, f.svc.Delete(context.Background(), orderID.Hex()))

	require.Len(t, f.products.whereUpdates, 1)
	assert.Equal(t, 2, stockDelta(f.products.whereUpdates[0]))
	assert.Less(t, f.log.indexOf("orders_delete"), f.log.indexOf("cache_invalidate"))

	// Delivered orders keep their stock history.
	f2 := newOrderFixture()
	deliveredID := f2.orders.insertedID
	f2.orders.docs[deliveredID] = &model.Order{
		ID:     deliveredID,
		Status: model.OrderDelivered,
		Items:  []model.OrderItem{{ProductID: f2.seedProduct(5), Quantity: 2}},
	}
	require.NoError(t, f2.svc.Delete(context.Background(), deliveredID.Hex()))
	assert.Empty(t, f2.products.whereUpdates)
}
