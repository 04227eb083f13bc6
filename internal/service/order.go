package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// OrderService manages customer orders. Listings are cached and can be
// partitioned by order status; a customer's own orders are read directly
// from MongoDB.
type OrderService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.Order], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.Order], error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error)
	Create(ctx context.Context, customer Identity, req dto.CreateOrderRequest) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
	Cancel(ctx context.Context, id string, customer Identity) (*model.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	engine        *cache.Engine[model.Order]
	writer        repository.DocumentWriter[model.Order]
	products      repository.DocumentWriter[model.Product]
	productEngine *cache.Engine[model.Product]
	mailer        Mailer
}

// NewOrderService creates a new order service. The product engine is needed
// because stock movements make cached product pages stale.
func NewOrderService(
	engine *cache.Engine[model.Order],
	writer repository.DocumentWriter[model.Order],
	products repository.DocumentWriter[model.Product],
	productEngine *cache.Engine[model.Product],
	mailer Mailer,
) OrderService {
	return &OrderServiceImpl{
		engine:        engine,
		writer:        writer,
		products:      products,
		productEngine: productEngine,
		mailer:        mailer,
	}
}

// Get returns a single order, cached.
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.Order], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of orders, cached per query shape and optionally
// scoped to one status.
func (s *OrderServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Order], error) {
	return s.engine.GetCollection(ctx, q)
}

// ListForUser returns all orders placed by one customer, newest data wins.
func (s *OrderServiceImpl) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error) {
	return s.writer.FindBy(ctx, "user_id", userID)
}

// Create places an order. Each line copies the product name and unit price
// at order time, and stock is decremented atomically per line; a line that
// cannot be covered fails the whole order.
func (s *OrderServiceImpl) Create(ctx context.Context, customer Identity, req dto.CreateOrderRequest) (*model.Order, error) {
	now := time.Now()
	order := &model.Order{
		UserID:    customer.ID,
		Items:     make([]model.OrderItem, 0, len(req.Items)),
		Status:    model.OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var claimed []model.OrderItem
	for _, line := range req.Items {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			s.releaseStock(ctx, claimed)
			return nil, cache.ErrInvalidID
		}

		product, err := s.products.Get(ctx, productID)
		if err != nil {
			s.releaseStock(ctx, claimed)
			return nil, err
		}
		if product == nil || product.Status != model.StatusActive {
			s.releaseStock(ctx, claimed)
			return nil, ErrUnknownReference
		}

		matched, err := s.products.UpdateWhere(ctx,
			bson.M{"_id": productID, "stock": bson.M{"$gte": line.Quantity}},
			bson.M{"$inc": bson.M{"stock": -line.Quantity}, "$set": bson.M{"updated_at": now}},
		)
		if err != nil {
			s.releaseStock(ctx, claimed)
			return nil, err
		}
		if !matched {
			s.releaseStock(ctx, claimed)
			return nil, ErrInsufficientStock
		}

		item := model.OrderItem{
			ProductID: productID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		claimed = append(claimed, item)
		order.Items = append(order.Items, item)
	}

	order.Total = order.Subtotal()

	id, err := s.writer.Insert(ctx, order)
	if err != nil {
		s.releaseStock(ctx, claimed)
		return nil, err
	}
	order.ID = id

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, id.Hex(), *order)
	s.invalidateProducts(ctx, order.Items)

	if err := s.mailer.SendOrderConfirmation(customer.Email, customer.Name, id.Hex(), order.Total); err != nil {
		log.Warn().Err(err).Str("order_id", id.Hex()).Msg("failed to send order confirmation email")
	}

	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Cancelling restores the
// stock the order had claimed.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	order, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, cache.ErrNotFound
	}

	if _, err := s.writer.Update(ctx, oid, bson.M{"status": status, "updated_at": time.Now()}); err != nil {
		return nil, err
	}

	if status == model.OrderCancelled && order.Status != model.OrderCancelled {
		s.releaseStock(ctx, order.Items)
	}

	return s.refresh(ctx, oid)
}

// Cancel lets a customer cancel their own pending order.
func (s *OrderServiceImpl) Cancel(ctx context.Context, id string, customer Identity) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	order, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, cache.ErrNotFound
	}
	if order.UserID != customer.ID {
		return nil, ErrForbidden
	}
	if order.Status != model.OrderPending {
		return nil, ErrForbidden
	}

	if _, err := s.writer.Update(ctx, oid, bson.M{"status": model.OrderCancelled, "updated_at": time.Now()}); err != nil {
		return nil, err
	}

	s.releaseStock(ctx, order.Items)

	return s.refresh(ctx, oid)
}

// Delete removes an order outright. Stock claimed by an order that never
// reached a terminal state is restored first.
func (s *OrderServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return cache.ErrInvalidID
	}

	order, err := s.writer.Get(ctx, oid)
	if err != nil {
		return err
	}
	if order == nil {
		return cache.ErrNotFound
	}

	if _, err := s.writer.Delete(ctx, oid); err != nil {
		return err
	}

	if order.Status == model.OrderPending || order.Status == model.OrderProcessing {
		s.releaseStock(ctx, order.Items)
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.InvalidateDocument(ctx, id)

	return nil
}

// releaseStock returns claimed units to their products. Used when a later
// line fails mid-order and when an order is cancelled.
func (s *OrderServiceImpl) releaseStock(ctx context.Context, items []model.OrderItem) {
	now := time.Now()
	for _, item := range items {
		_, err := s.products.UpdateWhere(ctx,
			bson.M{"_id": item.ProductID},
			bson.M{"$inc": bson.M{"stock": item.Quantity}, "$set": bson.M{"updated_at": now}},
		)
		if err != nil {
			log.Error().Err(err).
				Str("product_id", item.ProductID.Hex()).
				Int("quantity", item.Quantity).
				Msg("failed to release claimed stock")
		}
	}
	if len(items) > 0 {
		s.invalidateProducts(ctx, items)
	}
}

// invalidateProducts drops cached product listings and the documents touched
// by stock movements so the next read sees fresh stock counts.
func (s *OrderServiceImpl) invalidateProducts(ctx context.Context, items []model.OrderItem) {
	if s.productEngine == nil {
		return
	}
	s.productEngine.InvalidateCollection(ctx)
	for _, item := range items {
		s.productEngine.InvalidateDocument(ctx, item.ProductID.Hex())
	}
}

func (s *OrderServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.Order, error) {
	order, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), *order)

	return order, nil
}
