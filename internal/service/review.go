package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// ReviewService manages product reviews.
type ReviewService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.Review], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.Review], error)
	ListForProduct(ctx context.Context, productID primitive.ObjectID) ([]model.Review, error)
	Create(ctx context.Context, customer Identity, req dto.CreateReviewRequest) (*model.Review, error)
	Update(ctx context.Context, id string, customer Identity, req dto.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id string, actor Identity) error
}

// ReviewServiceImpl implements ReviewService.
type ReviewServiceImpl struct {
	engine   *cache.Engine[model.Review]
	writer   repository.DocumentWriter[model.Review]
	products repository.DocumentWriter[model.Product]
}

// NewReviewService creates a new review service.
func NewReviewService(
	engine *cache.Engine[model.Review],
	writer repository.DocumentWriter[model.Review],
	products repository.DocumentWriter[model.Product],
) ReviewService {
	return &ReviewServiceImpl{engine: engine, writer: writer, products: products}
}

// Get returns a single review, cached.
func (s *ReviewServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.Review], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of reviews, cached per query shape.
func (s *ReviewServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Review], error) {
	return s.engine.GetCollection(ctx, q)
}

// ListForProduct returns all reviews of one product, read directly from
// MongoDB.
func (s *ReviewServiceImpl) ListForProduct(ctx context.Context, productID primitive.ObjectID) ([]model.Review, error) {
	return s.writer.FindBy(ctx, "product_id", productID)
}

// Create stores a review for an existing product and refreshes the cache.
func (s *ReviewServiceImpl) Create(ctx context.Context, customer Identity, req dto.CreateReviewRequest) (*model.Review, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrUnknownReference
	}

	now := time.Now()
	review := &model.Review{
		UserID:    customer.ID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.writer.Insert(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, id.Hex(), *review)

	return review, nil
}

// Update patches a review. Only the author may edit it.
func (s *ReviewServiceImpl) Update(ctx context.Context, id string, customer Identity, req dto.UpdateReviewRequest) (*model.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	review, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, cache.ErrNotFound
	}
	if review.UserID != customer.ID {
		return nil, ErrForbidden
	}

	patch := bson.M{"updated_at": time.Now()}
	if req.Rating != 0 {
		patch["rating"] = req.Rating
	}
	if req.Comment != "" {
		patch["comment"] = req.Comment
	}

	if _, err := s.writer.Update(ctx, oid, patch); err != nil {
		return nil, err
	}

	return s.refresh(ctx, oid)
}

// Delete removes a review. The author may delete their own; staff may
// delete any.
func (s *ReviewServiceImpl) Delete(ctx context.Context, id string, actor Identity) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return cache.ErrInvalidID
	}

	review, err := s.writer.Get(ctx, oid)
	if err != nil {
		return err
	}
	if review == nil {
		return cache.ErrNotFound
	}
	if actor.Subject != model.SubjectStaff && review.UserID != actor.ID {
		return ErrForbidden
	}

	if _, err := s.writer.Delete(ctx, oid); err != nil {
		return err
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.InvalidateDocument(ctx, id)

	return nil
}

func (s *ReviewServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.Review, error) {
	review, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), *review)

	return review, nil
}
