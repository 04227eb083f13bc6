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

// ProductService manages the sellable catalog.
type ProductService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.Product], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.Product], error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	engine     *cache.Engine[model.Product]
	writer     repository.DocumentWriter[model.Product]
	categories repository.DocumentWriter[model.Category]
}

// NewProductService creates a new product service.
func NewProductService(
	engine *cache.Engine[model.Product],
	writer repository.DocumentWriter[model.Product],
	categories repository.DocumentWriter[model.Category],
) ProductService {
	return &ProductServiceImpl{engine: engine, writer: writer, categories: categories}
}

// Get returns a single product, cached.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.Product], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of products, cached per query shape.
func (s *ProductServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Product], error) {
	return s.engine.GetCollection(ctx, q)
}

// Create stores a new product under an existing category and refreshes the
// cache.
func (s *ProductServiceImpl) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, cache.ErrInvalidID
	}
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrUnknownReference
	}

	existing, err := s.writer.FindOneBy(ctx, "name", req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	now := time.Now()
	product := &model.Product{
		Name:        req.Name,
		Slug:        Slugify(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       model.Image{Key: req.ImageKey, URL: req.ImageURL},
		CategoryID:  categoryID,
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.writer.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, id.Hex(), *product)

	return product, nil
}

// Update patches a product and refreshes the cache.
func (s *ProductServiceImpl) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	patch := bson.M{"updated_at": time.Now()}
	if req.Name != "" {
		existing, err := s.writer.FindOneBy(ctx, "name", req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != oid {
			return nil, ErrNameTaken
		}
		patch["name"] = req.Name
		patch["slug"] = Slugify(req.Name)
	}
	if req.Description != "" {
		patch["description"] = req.Description
	}
	if req.Price > 0 {
		patch["price"] = req.Price
	}
	if req.Stock != nil {
		patch["stock"] = *req.Stock
	}
	if req.ImageKey != "" || req.ImageURL != "" {
		patch["image"] = model.Image{Key: req.ImageKey, URL: req.ImageURL}
	}

	matched, err := s.writer.Update(ctx, oid, patch)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, cache.ErrNotFound
	}

	return s.refresh(ctx, oid)
}

// UpdateStatus toggles a product between active and inactive.
func (s *ProductServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	matched, err := s.writer.Update(ctx, oid, bson.M{"status": status, "updated_at": time.Now()})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, cache.ErrNotFound
	}

	return s.refresh(ctx, oid)
}

// Delete removes a product and drops it from the cache.
func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return cache.ErrInvalidID
	}

	existed, err := s.writer.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !existed {
		return cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.InvalidateDocument(ctx, id)

	return nil
}

func (s *ProductServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.Product, error) {
	product, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), *product)

	return product, nil
}
