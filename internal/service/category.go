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

// CategoryService manages the product catalog's categories. Reads are served
// through the cache engine; writes go to MongoDB and then invalidate the
// category listings.
type CategoryService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.Category], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.Category], error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	engine *cache.Engine[model.Category]
	writer repository.DocumentWriter[model.Category]
}

// NewCategoryService creates a new category service.
func NewCategoryService(engine *cache.Engine[model.Category], writer repository.DocumentWriter[model.Category]) CategoryService {
	return &CategoryServiceImpl{engine: engine, writer: writer}
}

// Get returns a single category, cached.
func (s *CategoryServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.Category], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of categories, cached per query shape.
func (s *CategoryServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Category], error) {
	return s.engine.GetCollection(ctx, q)
}

// Create stores a new category and refreshes the cache.
func (s *CategoryServiceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error) {
	existing, err := s.writer.FindOneBy(ctx, "name", req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	now := time.Now()
	category := &model.Category{
		Name:        req.Name,
		Slug:        Slugify(req.Name),
		Description: req.Description,
		Image:       model.Image{Key: req.ImageKey, URL: req.ImageURL},
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.writer.Insert(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = id

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, id.Hex(), *category)

	return category, nil
}

// Update patches a category and refreshes the cache.
func (s *CategoryServiceImpl) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error) {
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

// UpdateStatus toggles a category between active and inactive.
func (s *CategoryServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Category, error) {
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

// Delete removes a category and drops it from the cache.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
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

// refresh reloads the document after a confirmed write and repopulates its
// cache entry alongside the listing invalidation.
func (s *CategoryServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.Category, error) {
	category, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), *category)

	return category, nil
}
