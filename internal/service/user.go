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

// UserService manages shopper accounts. Registration lives in AuthService;
// this service covers the back-office view and profile updates.
type UserService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.User], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.User], error)
	Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.User, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	engine *cache.Engine[model.User]
	writer repository.DocumentWriter[model.User]
}

// NewUserService creates a new user service.
func NewUserService(engine *cache.Engine[model.User], writer repository.DocumentWriter[model.User]) UserService {
	return &UserServiceImpl{engine: engine, writer: writer}
}

// Get returns a single user, cached.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.User], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of users, cached per query shape.
func (s *UserServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.User], error) {
	return s.engine.GetCollection(ctx, q)
}

// Update patches a user profile and refreshes the cache.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, cache.ErrInvalidID
	}

	patch := bson.M{"updated_at": time.Now()}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Phone != "" {
		patch["phone"] = req.Phone
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

// UpdateStatus toggles a user between active and inactive.
func (s *UserServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.User, error) {
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

// Delete removes a user and drops it from the cache.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
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

func (s *UserServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.User, error) {
	user, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), user.Public())

	return user, nil
}
