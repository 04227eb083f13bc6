package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// StaffService manages back-office accounts. Only the password-free
// projection ever reaches the cache.
type StaffService interface {
	Get(ctx context.Context, id string) (*cache.Document[model.Staff], error)
	List(ctx context.Context, q cache.Query) (*cache.Collection[model.Staff], error)
	Create(ctx context.Context, req dto.CreateStaffRequest) (*model.Staff, error)
	Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.Staff, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Staff, error)
	Delete(ctx context.Context, id string) error
}

// StaffServiceImpl implements StaffService.
type StaffServiceImpl struct {
	engine *cache.Engine[model.Staff]
	writer repository.DocumentWriter[model.Staff]
}

// NewStaffService creates a new staff service.
func NewStaffService(engine *cache.Engine[model.Staff], writer repository.DocumentWriter[model.Staff]) StaffService {
	return &StaffServiceImpl{engine: engine, writer: writer}
}

// Get returns a single staff account, cached.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (*cache.Document[model.Staff], error) {
	return s.engine.GetDocument(ctx, id)
}

// List returns a page of staff accounts, cached per query shape.
func (s *StaffServiceImpl) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Staff], error) {
	return s.engine.GetCollection(ctx, q)
}

// Create stores a new staff account and refreshes the cache.
func (s *StaffServiceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (*model.Staff, error) {
	existing, err := s.writer.FindOneBy(ctx, "email", req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	staff := &model.Staff{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      req.Role,
		Gender:    req.Gender,
		Phone:     req.Phone,
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.writer.Insert(ctx, staff)
	if err != nil {
		return nil, err
	}
	staff.ID = id

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, id.Hex(), staff.Public())

	return staff, nil
}

// Update patches a staff profile and refreshes the cache.
func (s *StaffServiceImpl) Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.Staff, error) {
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

// UpdateStatus toggles a staff account between active and inactive.
func (s *StaffServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Staff, error) {
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

// Delete removes a staff account and drops it from the cache.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
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

func (s *StaffServiceImpl) refresh(ctx context.Context, oid primitive.ObjectID) (*model.Staff, error) {
	staff, err := s.writer.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, cache.ErrNotFound
	}

	s.engine.InvalidateCollection(ctx)
	s.engine.Repopulate(ctx, oid.Hex(), staff.Public())

	return staff, nil
}
