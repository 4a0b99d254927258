package services

import (
	"context"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

type StoreStore interface {
	CreateStore(ctx context.Context, userID, name string) (*models.Store, error)
	GetStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error)
	ListStoresByUser(ctx context.Context, userID string) ([]models.Store, error)
	UpdateStore(ctx context.Context, storeID uuid.UUID, userID, name string) (*models.Store, error)
	DeleteStore(ctx context.Context, storeID uuid.UUID, userID string) error
}

type StoreService struct {
	db StoreStore
}

func NewStoreService(db StoreStore) *StoreService {
	return &StoreService{db: db}
}

func (s *StoreService) Create(ctx context.Context, userID string, req models.StoreRequest) (*models.Store, error) {
	if req.Name == "" {
		return nil, validationErrorf("name is required")
	}
	return s.db.CreateStore(ctx, userID, req.Name)
}

func (s *StoreService) Get(ctx context.Context, storeID uuid.UUID) (*models.Store, error) {
	return s.db.GetStore(ctx, storeID)
}

func (s *StoreService) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	return s.db.ListStoresByUser(ctx, userID)
}

func (s *StoreService) Update(ctx context.Context, userID string, storeID uuid.UUID, req models.StoreRequest) (*models.Store, error) {
	if req.Name == "" {
		return nil, validationErrorf("name is required")
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	return s.db.UpdateStore(ctx, storeID, userID, req.Name)
}

func (s *StoreService) Delete(ctx context.Context, userID string, storeID uuid.UUID) error {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return err
	}
	return s.db.DeleteStore(ctx, storeID, userID)
}

func (s *StoreService) checkOwnership(ctx context.Context, storeID uuid.UUID, userID string) error {
	store, err := s.db.GetStore(ctx, storeID)
	if err != nil {
		return err
	}
	if store.UserID != userID {
		return ErrStoreAccessDenied
	}
	return nil
}
