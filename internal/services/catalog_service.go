package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/models"
)

type CatalogStore interface {
	GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error)
	GetBillboard(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error)

	CreateCategory(ctx context.Context, storeID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context, storeID uuid.UUID) ([]models.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	CreateSize(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Size, error)
	GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error)
	ListSizes(ctx context.Context, storeID uuid.UUID) ([]models.Size, error)
	UpdateSize(ctx context.Context, sizeID uuid.UUID, name, value string) (*models.Size, error)
	DeleteSize(ctx context.Context, sizeID uuid.UUID) error

	CreateColor(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Color, error)
	GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error)
	ListColors(ctx context.Context, storeID uuid.UUID) ([]models.Color, error)
	UpdateColor(ctx context.Context, colorID uuid.UUID, name, value string) (*models.Color, error)
	DeleteColor(ctx context.Context, colorID uuid.UUID) error
}

// CatalogService covers the image-less catalog entities: categories, sizes
// and colors. Reads are public; every mutation re-verifies store ownership.
type CatalogService struct {
	db CatalogStore
}

func NewCatalogService(db CatalogStore) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateCategory(ctx context.Context, userID string, storeID uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	billboardID, err := s.validateCategory(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	return s.db.CreateCategory(ctx, storeID, req.Name, billboardID)
}

func (s *CatalogService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error) {
	return s.db.GetCategory(ctx, categoryID)
}

func (s *CatalogService) ListCategories(ctx context.Context, storeID uuid.UUID) ([]models.Category, error) {
	return s.db.ListCategories(ctx, storeID)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, userID string, storeID, categoryID uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	billboardID, err := s.validateCategory(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.requireCategoryInStore(ctx, storeID, categoryID); err != nil {
		return nil, err
	}
	return s.db.UpdateCategory(ctx, categoryID, req.Name, billboardID)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, userID string, storeID, categoryID uuid.UUID) error {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return err
	}
	if err := s.requireCategoryInStore(ctx, storeID, categoryID); err != nil {
		return err
	}
	return s.db.DeleteCategory(ctx, categoryID)
}

func (s *CatalogService) CreateSize(ctx context.Context, userID string, storeID uuid.UUID, req models.SizeRequest) (*models.Size, error) {
	if err := validateNameValue(req.Name, req.Value); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	return s.db.CreateSize(ctx, storeID, req.Name, req.Value)
}

func (s *CatalogService) GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error) {
	return s.db.GetSize(ctx, sizeID)
}

func (s *CatalogService) ListSizes(ctx context.Context, storeID uuid.UUID) ([]models.Size, error) {
	return s.db.ListSizes(ctx, storeID)
}

func (s *CatalogService) UpdateSize(ctx context.Context, userID string, storeID, sizeID uuid.UUID, req models.SizeRequest) (*models.Size, error) {
	if err := validateNameValue(req.Name, req.Value); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.requireSizeInStore(ctx, storeID, sizeID); err != nil {
		return nil, err
	}
	return s.db.UpdateSize(ctx, sizeID, req.Name, req.Value)
}

func (s *CatalogService) DeleteSize(ctx context.Context, userID string, storeID, sizeID uuid.UUID) error {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return err
	}
	if err := s.requireSizeInStore(ctx, storeID, sizeID); err != nil {
		return err
	}
	return s.db.DeleteSize(ctx, sizeID)
}

func (s *CatalogService) CreateColor(ctx context.Context, userID string, storeID uuid.UUID, req models.ColorRequest) (*models.Color, error) {
	if err := validateNameValue(req.Name, req.Value); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	return s.db.CreateColor(ctx, storeID, req.Name, req.Value)
}

func (s *CatalogService) GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error) {
	return s.db.GetColor(ctx, colorID)
}

func (s *CatalogService) ListColors(ctx context.Context, storeID uuid.UUID) ([]models.Color, error) {
	return s.db.ListColors(ctx, storeID)
}

func (s *CatalogService) UpdateColor(ctx context.Context, userID string, storeID, colorID uuid.UUID, req models.ColorRequest) (*models.Color, error) {
	if err := validateNameValue(req.Name, req.Value); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.requireColorInStore(ctx, storeID, colorID); err != nil {
		return nil, err
	}
	return s.db.UpdateColor(ctx, colorID, req.Name, req.Value)
}

func (s *CatalogService) DeleteColor(ctx context.Context, userID string, storeID, colorID uuid.UUID) error {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return err
	}
	if err := s.requireColorInStore(ctx, storeID, colorID); err != nil {
		return err
	}
	return s.db.DeleteColor(ctx, colorID)
}

// validateCategory resolves the optional billboard link; when set, the
// billboard must exist in the same store.
func (s *CatalogService) validateCategory(ctx context.Context, storeID uuid.UUID, req models.CategoryRequest) (uuid.NullUUID, error) {
	if req.Name == "" {
		return uuid.NullUUID{}, validationErrorf("name is required")
	}
	if req.BillboardID == "" {
		return uuid.NullUUID{}, nil
	}

	billboardID, err := uuid.Parse(req.BillboardID)
	if err != nil {
		return uuid.NullUUID{}, validationErrorf("billboardId is not a valid id")
	}
	billboard, err := s.db.GetBillboard(ctx, billboardID)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	if billboard.StoreID != storeID {
		return uuid.NullUUID{}, database.ErrNotFound
	}

	return uuid.NullUUID{UUID: billboardID, Valid: true}, nil
}

func (s *CatalogService) requireCategoryInStore(ctx context.Context, storeID, categoryID uuid.UUID) error {
	category, err := s.db.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.StoreID != storeID {
		return database.ErrNotFound
	}
	return nil
}

func (s *CatalogService) requireSizeInStore(ctx context.Context, storeID, sizeID uuid.UUID) error {
	size, err := s.db.GetSize(ctx, sizeID)
	if err != nil {
		return err
	}
	if size.StoreID != storeID {
		return database.ErrNotFound
	}
	return nil
}

func (s *CatalogService) requireColorInStore(ctx context.Context, storeID, colorID uuid.UUID) error {
	color, err := s.db.GetColor(ctx, colorID)
	if err != nil {
		return err
	}
	if color.StoreID != storeID {
		return database.ErrNotFound
	}
	return nil
}

func (s *CatalogService) checkOwnership(ctx context.Context, storeID uuid.UUID, userID string) error {
	if _, err := s.db.GetStoreByUser(ctx, storeID, userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrStoreAccessDenied
		}
		return &UpstreamError{Op: "failed to verify store ownership", Err: err}
	}
	return nil
}

func validateNameValue(name, value string) error {
	if name == "" {
		return validationErrorf("name is required")
	}
	if value == "" {
		return validationErrorf("value is required")
	}
	return nil
}
