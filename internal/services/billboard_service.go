package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/media"
	"ecom-admin-backend/internal/models"
)

const billboardFolder = "billboards"

type BillboardStore interface {
	GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error)
	CreateBillboardWithImage(ctx context.Context, storeID uuid.UUID, label string, img *models.Image) (*models.Billboard, error)
	GetBillboard(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error)
	ListBillboards(ctx context.Context, storeID uuid.UUID) ([]models.Billboard, error)
	UpdateBillboardWithImage(ctx context.Context, billboardID uuid.UUID, label string, img *models.Image) (*models.Billboard, error)
	DeleteBillboard(ctx context.Context, billboardID uuid.UUID) error
}

// BillboardService coordinates the billboard's single-image
// upload-then-persist flows with best-effort compensation: a failed DB
// write rolls back the fresh upload, a successful replacement deletes the
// superseded remote image afterwards.
type BillboardService struct {
	db     BillboardStore
	images *ImageService
}

func NewBillboardService(db BillboardStore, images *ImageService) *BillboardService {
	return &BillboardService{db: db, images: images}
}

func (s *BillboardService) Create(ctx context.Context, userID string, storeID uuid.UUID, req models.BillboardRequest) (*models.Billboard, error) {
	if req.Label == "" {
		return nil, validationErrorf("label is required")
	}
	if req.Image == "" {
		return nil, validationErrorf("image is required")
	}

	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	uploaded, err := s.images.UploadMany(ctx, storeID, billboardFolder, []string{req.Image})
	if err != nil {
		return nil, err
	}
	img := newImageRow(uploaded[0])

	billboard, err := s.db.CreateBillboardWithImage(ctx, storeID, req.Label, &img)
	if err != nil {
		s.images.DeleteMany(ctx, []string{img.PublicID})
		return nil, &UpstreamError{Op: "failed to create billboard", Err: err}
	}

	return billboard, nil
}

func (s *BillboardService) Get(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error) {
	return s.db.GetBillboard(ctx, billboardID)
}

func (s *BillboardService) List(ctx context.Context, storeID uuid.UUID) ([]models.Billboard, error) {
	return s.db.ListBillboards(ctx, storeID)
}

func (s *BillboardService) Update(ctx context.Context, userID string, storeID, billboardID uuid.UUID, req models.BillboardRequest) (*models.Billboard, error) {
	if req.Label == "" {
		return nil, validationErrorf("label is required")
	}
	if req.Image == "" {
		return nil, validationErrorf("image is required")
	}

	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	existing, err := s.db.GetBillboard(ctx, billboardID)
	if err != nil {
		return nil, err
	}
	if existing.StoreID != storeID {
		return nil, database.ErrNotFound
	}

	// A data URI replaces the image; anything else keeps the current one.
	var replacement *models.Image
	var superseded string
	if media.IsDataURI(req.Image) {
		uploaded, err := s.images.UploadMany(ctx, storeID, billboardFolder, []string{req.Image})
		if err != nil {
			return nil, err
		}
		img := newImageRow(uploaded[0])
		replacement = &img
		if existing.Image != nil {
			superseded = existing.Image.PublicID
		}
	}

	billboard, err := s.db.UpdateBillboardWithImage(ctx, billboardID, req.Label, replacement)
	if err != nil {
		if replacement != nil {
			s.images.DeleteMany(ctx, []string{replacement.PublicID})
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, err
		}
		return nil, &UpstreamError{Op: "failed to update billboard", Err: err}
	}

	if superseded != "" {
		s.images.DeleteMany(ctx, []string{superseded})
	}

	return billboard, nil
}

func (s *BillboardService) Delete(ctx context.Context, userID string, storeID, billboardID uuid.UUID) (*models.Billboard, error) {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	existing, err := s.db.GetBillboard(ctx, billboardID)
	if err != nil {
		return nil, err
	}
	if existing.StoreID != storeID {
		return nil, database.ErrNotFound
	}

	if err := s.db.DeleteBillboard(ctx, billboardID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, err
		}
		return nil, &UpstreamError{Op: "failed to delete billboard", Err: err}
	}

	// Remote deletion only after the DB row is gone; if the delete above
	// failed, the image is still referenced and must stay valid.
	if existing.Image != nil {
		s.images.DeleteMany(ctx, []string{existing.Image.PublicID})
	}

	return existing, nil
}

func (s *BillboardService) checkOwnership(ctx context.Context, storeID uuid.UUID, userID string) error {
	if _, err := s.db.GetStoreByUser(ctx, storeID, userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrStoreAccessDenied
		}
		return &UpstreamError{Op: "failed to verify store ownership", Err: err}
	}
	return nil
}

func newImageRow(result media.UploadResult) models.Image {
	return models.Image{
		URL:      result.URL,
		PublicID: result.PublicID,
		Name:     result.FileName,
		Format:   result.Format,
		Size:     int64(result.Bytes),
	}
}
