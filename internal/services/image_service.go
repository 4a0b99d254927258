package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ecom-admin-backend/internal/media"
)

// MediaStore is the slice of the media host client the services need.
type MediaStore interface {
	UploadImage(ctx context.Context, imageData string, storeID uuid.UUID, category string) (*media.UploadResult, error)
	DeleteResources(ctx context.Context, publicIDs []string) error
}

// ImageService validates and uploads image batches and cleans up remote
// assets. A batch is all-or-nothing: when any upload fails, the siblings
// that made it are deleted before the error is returned.
type ImageService struct {
	store MediaStore
	cfg   media.UploadConfig
}

func NewImageService(store MediaStore, cfg media.UploadConfig) *ImageService {
	return &ImageService{store: store, cfg: cfg}
}

// UploadMany validates every payload first (no network side effect on a
// rejected batch), then uploads them in parallel.
func (s *ImageService) UploadMany(ctx context.Context, storeID uuid.UUID, category string, imagesData []string) ([]media.UploadResult, error) {
	for _, imageData := range imagesData {
		if err := media.ValidateImageData(imageData, s.cfg); err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
	}

	uploaded := make([]*media.UploadResult, len(imagesData))
	g, gctx := errgroup.WithContext(ctx)
	for i, imageData := range imagesData {
		i, imageData := i, imageData
		g.Go(func() error {
			result, err := s.store.UploadImage(gctx, imageData, storeID, category)
			if err != nil {
				return err
			}
			uploaded[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var publicIDs []string
		for _, result := range uploaded {
			if result != nil {
				publicIDs = append(publicIDs, result.PublicID)
			}
		}
		s.DeleteMany(ctx, publicIDs)
		return nil, &UpstreamError{Op: "image upload failed", Err: err}
	}

	results := make([]media.UploadResult, len(uploaded))
	for i, result := range uploaded {
		results[i] = *result
	}

	return results, nil
}

// DeleteMany removes remote assets best-effort. A failure here must never
// change the outcome already being returned to the caller, so it is logged
// and swallowed.
func (s *ImageService) DeleteMany(ctx context.Context, publicIDs []string) {
	if len(publicIDs) == 0 {
		return
	}
	if err := s.store.DeleteResources(ctx, publicIDs); err != nil {
		log.Printf("media cleanup failed for %v: %v", publicIDs, err)
	}
}
