package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/media"
	"ecom-admin-backend/internal/models"
)

const productFolder = "products"

type ProductStore interface {
	GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error)
	GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error)
	GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error)
	CreateProductWithImages(ctx context.Context, p *models.Product, images []models.Image) (*models.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, storeID uuid.UUID, filter database.ProductFilter) ([]models.Product, error)
	UpdateProductWithImages(ctx context.Context, p *models.Product, images []models.Image) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductService coordinates product mutations with their image batches.
// Uploads happen before the DB transaction; a failed transaction rolls the
// fresh uploads back, and a successful update deletes the images the new
// set superseded.
type ProductService struct {
	db     ProductStore
	images *ImageService
}

func NewProductService(db ProductStore, images *ImageService) *ProductService {
	return &ProductService{db: db, images: images}
}

func (s *ProductService) Create(ctx context.Context, userID string, storeID uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	product, err := s.validateRequest(ctx, storeID, req)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	uploaded, err := s.images.UploadMany(ctx, storeID, productFolder, req.Images)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Image, len(uploaded))
	for i, result := range uploaded {
		rows[i] = newImageRow(result)
	}

	created, err := s.db.CreateProductWithImages(ctx, product, rows)
	if err != nil {
		s.images.DeleteMany(ctx, publicIDs(rows))
		return nil, &UpstreamError{Op: "failed to create product", Err: err}
	}

	return created, nil
}

func (s *ProductService) Get(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	return s.db.GetProduct(ctx, productID)
}

func (s *ProductService) List(ctx context.Context, storeID uuid.UUID, filter database.ProductFilter) ([]models.Product, error) {
	return s.db.ListProducts(ctx, storeID, filter)
}

func (s *ProductService) Update(ctx context.Context, userID string, storeID, productID uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	product, err := s.validateRequest(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	product.ID = productID

	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	existing, err := s.db.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.StoreID != storeID {
		return nil, database.ErrNotFound
	}

	// Split the submitted references: data URIs become fresh uploads, URLs
	// keep the matching existing image, anything else is dropped.
	existingByURL := make(map[string]models.Image, len(existing.Images))
	for _, img := range existing.Images {
		existingByURL[img.URL] = img
	}

	var toUpload []string
	for _, ref := range req.Images {
		if media.IsDataURI(ref) {
			toUpload = append(toUpload, ref)
		}
	}

	var uploaded []media.UploadResult
	if len(toUpload) > 0 {
		uploaded, err = s.images.UploadMany(ctx, storeID, productFolder, toUpload)
		if err != nil {
			return nil, err
		}
	}

	final := make([]models.Image, 0, len(req.Images))
	kept := make(map[string]bool)
	next := 0
	for _, ref := range req.Images {
		switch {
		case media.IsDataURI(ref):
			final = append(final, newImageRow(uploaded[next]))
			next++
		case media.IsRemoteURL(ref):
			if img, ok := existingByURL[ref]; ok {
				final = append(final, img)
				kept[img.PublicID] = true
			}
		}
	}

	fresh := make([]models.Image, len(uploaded))
	for i, result := range uploaded {
		fresh[i] = newImageRow(result)
	}

	updated, err := s.db.UpdateProductWithImages(ctx, product, final)
	if err != nil {
		s.images.DeleteMany(ctx, publicIDs(fresh))
		if errors.Is(err, database.ErrNotFound) {
			return nil, err
		}
		return nil, &UpstreamError{Op: "failed to update product", Err: err}
	}

	// Only now are the replaced images unreferenced.
	var superseded []string
	for _, img := range existing.Images {
		if !kept[img.PublicID] {
			superseded = append(superseded, img.PublicID)
		}
	}
	s.images.DeleteMany(ctx, superseded)

	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, userID string, storeID, productID uuid.UUID) (*models.Product, error) {
	if err := s.checkOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	existing, err := s.db.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.StoreID != storeID {
		return nil, database.ErrNotFound
	}

	if err := s.db.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, err
		}
		return nil, &UpstreamError{Op: "failed to delete product", Err: err}
	}

	s.images.DeleteMany(ctx, publicIDs(existing.Images))

	return existing, nil
}

// validateRequest checks the scalar fields and resolves the category, size
// and color references, which must exist and belong to the store.
func (s *ProductService) validateRequest(ctx context.Context, storeID uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, validationErrorf("name is required")
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, validationErrorf("price must be greater than zero")
	}
	if len(req.Images) == 0 {
		return nil, validationErrorf("images are required")
	}

	categoryID, err := parseRef(req.CategoryID, "categoryId")
	if err != nil {
		return nil, err
	}
	sizeID, err := parseRef(req.SizeID, "sizeId")
	if err != nil {
		return nil, err
	}
	colorID, err := parseRef(req.ColorID, "colorId")
	if err != nil {
		return nil, err
	}

	category, err := s.db.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	size, err := s.db.GetSize(ctx, sizeID)
	if err != nil {
		return nil, err
	}
	color, err := s.db.GetColor(ctx, colorID)
	if err != nil {
		return nil, err
	}
	if category.StoreID != storeID || size.StoreID != storeID || color.StoreID != storeID {
		return nil, database.ErrNotFound
	}

	return &models.Product{
		StoreID:    storeID,
		CategoryID: categoryID,
		SizeID:     sizeID,
		ColorID:    colorID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
	}, nil
}

func (s *ProductService) checkOwnership(ctx context.Context, storeID uuid.UUID, userID string) error {
	if _, err := s.db.GetStoreByUser(ctx, storeID, userID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrStoreAccessDenied
		}
		return &UpstreamError{Op: "failed to verify store ownership", Err: err}
	}
	return nil
}

func parseRef(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, validationErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validationErrorf("%s is not a valid id", field)
	}
	return id, nil
}

func publicIDs(images []models.Image) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.PublicID)
	}
	return ids
}
