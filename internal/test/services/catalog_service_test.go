package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

type fakeCatalogStore struct {
	store      *models.Store
	billboard  *models.Billboard
	categories map[uuid.UUID]*models.Category
	sizes      map[uuid.UUID]*models.Size
	colors     map[uuid.UUID]*models.Color
}

func newFakeCatalogStore(userID string) *fakeCatalogStore {
	return &fakeCatalogStore{
		store:      &models.Store{ID: uuid.New(), UserID: userID},
		categories: make(map[uuid.UUID]*models.Category),
		sizes:      make(map[uuid.UUID]*models.Size),
		colors:     make(map[uuid.UUID]*models.Color),
	}
}

func (f *fakeCatalogStore) GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error) {
	if f.store.ID != storeID || f.store.UserID != userID {
		return nil, database.ErrNotFound
	}
	return f.store, nil
}

func (f *fakeCatalogStore) GetBillboard(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error) {
	if f.billboard == nil || f.billboard.ID != billboardID {
		return nil, database.ErrNotFound
	}
	return f.billboard, nil
}

func (f *fakeCatalogStore) CreateCategory(ctx context.Context, storeID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error) {
	cat := &models.Category{ID: uuid.New(), StoreID: storeID, Name: name, BillboardID: billboardID}
	f.categories[cat.ID] = cat
	return cat, nil
}

func (f *fakeCatalogStore) GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error) {
	cat, ok := f.categories[categoryID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return cat, nil
}

func (f *fakeCatalogStore) ListCategories(ctx context.Context, storeID uuid.UUID) ([]models.Category, error) {
	var out []models.Category
	for _, cat := range f.categories {
		out = append(out, *cat)
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateCategory(ctx context.Context, categoryID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error) {
	cat, ok := f.categories[categoryID]
	if !ok {
		return nil, database.ErrNotFound
	}
	cat.Name = name
	cat.BillboardID = billboardID
	return cat, nil
}

func (f *fakeCatalogStore) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, ok := f.categories[categoryID]; !ok {
		return database.ErrNotFound
	}
	delete(f.categories, categoryID)
	return nil
}

func (f *fakeCatalogStore) CreateSize(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Size, error) {
	size := &models.Size{ID: uuid.New(), StoreID: storeID, Name: name, Value: value}
	f.sizes[size.ID] = size
	return size, nil
}

func (f *fakeCatalogStore) GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error) {
	size, ok := f.sizes[sizeID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return size, nil
}

func (f *fakeCatalogStore) ListSizes(ctx context.Context, storeID uuid.UUID) ([]models.Size, error) {
	var out []models.Size
	for _, size := range f.sizes {
		out = append(out, *size)
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateSize(ctx context.Context, sizeID uuid.UUID, name, value string) (*models.Size, error) {
	size, ok := f.sizes[sizeID]
	if !ok {
		return nil, database.ErrNotFound
	}
	size.Name = name
	size.Value = value
	return size, nil
}

func (f *fakeCatalogStore) DeleteSize(ctx context.Context, sizeID uuid.UUID) error {
	if _, ok := f.sizes[sizeID]; !ok {
		return database.ErrNotFound
	}
	delete(f.sizes, sizeID)
	return nil
}

func (f *fakeCatalogStore) CreateColor(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Color, error) {
	color := &models.Color{ID: uuid.New(), StoreID: storeID, Name: name, Value: value}
	f.colors[color.ID] = color
	return color, nil
}

func (f *fakeCatalogStore) GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error) {
	color, ok := f.colors[colorID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return color, nil
}

func (f *fakeCatalogStore) ListColors(ctx context.Context, storeID uuid.UUID) ([]models.Color, error) {
	var out []models.Color
	for _, color := range f.colors {
		out = append(out, *color)
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateColor(ctx context.Context, colorID uuid.UUID, name, value string) (*models.Color, error) {
	color, ok := f.colors[colorID]
	if !ok {
		return nil, database.ErrNotFound
	}
	color.Name = name
	color.Value = value
	return color, nil
}

func (f *fakeCatalogStore) DeleteColor(ctx context.Context, colorID uuid.UUID) error {
	if _, ok := f.colors[colorID]; !ok {
		return database.ErrNotFound
	}
	delete(f.colors, colorID)
	return nil
}

func TestCreateCategory_LinksBillboardInSameStore(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	db.billboard = &models.Billboard{ID: uuid.New(), StoreID: db.store.ID}
	svc := services.NewCatalogService(db)

	cat, err := svc.CreateCategory(context.Background(), "user-1", db.store.ID, models.CategoryRequest{
		Name:        "shirts",
		BillboardID: db.billboard.ID.String(),
	})
	require.NoError(t, err)

	assert.True(t, cat.BillboardID.Valid)
	assert.Equal(t, db.billboard.ID, cat.BillboardID.UUID)
}

func TestCreateCategory_RejectsCrossStoreBillboard(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	db.billboard = &models.Billboard{ID: uuid.New(), StoreID: uuid.New()}
	svc := services.NewCatalogService(db)

	_, err := svc.CreateCategory(context.Background(), "user-1", db.store.ID, models.CategoryRequest{
		Name:        "shirts",
		BillboardID: db.billboard.ID.String(),
	})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCreateCategory_BillboardIsOptional(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	svc := services.NewCatalogService(db)

	cat, err := svc.CreateCategory(context.Background(), "user-1", db.store.ID, models.CategoryRequest{Name: "shirts"})
	require.NoError(t, err)
	assert.False(t, cat.BillboardID.Valid)
}

func TestCreateSize_DeniesNonOwner(t *testing.T) {
	db := newFakeCatalogStore("owner")
	svc := services.NewCatalogService(db)

	_, err := svc.CreateSize(context.Background(), "intruder", db.store.ID, models.SizeRequest{Name: "Medium", Value: "M"})
	assert.ErrorIs(t, err, services.ErrStoreAccessDenied)
}

func TestUpdateSize_CrossStoreSizeIsNotFound(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	svc := services.NewCatalogService(db)

	foreign := &models.Size{ID: uuid.New(), StoreID: uuid.New(), Name: "Large", Value: "L"}
	db.sizes[foreign.ID] = foreign

	_, err := svc.UpdateSize(context.Background(), "user-1", db.store.ID, foreign.ID, models.SizeRequest{Name: "XL", Value: "XL"})
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, "Large", foreign.Name)
}

func TestCreateColor_RequiresValue(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	svc := services.NewCatalogService(db)

	_, err := svc.CreateColor(context.Background(), "user-1", db.store.ID, models.ColorRequest{Name: "Red"})

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestColorLifecycle(t *testing.T) {
	db := newFakeCatalogStore("user-1")
	svc := services.NewCatalogService(db)

	color, err := svc.CreateColor(context.Background(), "user-1", db.store.ID, models.ColorRequest{Name: "Red", Value: "#ff0000"})
	require.NoError(t, err)

	updated, err := svc.UpdateColor(context.Background(), "user-1", db.store.ID, color.ID, models.ColorRequest{Name: "Crimson", Value: "#dc143c"})
	require.NoError(t, err)
	assert.Equal(t, "Crimson", updated.Name)

	require.NoError(t, svc.DeleteColor(context.Background(), "user-1", db.store.ID, color.ID))

	_, err = svc.GetColor(context.Background(), color.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
