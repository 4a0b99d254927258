package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

type fakeBillboardStore struct {
	store     *models.Store
	billboard *models.Billboard

	failCreate bool
	failUpdate bool
	failDelete bool

	lastUpdateImage *models.Image
	updateCalled    bool
	deleteCalled    bool
}

func (f *fakeBillboardStore) GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error) {
	if f.store == nil || f.store.ID != storeID || f.store.UserID != userID {
		return nil, database.ErrNotFound
	}
	return f.store, nil
}

func (f *fakeBillboardStore) CreateBillboardWithImage(ctx context.Context, storeID uuid.UUID, label string, img *models.Image) (*models.Billboard, error) {
	if f.failCreate {
		return nil, errors.New("insert failed")
	}
	b := &models.Billboard{ID: uuid.New(), StoreID: storeID, Label: label, Image: img}
	f.billboard = b
	return b, nil
}

func (f *fakeBillboardStore) GetBillboard(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error) {
	if f.billboard == nil || f.billboard.ID != billboardID {
		return nil, database.ErrNotFound
	}
	return f.billboard, nil
}

func (f *fakeBillboardStore) ListBillboards(ctx context.Context, storeID uuid.UUID) ([]models.Billboard, error) {
	if f.billboard == nil {
		return nil, nil
	}
	return []models.Billboard{*f.billboard}, nil
}

func (f *fakeBillboardStore) UpdateBillboardWithImage(ctx context.Context, billboardID uuid.UUID, label string, img *models.Image) (*models.Billboard, error) {
	f.updateCalled = true
	f.lastUpdateImage = img
	if f.failUpdate {
		return nil, errors.New("update failed")
	}
	f.billboard.Label = label
	if img != nil {
		f.billboard.Image = img
	}
	return f.billboard, nil
}

func (f *fakeBillboardStore) DeleteBillboard(ctx context.Context, billboardID uuid.UUID) error {
	f.deleteCalled = true
	if f.failDelete {
		return errors.New("delete failed")
	}
	f.billboard = nil
	return nil
}

func billboardFixture(storeID uuid.UUID) *models.Billboard {
	return &models.Billboard{
		ID:      uuid.New(),
		StoreID: storeID,
		Label:   "summer sale",
		Image: &models.Image{
			ID:       uuid.New(),
			URL:      "https://res.example.com/old.png",
			PublicID: "old-public-id",
		},
	}
}

func TestBillboardCreate_RollsBackUploadOnDBFailure(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{
		store:      &models.Store{ID: storeID, UserID: "user-1"},
		failCreate: true,
	}
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Create(context.Background(), "user-1", storeID, models.BillboardRequest{Label: "sale", Image: validPNG})
	require.Error(t, err)

	var upstreamErr *services.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Len(t, fake.deleted, 1, "the orphaned upload must be removed")
}

func TestBillboardCreate_DeniesNonOwner(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "owner"}}
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Create(context.Background(), "intruder", storeID, models.BillboardRequest{Label: "sale", Image: validPNG})
	assert.ErrorIs(t, err, services.ErrStoreAccessDenied)
	assert.Empty(t, fake.uploads, "no upload happens for a denied request")
}

func TestBillboardUpdate_DataURIReplacesImage(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}}
	db.billboard = billboardFixture(storeID)
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	updated, err := svc.Update(context.Background(), "user-1", storeID, db.billboard.ID, models.BillboardRequest{
		Label: "winter sale",
		Image: validPNG,
	})
	require.NoError(t, err)

	assert.Equal(t, "winter sale", updated.Label)
	require.NotNil(t, db.lastUpdateImage)
	assert.NotEqual(t, "old-public-id", db.lastUpdateImage.PublicID)
	assert.Equal(t, []string{"old-public-id"}, fake.deleted, "the replaced image is removed after the commit")
}

func TestBillboardUpdate_URLKeepsCurrentImage(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}}
	db.billboard = billboardFixture(storeID)
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Update(context.Background(), "user-1", storeID, db.billboard.ID, models.BillboardRequest{
		Label: "winter sale",
		Image: "https://res.example.com/old.png",
	})
	require.NoError(t, err)

	assert.True(t, db.updateCalled)
	assert.Nil(t, db.lastUpdateImage, "no replacement image is written")
	assert.Empty(t, fake.uploads)
	assert.Empty(t, fake.deleted)
}

func TestBillboardUpdate_RollsBackUploadOnDBFailure(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}, failUpdate: true}
	db.billboard = billboardFixture(storeID)
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Update(context.Background(), "user-1", storeID, db.billboard.ID, models.BillboardRequest{
		Label: "winter sale",
		Image: validPNG,
	})
	require.Error(t, err)

	require.Len(t, fake.deleted, 1)
	assert.NotEqual(t, "old-public-id", fake.deleted[0], "only the fresh upload is rolled back, never the current image")
}

func TestBillboardDelete_RemovesRemoteImageAfterDBDelete(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}}
	db.billboard = billboardFixture(storeID)
	billboardID := db.billboard.ID
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	deleted, err := svc.Delete(context.Background(), "user-1", storeID, billboardID)
	require.NoError(t, err)

	assert.Equal(t, billboardID, deleted.ID)
	assert.Equal(t, []string{"old-public-id"}, fake.deleted)
}

func TestBillboardDelete_KeepsRemoteImageOnDBFailure(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}, failDelete: true}
	db.billboard = billboardFixture(storeID)
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Delete(context.Background(), "user-1", storeID, db.billboard.ID)
	require.Error(t, err)
	assert.Empty(t, fake.deleted, "the image is still referenced and must survive")
}

func TestBillboardUpdate_CrossStoreBillboardIsNotFound(t *testing.T) {
	storeID := uuid.New()
	db := &fakeBillboardStore{store: &models.Store{ID: storeID, UserID: "user-1"}}
	db.billboard = billboardFixture(uuid.New())
	fake := &fakeMedia{}
	svc := services.NewBillboardService(db, newImageService(fake))

	_, err := svc.Update(context.Background(), "user-1", storeID, db.billboard.ID, models.BillboardRequest{
		Label: "winter sale",
		Image: validPNG,
	})
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Empty(t, fake.uploads)
}
