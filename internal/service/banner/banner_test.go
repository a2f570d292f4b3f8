package banner

import (
	"context"
	"errors"
	"testing"
	"time"

	storage "examadmin/internal/database"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)

func newTestService() (*Service, *fakeRepository, *fakeTx, *fakeStorage) {
	repo := newFakeRepository()
	tx := &fakeTx{}
	st := &fakeStorage{url: "http://localhost:9000/exam/banners/x.png"}

	svc := New(discardLogger(), repo, st, tx, DefaultUploadPolicy())
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, tx, st
}

func ptr[T any](v T) *T { return &v }

func TestAddBannerDefaults(t *testing.T) {
	svc, repo, tx, _ := newTestService()

	res := svc.AddBanner(context.Background(), CreateInput{ImageURL: "http://cdn/a.png"})
	require.True(t, res.Success, res.Message)

	stored, ok := repo.banners[res.Data.ID]
	require.True(t, ok)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 0, stored.SortOrder)
	assert.Equal(t, 1, tx.commits)
}

func TestAddBannerKeepsExplicitValues(t *testing.T) {
	svc, repo, _, _ := newTestService()

	res := svc.AddBanner(context.Background(), CreateInput{
		ImageURL:  "http://cdn/a.png",
		IsActive:  ptr(false),
		SortOrder: ptr(4),
	})
	require.True(t, res.Success)

	stored := repo.banners[res.Data.ID]
	assert.False(t, stored.IsActive)
	assert.Equal(t, 4, stored.SortOrder)
}

func TestAddBannerSaveFailure(t *testing.T) {
	svc, repo, tx, _ := newTestService()
	repo.ForceError = errors.New("db down")

	res := svc.AddBanner(context.Background(), CreateInput{ImageURL: "http://cdn/a.png"})

	assert.False(t, res.Success)
	assert.Equal(t, "failed to save banner", res.Message)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestUpdateBanner(t *testing.T) {
	svc, repo, _, _ := newTestService()
	created := svc.AddBanner(context.Background(), CreateInput{Title: "old", ImageURL: "u"})

	res := svc.UpdateBanner(context.Background(), created.Data.ID, UpdateInput{Title: ptr("new")})
	require.True(t, res.Success)

	stored := repo.banners[created.Data.ID]
	assert.Equal(t, "new", stored.Title)
	assert.Equal(t, "u", stored.ImageURL)
	assert.Equal(t, fixedNow, stored.UpdatedAt)
}

func TestUpdateMissingBanner(t *testing.T) {
	svc, _, _, _ := newTestService()

	res := svc.UpdateBanner(context.Background(), 42, UpdateInput{Title: ptr("x")})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err(), storage.ErrBannerNotFound)
}

func TestToggleBannerStatus(t *testing.T) {
	svc, repo, _, _ := newTestService()
	created := svc.AddBanner(context.Background(), CreateInput{ImageURL: "u"})

	res := svc.ToggleBannerStatus(context.Background(), created.Data.ID, false)
	require.True(t, res.Success)
	assert.Equal(t, "banner disabled", res.Message)

	patch := repo.patches[len(repo.patches)-1]
	assert.Equal(t, model.BannerPatch{IsActive: ptr(false), UpdatedAt: fixedNow}, patch)
}

func TestDeleteBannerIsLogical(t *testing.T) {
	svc, repo, _, _ := newTestService()
	created := svc.AddBanner(context.Background(), CreateInput{ImageURL: "u"})

	require.True(t, svc.DeleteBanner(context.Background(), created.Data.ID).Success)

	stored, ok := repo.banners[created.Data.ID]
	require.True(t, ok, "row must survive a delete")
	assert.Equal(t, model.Deleted, stored.IsDeleted)

	got := svc.Banner(context.Background(), created.Data.ID)
	assert.False(t, got.Success)
	assert.ErrorIs(t, got.Err(), storage.ErrBannerNotFound)

	again := svc.DeleteBanner(context.Background(), created.Data.ID)
	assert.False(t, again.Success)
}

func TestBannersReadOnly(t *testing.T) {
	svc, _, tx, _ := newTestService()
	svc.AddBanner(context.Background(), CreateInput{ImageURL: "a", SortOrder: ptr(2)})
	svc.AddBanner(context.Background(), CreateInput{ImageURL: "b", IsActive: ptr(false)})

	res := svc.Banners(context.Background(), true)
	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "a", res.Data[0].ImageURL)

	assert.Same(t, driver.ReadOnly, tx.opened[len(tx.opened)-1])
}

func TestBannersFailure(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.ForceError = errors.New("timeout")

	res := svc.Banners(context.Background(), false)
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
}
