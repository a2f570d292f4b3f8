package banner

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"

	storage "examadmin/internal/database"
	"examadmin/internal/database/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	mu      sync.Mutex
	banners map[int64]*model.Banner
	nextID  int64
	patches []model.BannerPatch

	ForceError error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{banners: make(map[int64]*model.Banner)}
}

func (f *fakeRepository) Save(_ context.Context, banner *model.Banner) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForceError != nil {
		return f.ForceError
	}
	f.nextID++
	banner.ID = f.nextID
	stored := *banner
	f.banners[banner.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateByID(_ context.Context, id int64, patch model.BannerPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForceError != nil {
		return f.ForceError
	}
	b, ok := f.banners[id]
	if !ok || b.IsDeleted == model.Deleted {
		return storage.ErrBannerNotFound
	}
	f.patches = append(f.patches, patch)
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.ImageURL != nil {
		b.ImageURL = *patch.ImageURL
	}
	if patch.LinkURL != nil {
		b.LinkURL = *patch.LinkURL
	}
	if patch.IsActive != nil {
		b.IsActive = *patch.IsActive
	}
	if patch.SortOrder != nil {
		b.SortOrder = *patch.SortOrder
	}
	b.UpdatedAt = patch.UpdatedAt
	return nil
}

func (f *fakeRepository) RemoveByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.banners[id]
	if !ok || b.IsDeleted == model.Deleted {
		return storage.ErrBannerNotFound
	}
	b.IsDeleted = model.Deleted
	return nil
}

func (f *fakeRepository) BannerByID(_ context.Context, id int64) (*model.Banner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.banners[id]
	if !ok || b.IsDeleted == model.Deleted {
		return nil, storage.ErrBannerNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeRepository) Banners(_ context.Context, activeOnly bool) ([]model.Banner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ForceError != nil {
		return nil, f.ForceError
	}
	out := make([]model.Banner, 0, len(f.banners))
	for _, b := range f.banners {
		if b.IsDeleted == model.Deleted || (activeOnly && !b.IsActive) {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// fakeTx records every scope it opens and whether it was committed.
type fakeTx struct {
	opened    []*sql.TxOptions
	rollbacks int
	commits   int
}

func (f *fakeTx) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	f.opened = append(f.opened, opts)
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type uploadCall struct {
	prefix      string
	body        []byte
	size        int64
	contentType string
}

type fakeStorage struct {
	calls []uploadCall
	url   string
	err   error
}

func (f *fakeStorage) UploadFile(_ context.Context, prefix string, body io.Reader, size int64, contentType string) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.calls = append(f.calls, uploadCall{prefix: prefix, body: b, size: size, contentType: contentType})
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
