package banner

import (
	"context"
	"encoding/json"
	"errors"
	"examadmin/internal/database/model"
	"examadmin/pkg/lib/api/response"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	err        error
	calls      int
	activeOnly bool
}

func (f *fakeProvider) Banners(_ context.Context, activeOnly bool) response.Result[[]model.Banner] {
	f.calls++
	f.activeOnly = activeOnly
	if f.err != nil {
		return response.Fail[[]model.Banner](f.err, "failed to list banners")
	}
	first := model.Banner{ImageURL: "https://cdn.example.com/1.png", IsActive: true}
	first.ID = 1
	second := model.Banner{ImageURL: "https://cdn.example.com/2.png", SortOrder: 1}
	second.ID = 2
	return response.Success([]model.Banner{first, second}, "")
}

type body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

func TestBanners(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		code       int
		called     bool
		activeOnly bool
	}{
		{"all", "", nil, http.StatusOK, true, false},
		{"active only", "?active=true", nil, http.StatusOK, true, true},
		{"bad flag", "?active=sometimes", nil, http.StatusBadRequest, false, false},
		{"storage failure", "", errors.New("timeout"), http.StatusInternalServerError, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: tt.err}
			log := slog.New(slog.NewTextHandler(io.Discard, nil))

			rec := httptest.NewRecorder()
			New(log, provider).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/banners"+tt.query, nil))

			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.called, provider.calls == 1)
			assert.Equal(t, tt.activeOnly, provider.activeOnly)

			var b body
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&b))
			assert.Equal(t, tt.code == http.StatusOK, b.Success)
			if tt.code == http.StatusOK {
				require.Len(t, b.Data, 2)
				assert.Equal(t, int64(1), b.Data[0].ID)
				assert.Equal(t, int64(2), b.Data[1].ID)
			}
		})
	}
}
