package create

import (
	"context"
	"encoding/json"
	"errors"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/middleware/validator"
	bannerService "examadmin/internal/service/banner"
	"examadmin/pkg/lib/api/response"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	err error
	in  *bannerService.CreateInput
}

func (f *fakeCreator) AddBanner(_ context.Context, in bannerService.CreateInput) response.Result[model.Banner] {
	f.in = &in
	if f.err != nil {
		return response.Fail[model.Banner](f.err, "failed to add banner")
	}
	b := model.Banner{Title: in.Title, ImageURL: in.ImageURL, IsActive: true}
	b.ID = 11
	return response.Success(b, "banner added")
}

type body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		ID       int64  `json:"id"`
		ImageURL string `json:"image_url"`
	} `json:"data"`
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		code    int
		called  bool
	}{
		{"created", `{"title":"spring exams","image_url":"https://cdn.example.com/s.png"}`, nil, http.StatusCreated, true},
		{"invalid body", `{"title":"spring exams"}`, nil, http.StatusBadRequest, false},
		{"storage failure", `{"image_url":"https://cdn.example.com/s.png"}`, errors.New("db down"), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			creator := &fakeCreator{err: tt.err}

			router := chi.NewRouter()
			router.With(validator.Body[validator.CreateBannerRequest](log)).Post("/banners", New(log, creator))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/banners", strings.NewReader(tt.payload)))

			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.called, creator.in != nil)

			var b body
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&b))
			if tt.code != http.StatusCreated {
				assert.False(t, b.Success)
				return
			}

			assert.True(t, b.Success)
			assert.Equal(t, response.StatusCreated, b.Message)
			require.NotNil(t, b.Data)
			assert.Equal(t, int64(11), b.Data.ID)
			assert.Equal(t, "https://cdn.example.com/s.png", b.Data.ImageURL)
			assert.Nil(t, creator.in.IsActive)
		})
	}
}
