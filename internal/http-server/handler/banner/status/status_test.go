package status

import (
	"context"
	"encoding/json"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/http-server/middleware/validator"
	"examadmin/pkg/lib/api/response"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToggler struct {
	err    error
	id     int64
	active *bool
}

func (f *fakeToggler) ToggleBannerStatus(_ context.Context, id int64, active bool) response.Result[string] {
	f.id = id
	f.active = &active
	if f.err != nil {
		return response.Fail[string](f.err, "failed to update banner status")
	}
	msg := "banner disabled"
	if active {
		msg = "banner enabled"
	}
	return response.Success(msg, msg)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		err     error
		code    int
		message string
		active  *bool
	}{
		{"enable", "/banners/2/status?active=true", nil, http.StatusOK, "banner enabled", ptr(true)},
		{"disable", "/banners/2/status?active=0", nil, http.StatusOK, "banner disabled", ptr(false)},
		{"bad flag", "/banners/2/status?active=yes", nil, http.StatusBadRequest, "query parameter active must be true or false", nil},
		{"missing or logically deleted", "/banners/2/status?active=true", fmt.Errorf("repo: %w", storage.ErrBannerNotFound), http.StatusNotFound, "failed to update banner status", ptr(true)},
		{"storage failure", "/banners/2/status?active=false", errors.New("conn reset"), http.StatusInternalServerError, "failed to update banner status", ptr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			toggler := &fakeToggler{err: tt.err}

			router := chi.NewRouter()
			router.With(validator.ID(log)).Patch("/banners/{id}/status", New(log, toggler))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.path, nil))

			require.Equal(t, tt.code, rec.Code)

			var res response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
			assert.Equal(t, tt.code == http.StatusOK, res.Success)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.active, toggler.active)
			if tt.active != nil {
				assert.Equal(t, int64(2), toggler.id)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
