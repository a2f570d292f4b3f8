package delete

import (
	"context"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/http-server/middleware/validator"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerDeleter interface {
	DeleteBanner(ctx context.Context, id int64) response.Result[string]
}

func New(log *slog.Logger, bannerDeleter BannerDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Delete.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("deleting banner")

		id, ok := validator.PathID(r)
		if !ok {
			log.Error("failed convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		res := bannerDeleter.DeleteBanner(r.Context(), id)
		if !res.Success {
			if errors.Is(res.Err(), storage.ErrBannerNotFound) {
				log.Info("banner not found", slog.Int64("id", id))
				render.Status(r, http.StatusNotFound)
			} else {
				log.Error("internal error", sl.Err(res.Err()))
				render.Status(r, http.StatusInternalServerError)
			}
			render.JSON(w, r, res.Response)
			return
		}

		log.Info("banner deleted", slog.Int64("id", id))
		render.JSON(w, r, res)
	}
}
