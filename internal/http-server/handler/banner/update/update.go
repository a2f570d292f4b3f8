package update

import (
	"context"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/http-server/middleware/validator"
	bannerService "examadmin/internal/service/banner"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerUpdater interface {
	UpdateBanner(ctx context.Context, id int64, in bannerService.UpdateInput) response.Result[string]
}

func New(log *slog.Logger, bannerUpdater BannerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Update.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("updating banner")

		id, idOK := validator.PathID(r)
		req, reqOK := validator.Request[validator.UpdateBannerRequest](r)
		if !idOK || !reqOK {
			log.Error("failed convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		log.Debug("request body decoded", slog.Int64("id", id), slog.Any("request", req))

		res := bannerUpdater.UpdateBanner(r.Context(), id, bannerService.UpdateInput{
			Title:     req.Title,
			ImageURL:  req.ImageURL,
			LinkURL:   req.LinkURL,
			IsActive:  req.IsActive,
			SortOrder: req.SortOrder,
		})
		if !res.Success {
			if errors.Is(res.Err(), storage.ErrBannerNotFound) {
				log.Info("banner not found")
				render.Status(r, http.StatusNotFound)
			} else {
				log.Error("internal error", sl.Err(res.Err()))
				render.Status(r, http.StatusInternalServerError)
			}
			render.JSON(w, r, res.Response)
			return
		}

		log.Info("banner updated")
		render.JSON(w, r, res)
	}
}
