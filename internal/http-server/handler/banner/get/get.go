package get

import (
	"context"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/middleware/validator"
	httpBanner "examadmin/internal/http-server/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerProvider interface {
	Banner(ctx context.Context, id int64) response.Result[model.Banner]
}

type Response struct {
	response.Response
	Banner *httpBanner.Banner `json:"data"`
}

func New(log *slog.Logger, bannerProvider BannerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Get.New"

		log := log.With(
			slog.String("op", op),
		)

		id, ok := validator.PathID(r)
		if !ok {
			log.Error("failed to get banner id")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		res := bannerProvider.Banner(r.Context(), id)
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

		render.JSON(w, r, Response{
			Response: response.OK(),
			Banner:   httpBanner.BannerDBtoBannerHTTP(res.Data),
		})
	}
}
