package banner

import (
	"context"
	"examadmin/internal/database/model"
	httpBanner "examadmin/internal/http-server/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

type BannerProvider interface {
	Banners(ctx context.Context, activeOnly bool) response.Result[[]model.Banner]
}

type Response struct {
	response.Response
	Banners []httpBanner.Banner `json:"data"`
}

func New(log *slog.Logger, bannerProvider BannerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("providing banners")

		activeOnly := false
		if v := r.URL.Query().Get("active"); v != "" {
			var err error
			activeOnly, err = strconv.ParseBool(v)
			if err != nil {
				log.Info("bad request", slog.String("active", v))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.ErrBadRequest.Error()))
				return
			}
		}

		res := bannerProvider.Banners(r.Context(), activeOnly)
		if !res.Success {
			log.Error("internal error", sl.Err(res.Err()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, res.Response)
			return
		}

		log.Info("banners provided", slog.Int("count", len(res.Data)))
		render.JSON(w, r, Response{
			Response: response.OK(),
			Banners:  httpBanner.BannersDBtoBannersHTTP(res.Data),
		})
	}
}
