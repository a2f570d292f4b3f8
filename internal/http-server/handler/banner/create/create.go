package create

import (
	"context"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/middleware/validator"
	httpBanner "examadmin/internal/http-server/model"
	bannerService "examadmin/internal/service/banner"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerCreator interface {
	AddBanner(ctx context.Context, in bannerService.CreateInput) response.Result[model.Banner]
}

type Response struct {
	response.Response
	Banner *httpBanner.Banner `json:"data"`
}

func New(log *slog.Logger, bannerCreator BannerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Create.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("creating banner")

		req, ok := validator.Request[validator.CreateBannerRequest](r)
		if !ok {
			log.Error("failed convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		res := bannerCreator.AddBanner(r.Context(), bannerService.CreateInput{
			Title:     req.Title,
			ImageURL:  req.ImageURL,
			LinkURL:   req.LinkURL,
			IsActive:  req.IsActive,
			SortOrder: req.SortOrder,
		})
		if !res.Success {
			log.Error("internal error", sl.Err(res.Err()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, res.Response)
			return
		}

		log.Info("banner created", slog.Int64("id", res.Data.ID))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.Created(),
			Banner:   httpBanner.BannerDBtoBannerHTTP(res.Data),
		})
	}
}
