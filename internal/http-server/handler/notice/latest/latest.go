package latest

import (
	"context"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/handler/notice"
	"examadmin/pkg/lib/api/response"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

type LatestNoticeProvider interface {
	LatestNotices(ctx context.Context, limit int) response.Result[[]model.Notice]
}

func New(log *slog.Logger, provider LatestNoticeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Latest.New"

		log := log.With(
			slog.String("op", op),
		)

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			var err error
			limit, err = strconv.Atoi(v)
			if err != nil {
				log.Info("bad request", slog.String("limit", v))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("query parameter limit must be a number"))
				return
			}
		}

		notice.Render(w, r, log, provider.LatestNotices(r.Context(), limit))
	}
}
