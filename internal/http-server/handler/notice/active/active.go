package active

import (
	"context"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/handler/notice"
	"examadmin/pkg/lib/api/response"
	"log/slog"
	"net/http"
)

type ActiveNoticeProvider interface {
	ActiveNotices(ctx context.Context) response.Result[[]model.Notice]
}

func New(log *slog.Logger, provider ActiveNoticeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Active.New"

		log := log.With(
			slog.String("op", op),
		)

		notice.Render(w, r, log, provider.ActiveNotices(r.Context()))
	}
}
