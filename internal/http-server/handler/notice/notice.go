package notice

import (
	"context"
	"examadmin/internal/database/model"
	httpNotice "examadmin/internal/http-server/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type NoticeProvider interface {
	AllNotices(ctx context.Context) response.Result[[]model.Notice]
}

type Response struct {
	response.Response
	Notices []httpNotice.Notice `json:"data"`
}

func New(log *slog.Logger, noticeProvider NoticeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.New"

		log := log.With(
			slog.String("op", op),
		)

		res := noticeProvider.AllNotices(r.Context())
		Render(w, r, log, res)
	}
}

// Render writes a notice list result; the list endpoints share it.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, res response.Result[[]model.Notice]) {
	if !res.Success {
		log.Error("internal error", sl.Err(res.Err()))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, res.Response)
		return
	}

	log.Info("notices provided", slog.Int("count", len(res.Data)))
	render.JSON(w, r, Response{
		Response: response.OK(),
		Notices:  httpNotice.NoticesDBtoNoticesHTTP(res.Data),
	})
}
