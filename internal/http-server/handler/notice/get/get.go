package get

import (
	"context"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/middleware/validator"
	httpNotice "examadmin/internal/http-server/model"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type NoticeProvider interface {
	Notice(ctx context.Context, id int64) response.Result[model.Notice]
}

type Response struct {
	response.Response
	Notice *httpNotice.Notice `json:"data"`
}

func New(log *slog.Logger, noticeProvider NoticeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Get.New"

		log := log.With(
			slog.String("op", op),
		)

		id, ok := validator.PathID(r)
		if !ok {
			log.Error("failed to get notice id")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		res := noticeProvider.Notice(r.Context(), id)
		if !res.Success {
			if errors.Is(res.Err(), storage.ErrNoticeNotFound) {
				log.Info("notice not found", slog.Int64("id", id))
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
			Notice:   httpNotice.NoticeDBtoNoticeHTTP(res.Data),
		})
	}
}
