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
	"strconv"

	"github.com/go-chi/render"
)

type NoticeDeleter interface {
	DeleteNotice(ctx context.Context, id int64, hard bool) response.Result[string]
}

func New(log *slog.Logger, noticeDeleter NoticeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Delete.New"

		log := log.With(
			slog.String("op", op),
		)

		id, ok := validator.PathID(r)
		if !ok {
			log.Error("failed convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		hard := false
		if v := r.URL.Query().Get("hard"); v != "" {
			var err error
			hard, err = strconv.ParseBool(v)
			if err != nil {
				log.Info("bad request", slog.String("hard", v))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.ErrBadRequest.Error()))
				return
			}
		}

		res := noticeDeleter.DeleteNotice(r.Context(), id, hard)
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

		log.Info("notice deleted", slog.Int64("id", id), slog.Bool("hard", hard))
		render.JSON(w, r, res)
	}
}
