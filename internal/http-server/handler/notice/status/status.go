package status

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

type NoticeStatusToggler interface {
	ToggleNoticeStatus(ctx context.Context, id int64, active bool) response.Result[string]
}

func New(log *slog.Logger, toggler NoticeStatusToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Status.New"

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

		active, err := strconv.ParseBool(r.URL.Query().Get("active"))
		if err != nil {
			log.Info("bad request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("query parameter active must be true or false"))
			return
		}

		res := toggler.ToggleNoticeStatus(r.Context(), id, active)
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

		log.Info("notice status updated", slog.Int64("id", id), slog.Bool("active", active))
		render.JSON(w, r, res)
	}
}
