package update

import (
	"context"
	"errors"
	storage "examadmin/internal/database"
	"examadmin/internal/http-server/middleware/validator"
	noticeService "examadmin/internal/service/notice"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type NoticeUpdater interface {
	UpdateNotice(ctx context.Context, id int64, in noticeService.UpdateInput) response.Result[string]
}

func New(log *slog.Logger, noticeUpdater NoticeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Update.New"

		log := log.With(
			slog.String("op", op),
		)

		id, idOK := validator.PathID(r)
		req, reqOK := validator.Request[validator.UpdateNoticeRequest](r)
		if !idOK || !reqOK {
			log.Error("failed to convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		res := noticeUpdater.UpdateNotice(r.Context(), id, noticeService.UpdateInput{
			Title:    req.Title,
			Content:  req.Content,
			Type:     req.Type,
			Priority: req.Priority,
			IsActive: req.IsActive,
		})
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

		log.Info("notice updated", slog.Int64("id", id))
		render.JSON(w, r, res)
	}
}
