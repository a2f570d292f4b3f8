package create

import (
	"context"
	"examadmin/internal/database/model"
	"examadmin/internal/http-server/middleware/validator"
	httpNotice "examadmin/internal/http-server/model"
	noticeService "examadmin/internal/service/notice"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type NoticeCreator interface {
	AddNotice(ctx context.Context, in noticeService.CreateInput) response.Result[model.Notice]
}

type Response struct {
	response.Response
	Notice *httpNotice.Notice `json:"data"`
}

func New(log *slog.Logger, noticeCreator NoticeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Notice.Create.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("creating notice")

		req, ok := validator.Request[validator.CreateNoticeRequest](r)
		if !ok {
			log.Error("failed to convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		res := noticeCreator.AddNotice(r.Context(), noticeService.CreateInput{
			Title:    req.Title,
			Content:  req.Content,
			Type:     req.Type,
			Priority: req.Priority,
			IsActive: req.IsActive,
		})
		if !res.Success {
			log.Error("internal error", sl.Err(res.Err()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, res.Response)
			return
		}

		log.Info("notice created", slog.Int64("id", res.Data.ID))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.Created(),
			Notice:   httpNotice.NoticeDBtoNoticeHTTP(res.Data),
		})
	}
}
