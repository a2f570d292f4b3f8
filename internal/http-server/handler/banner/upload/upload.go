package upload

import (
	"context"
	"errors"
	bannerService "examadmin/internal/service/banner"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

const (
	formField = "file"
	// multipart framing around the file itself
	formOverhead = 1 << 20
)

type ImageUploader interface {
	UploadImage(ctx context.Context, up bannerService.Upload) (string, error)
	MaxUploadSize() int64
}

type Response struct {
	response.Response
	URL string `json:"data"`
}

func New(log *slog.Logger, imageUploader ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Upload.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("uploading banner image")

		r.Body = http.MaxBytesReader(w, r.Body, imageUploader.MaxUploadSize()+formOverhead)

		file, header, err := r.FormFile(formField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Warn("upload too large", sl.Err(err))
			} else {
				log.Info("failed to read multipart file", sl.Err(err))
			}
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.ErrInvalidImage.Error()))
			return
		}
		defer file.Close()

		url, err := imageUploader.UploadImage(r.Context(), bannerService.Upload{
			Body:         file,
			Size:         header.Size,
			Filename:     header.Filename,
			DeclaredType: header.Header.Get("Content-Type"),
		})
		if err != nil {
			if errors.Is(err, bannerService.ErrInvalidImage) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.ErrInvalidImage.Error()))
				return
			}
			log.Error("upload failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrUploadFailed.Error()))
			return
		}

		log.Info("banner image uploaded")
		render.JSON(w, r, Response{
			Response: response.OK(),
			URL:      url,
		})
	}
}
