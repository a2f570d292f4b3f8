package validator

import (
	"context"
	"errors"
	"examadmin/pkg/lib/api/response"
	"examadmin/pkg/lib/sl"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Key string

const (
	BodyKey = Key("request body")
	IDKey   = Key("path id")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Body decodes the JSON body into T, validates it and stores it in the
// request context under BodyKey.
func Body[T any](log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator.Body"

		log := log.With(
			slog.String("op", op),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			var req T
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				if errors.Is(err, io.EOF) {
					log.Info("request body is empty")
					badRequest(w, r, "request body is empty")
					return
				}
				log.Info("failed to decode request body", sl.Err(err))
				badRequest(w, r, "failed to decode request")
				return
			}

			if err := validate.Struct(req); err != nil {
				var validateErrs validator.ValidationErrors
				if errors.As(err, &validateErrs) {
					log.Info("invalid request", sl.Err(err))
					badRequest(w, r, ValidationError(validateErrs))
					return
				}
				log.Error("failed to validate request", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), BodyKey, req)))
		}

		return http.HandlerFunc(fn)
	}
}

// ID parses the {id} URL parameter as a positive integer and stores it in
// the request context under IDKey.
func ID(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator.ID"

		log := log.With(
			slog.String("op", op),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			param := chi.URLParam(r, "id")
			id, err := strconv.ParseInt(param, 10, 64)
			if err != nil || id <= 0 {
				log.Info("invalid id", slog.String("id", param))
				badRequest(w, r, "invalid id")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), IDKey, id)))
		}

		return http.HandlerFunc(fn)
	}
}

func Request[T any](r *http.Request) (T, bool) {
	req, ok := r.Context().Value(BodyKey).(T)
	return req, ok
}

func PathID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(IDKey).(int64)
	return id, ok
}

func ValidationError(errs validator.ValidationErrors) string {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "url":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid URL", err.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return strings.Join(errMsgs, ", ")
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(msg))
}
