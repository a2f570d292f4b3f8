package response

import "errors"

const (
	StatusOK      = "OK"
	StatusCreated = "Created"
)

var (
	ErrServerInternal = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("not found")
	ErrInvalidImage   = errors.New("invalid image")
	ErrUploadFailed   = errors.New("upload failed, please try again later")
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK() Response {
	return Response{Success: true, Message: StatusOK}
}

func Created() Response {
	return Response{Success: true, Message: StatusCreated}
}

func Error(msg string) Response {
	return Response{Success: false, Message: msg}
}

// Result is a Response carrying either a payload or a failure message.
// The failure cause is kept out of the JSON body and exposed through Err.
type Result[T any] struct {
	Response
	Data T `json:"data"`

	err error
}

func Success[T any](data T, msg string) Result[T] {
	return Result[T]{
		Response: Response{Success: true, Message: msg},
		Data:     data,
	}
}

func Fail[T any](err error, msg string) Result[T] {
	if err == nil {
		err = errors.New(msg)
	}
	return Result[T]{
		Response: Error(msg),
		err:      err,
	}
}

func (r Result[T]) Err() error {
	return r.err
}
