package banner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"examadmin/pkg/lib/sl"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultMaxUploadSize int64 = 5 << 20

	uploadPrefix = "banners"
	// headLen bytes are buffered before the upload starts; enough for the
	// magic number and the RIFF sub-type check.
	headLen = 512
)

var (
	ErrInvalidImage = errors.New("invalid image")
	ErrUploadFailed = errors.New("image upload failed")
)

type ImageStorage interface {
	UploadFile(ctx context.Context, prefix string, body io.Reader, size int64, contentType string) (string, error)
}

type UploadPolicy struct {
	MaxSize        int64
	AllowedTypes   []string
	DangerousTypes []string
}

func DefaultUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize:        DefaultMaxUploadSize,
		AllowedTypes:   []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		DangerousTypes: []string{"image/svg+xml", "image/x-icon"},
	}
}

func (p UploadPolicy) withDefaults() UploadPolicy {
	def := DefaultUploadPolicy()
	if p.MaxSize <= 0 {
		p.MaxSize = def.MaxSize
	}
	if len(p.AllowedTypes) == 0 {
		p.AllowedTypes = def.AllowedTypes
	}
	if p.DangerousTypes == nil {
		p.DangerousTypes = def.DangerousTypes
	}
	return p
}

func (p UploadPolicy) checkSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if size > p.MaxSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInvalidImage, size, p.MaxSize)
	}
	return nil
}

func (p UploadPolicy) checkType(contentType string) error {
	switch {
	case contentType == "":
		return fmt.Errorf("%w: unrecognized file type", ErrInvalidImage)
	case slices.Contains(p.DangerousTypes, contentType):
		return fmt.Errorf("%w: %s is not supported", ErrInvalidImage, contentType)
	case !slices.Contains(p.AllowedTypes, contentType):
		return fmt.Errorf("%w: %s is not an allowed image type", ErrInvalidImage, contentType)
	}
	return nil
}

// MaxUploadSize is the effective size limit after defaults are applied.
func (s *Service) MaxUploadSize() int64 {
	return s.policy.MaxSize
}

// Upload is an image as received from the client. DeclaredType is only
// logged; the stored content type always comes from the file itself.
type Upload struct {
	Body         io.Reader
	Size         int64
	Filename     string
	DeclaredType string
}

// UploadImage validates an image by its content and stores it, returning
// the public URL. Rejections wrap ErrInvalidImage, I/O failures wrap
// ErrUploadFailed.
func (s *Service) UploadImage(ctx context.Context, up Upload) (string, error) {
	const op = "service.banner.UploadImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", up.Filename),
		slog.Int64("size", up.Size),
	)

	if err := s.policy.checkSize(up.Size); err != nil {
		log.Warn("image rejected", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var url string
	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context) error {
		head := make([]byte, headLen)
		n, err := io.ReadFull(up.Body, head)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: read header: %w", ErrUploadFailed, err)
		}
		head = head[:n]

		contentType, err := s.detect(bytes.NewReader(head))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		if up.DeclaredType != "" && up.DeclaredType != contentType {
			log.Warn("declared content type differs from detected",
				slog.String("declared", up.DeclaredType),
				slog.String("detected", contentType),
			)
		}

		if err := s.policy.checkType(contentType); err != nil {
			return err
		}
		// the RIFF magic number is shared with WAV and AVI
		if contentType == "image/webp" && !mimetype.Detect(head).Is("image/webp") {
			return fmt.Errorf("%w: RIFF container is not WebP", ErrInvalidImage)
		}

		body := io.MultiReader(bytes.NewReader(head), up.Body)
		url, err = s.storage.UploadFile(ctx, uploadPrefix, body, up.Size, contentType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			log.Warn("image rejected", sl.Err(err))
		} else {
			log.Error("failed to upload image", sl.Err(err))
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image uploaded", slog.String("url", url))

	return url, nil
}
