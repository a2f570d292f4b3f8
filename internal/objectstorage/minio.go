// Package objectstorage stores uploaded binaries in an S3-compatible bucket.
package objectstorage

import (
	"context"
	"examadmin/pkg/lib/sl"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	// PublicURL overrides the scheme://endpoint base of returned URLs.
	PublicURL string
}

type Client struct {
	log     *slog.Logger
	client  *minio.Client
	bucket  string
	baseURL string
	now     func() time.Time
	newID   func() string
}

func New(log *slog.Logger, cfg Config) (*Client, error) {
	const op = "objectstorage.New"

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Client{
		log:     log,
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL(cfg),
		now:     time.Now,
		newID:   uuid.NewString,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context, region string) error {
	const op = "objectstorage.EnsureBucket"

	log := c.log.With(
		slog.String("op", op),
		slog.String("bucket", c.bucket),
	)

	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		log.Error("failed to check bucket", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil
	}

	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		log.Error("failed to create bucket", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("bucket created")

	return nil
}

// UploadFile streams body into the bucket under prefix and returns its URL.
func (c *Client) UploadFile(ctx context.Context, prefix string, body io.Reader, size int64, contentType string) (string, error) {
	const op = "objectstorage.UploadFile"

	name := objectName(prefix, contentType, c.now(), c.newID())

	info, err := c.client.PutObject(ctx, c.bucket, name, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug("object stored",
		slog.String("op", op),
		slog.String("object", name),
		slog.Int64("size", info.Size),
	)

	return c.baseURL + "/" + c.bucket + "/" + name, nil
}

func objectName(prefix, contentType string, now time.Time, id string) string {
	ext := ""
	if m := mimetype.Lookup(contentType); m != nil {
		ext = m.Extension()
	}

	return path.Join(strings.Trim(prefix, "/"), now.UTC().Format("2006/01/02"), id+ext)
}

func baseURL(cfg Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return scheme + "://" + cfg.Endpoint
}
