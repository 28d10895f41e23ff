package artifact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// maxArtifactBytes bounds how much of an artifact is read into memory.
const maxArtifactBytes = 256 << 20

// Source yields the raw bytes of an artifact.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Location() string
}

// Load reads, validates and decodes an artifact. Any failure to reach the bytes is
// reported as model_not_found; bad contents as model_invalid.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*Model, error) {
	log := logger.With("component", "artifact.loader", "location", src.Location())

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeModelNotFound, fmt.Sprintf("model file '%s' not found", src.Location()), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxArtifactBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeModelNotFound, fmt.Sprintf("model file '%s' is unreadable", src.Location()), err)
	}
	if len(data) > maxArtifactBytes {
		return nil, apperrors.Wrap(apperrors.CodeModelInvalid, "model artifact exceeds size limit", nil)
	}

	model, err := Decode(data)
	if err != nil {
		return nil, err
	}
	log.Info("model artifact loaded", "name", model.name, "version", model.version, "kind", model.kind, "features", len(model.features))
	return model, nil
}

// FileSource reads an artifact from the local filesystem.
type FileSource struct {
	Path string
}

// Open implements Source.
func (s FileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// Location implements Source.
func (s FileSource) Location() string {
	return s.Path
}

// S3Source reads an artifact from an S3-compatible bucket (R2, MinIO, S3).
type S3Source struct {
	client *minio.Client
	bucket string
	key    string
}

// S3Options carries the connection settings for NewS3Source.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	Key       string
}

// NewS3Source builds a bucket-backed source.
func NewS3Source(opts S3Options) (*S3Source, error) {
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(opts.Endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(opts.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       useSSL,
		Region:       opts.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Source{client: client, bucket: opts.Bucket, key: strings.TrimLeft(opts.Key, "/")}, nil
}

// Open implements Source. The object is stat'ed first so a missing key fails here
// rather than on the first read.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if code := minio.ToErrorResponse(err).Code; code != "" {
			return nil, fmt.Errorf("stat object (%s): %w", code, err)
		}
		return nil, fmt.Errorf("stat object: %w", err)
	}
	return obj, nil
}

// Location implements Source.
func (s *S3Source) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func sanitizeEndpoint(endpoint string) string {
	clean := strings.TrimSpace(endpoint)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	return strings.TrimRight(clean, "/")
}

var (
	_ Source = FileSource{}
	_ Source = (*S3Source)(nil)
)
