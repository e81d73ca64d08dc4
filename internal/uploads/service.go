package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/internal/runtimeconfig"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// ErrDisabled is returned when no object storage is configured. The HTTP
// layer turns this into a "feature unavailable" response rather than a crash.
var ErrDisabled = errors.New("uploads: object storage not configured")

// objectStore is the slice of the minio client the service uses, extracted
// for tests.
type objectStore interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Service relays uploaded files to S3-compatible object storage and hands
// back a public URL.
type Service struct {
	store  objectStore
	cfg    runtimeconfig.UploadsConfig
	logger interfaces.Logger
	clock  func() time.Time
}

// ServiceOption mutates the service during construction.
type ServiceOption func(*Service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithStore overrides the object storage client, used by tests.
func WithStore(store objectStore) ServiceOption {
	return func(s *Service) {
		s.store = store
	}
}

// NewService constructs the upload relay. When the configuration carries no
// endpoint the service is disabled and every Upload returns ErrDisabled.
func NewService(cfg runtimeconfig.UploadsConfig, opts ...ServiceOption) (*Service, error) {
	svc := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}

	if svc.store == nil && cfg.Enabled() {
		client, err := minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("uploads: client: %w", err)
		}
		svc.store = client
	}

	return svc, nil
}

// Enabled reports whether the relay can accept files.
func (s *Service) Enabled() bool {
	return s != nil && s.store != nil
}

// Upload stores the file and returns its public URL. The object key embeds
// the upload timestamp so repeated uploads of the same filename never
// overwrite each other.
func (s *Service) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	object := s.objectKey(filename)
	opts := minio.PutObjectOptions{ContentType: contentType}

	if _, err := s.store.PutObject(ctx, s.cfg.Bucket, object, reader, size, opts); err != nil {
		s.logger.Error("uploads.put_failed", "object", object, "error", err)
		return "", fmt.Errorf("uploads: put object: %w", err)
	}

	url := s.publicURL(object)
	s.logger.Info("uploads.stored", "object", object, "url", url)
	return url, nil
}

// objectKey derives a collision-free object name from the original filename:
// millisecond timestamp plus the slugged base name, extension preserved.
func (s *Service) objectKey(filename string) string {
	stamp := strconv.FormatInt(s.clock().UnixMilli(), 10)

	ext := strings.ToLower(path.Ext(filename))
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	normalized, err := slug.Normalize(base)
	if err != nil || normalized == "" {
		return stamp + ext
	}
	return stamp + "-" + normalized + ext
}

func (s *Service) publicURL(object string) string {
	if base := strings.TrimRight(s.cfg.PublicBaseURL, "/"); base != "" {
		return base + "/" + s.cfg.Bucket + "/" + object
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + s.cfg.Endpoint + "/" + s.cfg.Bucket + "/" + object
}
