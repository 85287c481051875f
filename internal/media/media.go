package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"motionview/internal/config"
	"motionview/pkg/log"
)

const defaultExpiry = time.Hour

// Resolver turns snapshot and video refs returned by the archive into
// fetchable URLs.
type Resolver interface {
	ImageURL(ref string) string
	VideoURL(ref string) string
}

func New(conf config.MediaConfig) (Resolver, error) {
	static := Static{ImageBase: conf.ImageBase, VideoBase: conf.VideoBase}
	if conf.S3 == nil {
		return static, nil
	}
	return NewMinIO(conf.S3, static)
}

// Static joins refs onto fixed base prefixes.
type Static struct {
	ImageBase string
	VideoBase string
}

func (s Static) ImageURL(ref string) string { return Join(s.ImageBase, ref) }

func (s Static) VideoURL(ref string) string { return Join(s.VideoBase, ref) }

// Join concatenates base and ref with exactly one slash between them.
func Join(base, ref string) string {
	if base == "" {
		return ref
	}
	if ref == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// MinIO hands out presigned GET URLs for media mirrored to a bucket.
type MinIO struct {
	cli         *minio.Client
	bucket      string
	imagePrefix string
	videoPrefix string
	expiry      time.Duration
	fallback    Static
	logger      *logrus.Entry
}

func NewMinIO(conf *config.S3Config, fallback Static) (*MinIO, error) {
	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}
	cli, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client failed: %w", err)
	}

	expiry := conf.Expiry
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	return &MinIO{
		cli:         cli,
		bucket:      conf.Bucket,
		imagePrefix: conf.ImagePrefix,
		videoPrefix: conf.VideoPrefix,
		expiry:      expiry,
		fallback:    fallback,
		logger:      log.ComponentLogger("media"),
	}, nil
}

func (m *MinIO) ImageURL(ref string) string {
	return m.presign(path.Join(m.imagePrefix, ref), m.fallback.ImageURL(ref))
}

func (m *MinIO) VideoURL(ref string) string {
	return m.presign(path.Join(m.videoPrefix, ref), m.fallback.VideoURL(ref))
}

func (m *MinIO) presign(key, fallback string) string {
	u, err := m.cli.PresignedGetObject(context.Background(), m.bucket, strings.TrimPrefix(key, "/"), m.expiry, nil)
	if err != nil {
		m.logger.WithError(err).Warnf("presign %s failed, using %s", key, fallback)
		return fallback
	}
	return u.String()
}
