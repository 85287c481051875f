package media

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionview/internal/config"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "/images/2024-01-15/a.jpg", Join("/images/", "2024-01-15/a.jpg"))
	assert.Equal(t, "/images/a.jpg", Join("/images", "/a.jpg"))
	assert.Equal(t, "http://archive:8080/rec/clip.mp4", Join("http://archive:8080/rec/", "clip.mp4"))
	assert.Equal(t, "a.jpg", Join("", "a.jpg"))
	assert.Equal(t, "/rec/", Join("/rec/", ""))
}

func TestNew_Static(t *testing.T) {
	r, err := New(config.MediaConfig{ImageBase: "/images/", VideoBase: "/rec/"})
	require.NoError(t, err)

	assert.Equal(t, "/images/s.jpg", r.ImageURL("s.jpg"))
	assert.Equal(t, "/rec/v.mp4", r.VideoURL("v.mp4"))
}

func TestMinIO_Presigns(t *testing.T) {
	r, err := New(config.MediaConfig{
		ImageBase: "/images/",
		VideoBase: "/rec/",
		S3: &config.S3Config{
			Bucket:          "motion",
			Endpoint:        "127.0.0.1:9000",
			AccessKeyID:     "minio",
			SecretAccessKey: "minio123",
			Region:          "us-east-1",
			ImagePrefix:     "snapshots",
			VideoPrefix:     "clips",
			Expiry:          15 * time.Minute,
		},
	})
	require.NoError(t, err)
	require.IsType(t, &MinIO{}, r)

	u, err := url.Parse(r.ImageURL("2024-01-15/a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", u.Host)
	assert.Equal(t, "/motion/snapshots/2024-01-15/a.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	v, err := url.Parse(r.VideoURL("clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "/motion/clips/clip.mp4", v.Path)
}
