package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestInitConfig_Defaults(t *testing.T) {
	conf, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, QueryModeFreeText, conf.Viewer.QueryMode)
	assert.Equal(t, ColorModeRandom, conf.Viewer.ColorMode)
	assert.Equal(t, GalleryModeExpand, conf.Viewer.GalleryMode)
	assert.Equal(t, "/images/", conf.Media.ImageBase)
	assert.Equal(t, "/rec/", conf.Media.VideoBase)
	assert.Nil(t, conf.Media.S3)
}

func TestInitConfig_OverridesFromYAML(t *testing.T) {
	p := writeConfig(t, `
addr: 0.0.0.0:9000
backend:
  url: http://archive.local:8080
  timeout: 5s
viewer:
  queryMode: structured
  colorMode: hash
  galleryMode: representative
  iconMatch: contains
  badgeMode: confidence
  maxSessions: 4
media:
  imageBase: http://archive.local:8080/images/
  videoBase: http://archive.local:8080/rec/
  s3:
    bucket: motion
    endpoint: 127.0.0.1:9000
    expiry: 10m
`)

	conf, err := InitConfig(p)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", conf.Addr)
	assert.Equal(t, 5*time.Second, conf.Backend.Timeout)
	assert.Equal(t, QueryModeStructured, conf.Viewer.QueryMode)
	assert.Equal(t, ColorModeHash, conf.Viewer.ColorMode)
	assert.Equal(t, GalleryModeRepresentative, conf.Viewer.GalleryMode)
	assert.Equal(t, IconMatchContains, conf.Viewer.IconMatch)
	assert.Equal(t, BadgeModeConfidence, conf.Viewer.BadgeMode)
	assert.Equal(t, "today", conf.Viewer.InitialQuery)
	require.NotNil(t, conf.Media.S3)
	assert.Equal(t, "motion", conf.Media.S3.Bucket)
	assert.Equal(t, "us-east-1", conf.Media.S3.Region)
	assert.Equal(t, 10*time.Minute, conf.Media.S3.Expiry)
}

func TestInitConfig_RejectsUnknownMode(t *testing.T) {
	p := writeConfig(t, `
viewer:
  colorMode: rainbow
`)

	_, err := InitConfig(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ColorMode")
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
