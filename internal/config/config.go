package config

import "time"

const (
	QueryModeFreeText   = "freetext"
	QueryModeStructured = "structured"

	ColorModeRandom = "random"
	ColorModeHash   = "hash"

	GalleryModeExpand         = "expand"
	GalleryModeRepresentative = "representative"

	IconMatchExact    = "exact"
	IconMatchContains = "contains"

	BadgeModeClass      = "class"
	BadgeModeCount      = "count"
	BadgeModeConfidence = "confidence"
)

type BackendConfig struct {
	URL     string        `yaml:"url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

type S3Config struct {
	Bucket          string        `yaml:"bucket" validate:"required"`
	Endpoint        string        `yaml:"endpoint" validate:"required"`
	AccessKeyID     string        `yaml:"accessKeyID"`
	SecretAccessKey string        `yaml:"secretAccessKey"`
	UseSSL          bool          `yaml:"useSSL"`
	Region          string        `yaml:"region"`
	ImagePrefix     string        `yaml:"imagePrefix"`
	VideoPrefix     string        `yaml:"videoPrefix"`
	Expiry          time.Duration `yaml:"expiry" validate:"gte=0"`
}

type MediaConfig struct {
	ImageBase string    `yaml:"imageBase" validate:"required"`
	VideoBase string    `yaml:"videoBase" validate:"required"`
	S3        *S3Config `yaml:"s3,omitempty" validate:"omitempty"`
}

type ViewerConfig struct {
	QueryMode    string `yaml:"queryMode" validate:"oneof=freetext structured"`
	ColorMode    string `yaml:"colorMode" validate:"oneof=random hash"`
	GalleryMode  string `yaml:"galleryMode" validate:"oneof=expand representative"`
	IconMatch    string `yaml:"iconMatch" validate:"oneof=exact contains"`
	BadgeMode    string `yaml:"badgeMode" validate:"oneof=class count confidence"`
	InitialQuery string `yaml:"initialQuery" validate:"omitempty,oneof=today yesterday"`
	MaxSessions  int    `yaml:"maxSessions" validate:"gt=0"`
}

type Config struct {
	Addr    string        `yaml:"addr" validate:"required"`
	SSLCert string        `yaml:"sslCert"`
	SSLKey  string        `yaml:"sslKey"`
	Backend BackendConfig `yaml:"backend"`
	Media   MediaConfig   `yaml:"media"`
	Viewer  ViewerConfig  `yaml:"viewer"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: "127.0.0.1:8090",
		Backend: BackendConfig{
			URL:     "http://127.0.0.1:8080",
			Timeout: 30 * time.Second,
		},
		Media: MediaConfig{
			ImageBase: "/images/",
			VideoBase: "/rec/",
		},
		Viewer: ViewerConfig{
			QueryMode:    QueryModeFreeText,
			ColorMode:    ColorModeRandom,
			GalleryMode:  GalleryModeExpand,
			IconMatch:    IconMatchExact,
			BadgeMode:    BadgeModeCount,
			InitialQuery: "today",
			MaxSessions:  64,
		},
	}
}
