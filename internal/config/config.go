// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	App      App
	YTdlp    YTdlp
	Dir      Dir
	Metrics  Metrics
	Download Download
}

// App holds application-wide configuration.
type App struct {
	LogLevel string `env:"YTCLIP_APP_LOG_LEVEL" envDefault:"warn"`
}

// YTdlp holds settings of the external downloader binary.
type YTdlp struct {
	// Binary is a name looked up in PATH or an absolute path.
	Binary string `env:"YTCLIP_YTDLP_BINARY" envDefault:"yt-dlp"`
}

// Dir holds output naming settings.
type Dir struct {
	// joined with the output directory.
	// see: https://github.com/yt-dlp/yt-dlp/blob/2025.09.05/README.md#output-template
	FilenameTemplate string `env:"YTCLIP_DIR_FILENAME_TEMPLATE" envDefault:"%(title)s.%(ext)s"`
}

// Metrics holds metrics export configuration.
type Metrics struct {
	// Textfile is written in node_exporter textfile format on exit; empty disables it.
	Textfile string `env:"YTCLIP_METRICS_TEXTFILE" envDefault:""`
}

// Download holds download process configuration.
type Download struct {
	// InterruptGrace is how long yt-dlp gets to exit after an interrupt before it is killed.
	InterruptGrace time.Duration `env:"YTCLIP_DOWNLOAD_INTERRUPT_GRACE" envDefault:"10s"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := &Config{}

	err := env.Parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.YTdlp.Binary == "" {
		return nil, fmt.Errorf("ytdlp binary: empty value")
	}

	if cfg.Dir.FilenameTemplate == "" {
		return nil, fmt.Errorf("filename template: empty value")
	}

	return cfg, nil
}
