package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadTools
const EnvPrefix = "YTPRODL"

// Tools holds the external tool names and diagnostics settings taken from the
// environment, e.g. YTPRODL_FETCH_TOOL=/opt/bin/yt-dlp.
type Tools struct {
	FetchTool     string `envconfig:"FETCH_TOOL" default:"yt-dlp" validate:"required"`
	ProbeTool     string `envconfig:"PROBE_TOOL" default:"ffprobe" validate:"required"`
	TranscodeTool string `envconfig:"TRANSCODE_TOOL" default:"ffmpeg" validate:"required"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`

	// DownloadDir overrides the default destination when the shell has none
	DownloadDir string `envconfig:"DOWNLOAD_DIR"`
}

// LoadTools reads Tools from the environment and validates it
func LoadTools() (*Tools, error) {
	cfg := &Tools{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks the tool configuration
func (t *Tools) Validate() error {
	return validator.New().Struct(t)
}
