package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadTools_Defaults(t *testing.T) {
	for _, key := range []string{
		"YTPRODL_FETCH_TOOL",
		"YTPRODL_PROBE_TOOL",
		"YTPRODL_TRANSCODE_TOOL",
		"YTPRODL_LOG_LEVEL",
		"YTPRODL_DOWNLOAD_DIR",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadTools()
	require.NoError(t, err)

	assert.Equal(t, "yt-dlp", cfg.FetchTool)
	assert.Equal(t, "ffprobe", cfg.ProbeTool)
	assert.Equal(t, "ffmpeg", cfg.TranscodeTool)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DownloadDir)
}

func TestLoadTools_Overrides(t *testing.T) {
	t.Setenv("YTPRODL_FETCH_TOOL", "/opt/bin/yt-dlp")
	t.Setenv("YTPRODL_PROBE_TOOL", "/opt/bin/ffprobe")
	t.Setenv("YTPRODL_TRANSCODE_TOOL", "/opt/bin/ffmpeg")
	t.Setenv("YTPRODL_LOG_LEVEL", "debug")
	t.Setenv("YTPRODL_DOWNLOAD_DIR", "/data/videos")

	cfg, err := LoadTools()
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/yt-dlp", cfg.FetchTool)
	assert.Equal(t, "/opt/bin/ffprobe", cfg.ProbeTool)
	assert.Equal(t, "/opt/bin/ffmpeg", cfg.TranscodeTool)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/videos", cfg.DownloadDir)
}

func TestLoadTools_InvalidLogLevel(t *testing.T) {
	unsetEnv(t, "YTPRODL_FETCH_TOOL")
	t.Setenv("YTPRODL_LOG_LEVEL", "loud")

	_, err := LoadTools()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestTools_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tools   Tools
		wantErr bool
	}{
		{
			name:  "valid",
			tools: Tools{FetchTool: "yt-dlp", ProbeTool: "ffprobe", TranscodeTool: "ffmpeg", LogLevel: "warn"},
		},
		{
			name:    "missing fetch tool",
			tools:   Tools{ProbeTool: "ffprobe", TranscodeTool: "ffmpeg", LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "missing transcode tool",
			tools:   Tools{FetchTool: "yt-dlp", ProbeTool: "ffprobe", LogLevel: "info"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tools.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
