package runner

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-prodl/internal/logging"
)

// TestHelperProcess is not a real test. It is re-executed as a child process
// by the tests below to play the part of an external tool.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}
	if len(args) == 0 {
		os.Exit(2)
	}

	switch args[0] {
	case "echo":
		fmt.Fprint(os.Stdout, "vp9\n")
		fmt.Fprint(os.Stderr, "warning: something\n")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "ERROR: unsupported URL\n")
		os.Exit(3)
	}
	os.Exit(2)
}

func helperArgs(mode string) []string {
	return []string{"-test.run=TestHelperProcess", "--", mode}
}

func TestExecRunner_Success(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	r := NewExecRunner(logging.Discard())

	result := r.Run(context.Background(), os.Args[0], helperArgs("echo")...)

	require.NoError(t, result.LaunchErr)
	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Success())
	assert.Equal(t, "vp9\n", result.Stdout)
	assert.Contains(t, result.Stderr, "warning: something")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	r := NewExecRunner(logging.Discard())

	result := r.Run(context.Background(), os.Args[0], helperArgs("fail")...)

	assert.NoError(t, result.LaunchErr)
	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.Success())
	assert.Contains(t, result.Stderr, "unsupported URL")
	assert.False(t, IsToolNotFound(result))
}

func TestExecRunner_ToolNotFound(t *testing.T) {
	r := NewExecRunner(logging.Discard())

	result := r.Run(context.Background(), "yt-prodl-definitely-missing-tool", "--version")

	assert.Equal(t, LaunchFailureExitCode, result.ExitCode)
	assert.Empty(t, result.Stdout)
	assert.NotEmpty(t, result.Stderr)
	require.Error(t, result.LaunchErr)
	assert.Equal(t, result.LaunchErr.Error(), result.Stderr)
	assert.True(t, IsToolNotFound(result))
}
