// Package runner executes external command-line tools and folds every outcome,
// including a tool that cannot be launched, into a model.CommandResult.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-prodl/internal/logging"
	"github.com/ytget/yt-prodl/internal/model"
)

// LaunchFailureExitCode is reported when the process never started
const LaunchFailureExitCode = 1

// Runner runs an external command and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) model.CommandResult
}

// ExecRunner is the os/exec implementation of Runner
type ExecRunner struct {
	log *logrus.Entry
}

// NewExecRunner creates a runner that logs through logger
func NewExecRunner(logger logrus.FieldLogger) *ExecRunner {
	return &ExecRunner{log: logging.Component(logger, "runner")}
}

// Run executes name with args. It never returns an error: launch failures are
// reported with exit code 1 and the error text in Stderr. No timeout is applied.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) model.CommandResult {
	r.log.Infoln(name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := model.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = LaunchFailureExitCode
			result.Stderr = err.Error()
			result.LaunchErr = err
		}
		r.log.WithField("exit_code", result.ExitCode).Errorf("%s error: %v", name, err)
	}

	r.log.WithFields(logrus.Fields{
		"exit_code":    result.ExitCode,
		"stdout_bytes": len(result.Stdout),
		"stderr_bytes": len(result.Stderr),
	}).Debugf("%s finished", name)

	return result
}

// IsToolNotFound reports whether result failed because the executable is missing
func IsToolNotFound(result model.CommandResult) bool {
	return result.LaunchErr != nil && errors.Is(result.LaunchErr, exec.ErrNotFound)
}
