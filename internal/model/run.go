package model

import (
	"fmt"
	"strings"
	"time"
)

// PipelineRun records one invocation of the download pipeline
type PipelineRun struct {
	ID            string
	Request       DownloadRequest
	Stage         Stage
	Status        RunStatus
	OutputPath    string    // file located after the fetch
	Codec         string    // probed video codec, MP4 runs only
	ConvertedPath string    // conversion output, if any
	LastError     error     // failure or cancellation reason
	StartedAt     time.Time // when the pipeline started
	FinishedAt    time.Time // when the pipeline reached Done
}

// NewPipelineRun creates a pending run for req
func NewPipelineRun(id string, req DownloadRequest) *PipelineRun {
	return &PipelineRun{
		ID:      id,
		Request: req,
		Stage:   StageIdle,
		Status:  RunStatusPending,
	}
}

// Fail marks the run as failed with err
func (r *PipelineRun) Fail(err error) {
	r.Status = RunStatusError
	r.LastError = err
}

// Cancel marks the run as cancelled with err
func (r *PipelineRun) Cancel(err error) {
	r.Status = RunStatusCancelled
	r.LastError = err
}

// GetElapsedString returns the run duration formatted as hh:mm:ss or mm:ss,
// or "—" if the run has not finished
func (r *PipelineRun) GetElapsedString() string {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return "—"
	}

	total := int(r.FinishedAt.Sub(r.StartedAt).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns the output file name, or the URL if nothing was downloaded
func (r *PipelineRun) GetDisplayTitle() string {
	if r.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(r.OutputPath, func(c rune) bool {
			return c == '/' || c == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}
	return r.Request.URL
}
