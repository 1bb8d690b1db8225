package model

import "errors"

// Pipeline errors. They end the current run and are recorded on
// PipelineRun.LastError; none of them crash the application.
var (
	// ErrEmptyURL is returned when a request has no URL.
	ErrEmptyURL = errors.New("empty URL")

	// ErrBusy is returned when a request is submitted while another run is in flight.
	ErrBusy = errors.New("a download is already in progress")

	// ErrToolNotFound is returned when an external tool cannot be launched.
	ErrToolNotFound = errors.New("external tool not found")

	// ErrToolFailed is returned when an external tool exits non-zero.
	ErrToolFailed = errors.New("external tool failed")

	// ErrNoOutputFound is returned when no media file is found after a fetch.
	ErrNoOutputFound = errors.New("no downloaded media file found")

	// ErrUnrecognizedChoice is returned for an unknown container or profile choice.
	ErrUnrecognizedChoice = errors.New("unrecognized choice")

	// ErrUserCancelled is returned when the user dismisses the conversion prompt.
	ErrUserCancelled = errors.New("cancelled by user")
)
