package model

// RunStatus represents the overall status of a pipeline run
type RunStatus string

const (
	// RunStatusPending means the run was created but the pipeline has not started
	RunStatusPending RunStatus = "Pending"

	// RunStatusRunning means the pipeline is executing
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means the pipeline reached Done without a failure
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusCancelled means the user declined or aborted a choice
	RunStatusCancelled RunStatus = "Cancelled"

	// RunStatusError means the pipeline ended on a failure path
	RunStatusError RunStatus = "Error"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if the run is in progress
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsFinished returns true if the run is in a finished state (completed, cancelled, or error)
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusCancelled || rs == RunStatusError
}

// Stage is the position of a run in the download state machine.
type Stage string

const (
	StageIdle             Stage = "Idle"
	StageValidating       Stage = "Validating"
	StageFetching         Stage = "Fetching"
	StageLocating         Stage = "Locating"
	StageInspecting       Stage = "Inspecting"
	StageConversionPrompt Stage = "ConversionPrompt"
	StageConverting       Stage = "Converting"
	StageDone             Stage = "Done"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}
