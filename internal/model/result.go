package model

// CommandResult is the outcome of one external tool invocation
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// LaunchErr is set when the process could not be started at all
	LaunchErr error
}

// Success reports whether the tool exited with code 0
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
