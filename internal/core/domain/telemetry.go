package domain

// VertexStatus is the final state of a recorded restore or save step.
type VertexStatus string

const (
	// VertexStatusCompleted indicates the step ran and did its work.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the step returned an error.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates an exact primary-key hit, so nothing needed to change.
	VertexStatusCached VertexStatus = "cached"
	// VertexStatusSkipped indicates the step had nothing to do (miss, policy or existing entry).
	VertexStatusSkipped VertexStatus = "skipped"
)

// RestoreStatus maps a restore outcome to the status reported for its step.
func RestoreStatus(r RestoreResult) VertexStatus {
	switch {
	case r.Exact:
		return VertexStatusCached
	case r.Hit():
		return VertexStatusCompleted
	default:
		return VertexStatusSkipped
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
