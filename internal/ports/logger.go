package ports

// Logger is the leveled logging sink injected into the workflows.
// Informational lines are emitted only in verbose mode; error lines are
// always emitted. Logging has no bearing on returned results.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}
