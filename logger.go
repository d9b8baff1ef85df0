package taskconv

// Logger receives progress events from the conversion pipeline. The
// signature matches structured loggers such as charmbracelet/log, whose
// *Logger satisfies it directly.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
}

// nopLogger discards everything. It is the default so the core stays
// side-effect-free unless a caller opts in.
type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}
