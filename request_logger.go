package client

// RequestLogger receives the client's diagnostic output: failed Archon
// requests at error level, retried attempts at warn level, and a trace
// of each outgoing request at debug level. Implement it to bridge into
// the host application's logging library and install it with
// [WithRequestLogger], or use [NewZerologLogger] for a ready-made
// adapter.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger drops everything handed to it. A freshly constructed
// [Client] logs through it, so the client stays silent until the
// application installs a real logger.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
