package client

import "github.com/rs/zerolog"

// ZerologLogger adapts a [zerolog.Logger] to the [RequestLogger] interface.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a [RequestLogger] that writes through the given
// zerolog logger. Request and response details are logged at debug level,
// retries at warn level, and failed requests at error level.
func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log}
}

func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
