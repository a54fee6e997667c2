package audit

import (
	"github.com/rs/zerolog"
)

// Logger records confirmed writes as structured log events.
type Logger struct {
	log zerolog.Logger
}

func New(l zerolog.Logger) *Logger {
	return &Logger{log: l.With().Str("component", "audit").Logger()}
}

// Nop returns a Logger that discards every event.
func Nop() *Logger {
	return &Logger{log: zerolog.Nop()}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID uint,
	metadata map[string]any,
) {
	if l == nil {
		return
	}

	ev := l.log.Info().
		Str("action", action).
		Str("entity", entity).
		Uint("entity_id", entityID)
	if len(metadata) > 0 {
		ev = ev.Fields(metadata)
	}
	ev.Msg(action)
}
