// Package notify is the toast/notification sink fed by the orchestrators.
// Calls are fire-and-forget: sinks never return errors to the caller.
package notify

import "log/slog"

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier receives one message per terminal request outcome.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier builds a slog-backed sink. A nil logger falls back to the
// default logger.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

// Notify logs the notification at a level matching its severity.
func (n *LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case SeverityError:
		n.log.Error("notification", "severity", severity, "message", message)
	default:
		n.log.Info("notification", "severity", severity, "message", message)
	}
}

// Multi fans one notification out to several sinks.
type Multi []Notifier

// Notify forwards to every sink.
func (m Multi) Notify(severity Severity, message string) {
	for _, n := range m {
		n.Notify(severity, message)
	}
}
