package props

import "log/slog"

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one diagnostic produced during registry operations.
type Message struct {
	Severity Severity
	Text     string
}

// Sink is an append-only ordered collection of diagnostics. The registry
// only appends; draining belongs to the external reporting layer. No
// deduplication or severity filtering happens here.
type Sink struct {
	logger   *slog.Logger
	messages []Message
}

// NewSink creates a sink that mirrors every appended message to the given
// logger. A nil logger falls back to slog.Default.
func NewSink(logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{logger: logger}
}

// Append records a diagnostic and logs it.
func (s *Sink) Append(severity Severity, text string) {
	s.messages = append(s.messages, Message{Severity: severity, Text: text})
	switch severity {
	case SeverityWarning:
		s.logger.Warn(text)
	case SeverityError:
		s.logger.Error(text)
	default:
		s.logger.Info(text)
	}
}

// Len returns the number of accumulated messages.
func (s *Sink) Len() int {
	return len(s.messages)
}

// Messages returns a snapshot of the accumulated messages in append order.
func (s *Sink) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Drain returns the accumulated messages and empties the sink.
func (s *Sink) Drain() []Message {
	out := s.messages
	s.messages = nil
	return out
}
