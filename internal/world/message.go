package world

import (
	"fmt"
	"strings"
)

// MessageLog collects the narration of a fight in order.
type MessageLog struct {
	lines []string

	// Echo, when set, receives every message as it is added.
	Echo func(string)
}

// NewMessageLog creates an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Add appends a message. Empty messages are dropped.
func (l *MessageLog) Add(msg string) {
	if msg == "" {
		return
	}
	l.lines = append(l.lines, msg)
	if l.Echo != nil {
		l.Echo(msg)
	}
}

// Addf appends a formatted message.
func (l *MessageLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Lines returns every message so far.
func (l *MessageLog) Lines() []string {
	return l.lines
}

// Drain returns the messages so far and empties the log.
func (l *MessageLog) Drain() []string {
	out := l.lines
	l.lines = nil
	return out
}

// Contains reports whether any message contains sub.
func (l *MessageLog) Contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}
