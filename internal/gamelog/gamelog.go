// Package gamelog holds the player-facing message log.
package gamelog

import "fmt"

// Log is an append-only list of messages. New entries go at the end.
type Log struct {
	entries []string
}

// New returns a log seeded with the given messages.
func New(entries ...string) *Log {
	return &Log{entries: append([]string(nil), entries...)}
}

// Add appends a message.
func (l *Log) Add(msg string) {
	l.entries = append(l.entries, msg)
}

// Addf appends a formatted message.
func (l *Log) Addf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of every message, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Recent returns up to n messages, newest first.
func (l *Log) Recent(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Last returns the newest message, or "" when empty.
func (l *Log) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}
