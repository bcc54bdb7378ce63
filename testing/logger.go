package testing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/hype/types"
)

// NewTestLogger returns a logger that forwards every entry to t.Log, so
// streaming and metric logs show up with -v next to the failing subtest.
// Fatal fails the test instead of exiting.
func NewTestLogger(t *testing.T) types.Logger {
	return &testLogger{t: t}
}

// testLogger prints entries in the same "LEVEL: msg [k v ...]" form as
// LogEntry.String.
type testLogger struct {
	t *testing.T
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) log(level, msg string, kv []any) {
	l.t.Helper()
	l.t.Log(LogEntry{Level: level, Msg: msg, KV: kv}.String())
}

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatal(LogEntry{Level: "FATAL", Msg: msg, KV: keysAndValues}.String())
}

// LogEntry is one message captured by a RecordingLogger.
type LogEntry struct {
	Level string
	Msg   string
	KV    []any
}

// String formats the entry as "LEVEL: msg [k v ...]".
func (e LogEntry) String() string {
	return fmt.Sprintf("%s: %s %v", e.Level, e.Msg, e.KV)
}

// RecordingLogger is a types.Logger that keeps every message in memory.
//
// It is safe for concurrent use, so it can be handed to the metric engine.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ types.Logger = (*RecordingLogger)(nil)

// NewRecordingLogger creates an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Entries returns a copy of the captured messages in logging order.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Count returns how many messages were logged at level with the given text.
func (l *RecordingLogger) Count(level, msg string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level && e.Msg == msg {
			n++
		}
	}

	return n
}

func (l *RecordingLogger) record(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, KV: kv})
}

func (l *RecordingLogger) Debug(msg string, keysAndValues ...any) {
	l.record("DEBUG", msg, keysAndValues)
}

func (l *RecordingLogger) Info(msg string, keysAndValues ...any) {
	l.record("INFO", msg, keysAndValues)
}

func (l *RecordingLogger) Warn(msg string, keysAndValues ...any) {
	l.record("WARN", msg, keysAndValues)
}

func (l *RecordingLogger) Error(msg string, keysAndValues ...any) {
	l.record("ERROR", msg, keysAndValues)
}

// Fatal records the message and does NOT call os.Exit.
func (l *RecordingLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
}
