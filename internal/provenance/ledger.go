// Package provenance provides the append-only audit trail. Every
// pipeline stage records its actions here; entries are never mutated
// or deleted, and write order is the system's audit order.
package provenance

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Entry is one immutable audit record
type Entry struct {
	Timestamp   time.Time      `json:"timestamp"`
	SessionID   string         `json:"session_id"`
	Agent       string         `json:"agent"`
	ActionType  string         `json:"action_type"`
	Description string         `json:"description"`
	Input       any            `json:"input,omitempty"`
	Output      any            `json:"output,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// Ledger records audit entries. Durability is best-effort: a failed
// write is logged operationally and never aborts the caller.
type Ledger interface {
	Record(sessionID, agent, actionType, description string, opts ...Option)
	Replay(sessionID string) ([]Entry, error)
	Close() error
}

// Option attaches optional snapshot data to an entry
type Option func(*Entry)

// WithInput attaches an input snapshot
func WithInput(v any) Option { return func(e *Entry) { e.Input = v } }

// WithOutput attaches an output snapshot
func WithOutput(v any) Option { return func(e *Entry) { e.Output = v } }

// WithExtra attaches an extra named field
func WithExtra(key string, v any) Option {
	return func(e *Entry) {
		if e.Extra == nil {
			e.Extra = make(map[string]any)
		}
		e.Extra[key] = v
	}
}

// FileLedger appends newline-delimited JSON to a single file. A mutex
// serializes writes so concurrent sessions cannot interleave records.
type FileLedger struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
	f  *os.File
}

// NewFileLedger opens (creating if needed) the ledger file in append
// mode. Parent directories are created.
func NewFileLedger(path string, logger *zap.Logger) (*FileLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileLedger{path: path, logger: logger, f: f}, nil
}

// Record appends one entry immediately. Failures are logged to the
// operational channel and swallowed; the pipeline must not stop for a
// ledger fault.
func (l *FileLedger) Record(sessionID, agent, actionType, description string, opts ...Option) {
	entry := Entry{
		Timestamp:   time.Now().UTC(),
		SessionID:   sessionID,
		Agent:       agent,
		ActionType:  actionType,
		Description: description,
	}
	for _, opt := range opts {
		opt(&entry)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		l.logger.Error("provenance entry not serializable",
			zap.String("agent", agent),
			zap.Error(err))
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		l.logger.Warn("provenance ledger closed, entry dropped",
			zap.String("agent", agent))
		return
	}
	if _, err := l.f.Write(data); err != nil {
		l.logger.Error("provenance write failed",
			zap.String("agent", agent),
			zap.Error(err))
	}
}

// Replay reads the whole file and returns the entries for one session
// in write order. Lines that do not parse are skipped.
func (l *FileLedger) Replay(sessionID string) ([]Entry, error) {
	l.mu.Lock()
	if l.f != nil {
		_ = l.f.Sync()
	}
	l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Close closes the underlying file
func (l *FileLedger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// NopLedger discards all entries. It backs tests and --no-ledger runs.
type NopLedger struct{}

func (NopLedger) Record(string, string, string, string, ...Option) {}

func (NopLedger) Replay(string) ([]Entry, error) { return nil, nil }

func (NopLedger) Close() error { return nil }
