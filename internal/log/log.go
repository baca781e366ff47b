// Package log provides centralised audit logging for pathcheck runs.
// Entries are stored in ~/.pathcheck/log/pathcheck-log.db and track CLI
// commands and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:check", "check").
//		Path(raw).
//		Rule(ruleName).
//		Write(err)
//
//	log.Event("mcp:pathcheck_check", "check").
//		Path(raw).
//		Detail("paths", len(args)).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit log entry.
type Entry struct {
	Source string // e.g. "cli:check", "mcp:pathcheck_check"
	Action string // verb: check, rules, guide, serve
	Path   string // input: raw path argument being validated
	Rule   string // input: named rule profile, if one was used

	// Resolved is the converted path after a successful check, when it
	// differs from the raw input.
	Resolved string

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the operation succeeded
	Error   string         // failure message if it didn't
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated ("cli:check",
// "mcp:pathcheck_rules"); the action describes what was performed.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the raw path argument this operation validated.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Rule sets the named rule profile the operation checked against.
func (b *Builder) Rule(rule string) *Builder {
	b.entry.Rule = rule
	return b
}

// Resolved sets the converted path (output), for when cleaning changed
// the raw input.
func (b *Builder) Resolved(path string) *Builder {
	b.entry.Resolved = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry, deriving success/failure from err.
//
// If err is nil the entry is logged as successful, otherwise as failed
// with the error message. This is the standard way to complete an entry
// after an operation:
//
//	path, err := t.Convert(raw)
//	log.Event("cli:check", "check").Path(raw).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the working directory the checks run from.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
