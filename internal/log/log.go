// Package log provides centralised audit logging for pathfs operations.
// Logs are stored in ~/.pathfs/log/pathfs-log.db and track all CLI commands
// and MCP tool invocations across working directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:mkdir", "mkdir").
//		Author(cmd.Author()).
//		Path(p).
//		Write(err)
//
//	log.Event("cli:check", "validate").
//		Author(cmd.Author()).
//		Detail("names", len(args)).
//		Detail("invalid", invalid).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools. Examples: "cli:write", "mcp:pathfs_mkdirp".
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

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "cli:mkdir", "mcp:pathfs_write"
	Author string // who performed the action
	Action string // verb: validate, exists, mkdir, read, write, etc.
	Path   string // input: the path or name the operation targets

	// Created records whether a creation operation actually created the
	// target (mkdir/mkdirp return "already existed" without error).
	Created bool

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "cli:{command}" (e.g., "cli:mkdir", "cli:check")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:pathfs_write")
//
// The action describes what operation was performed:
//   - "validate", "resolve", "exists", "mkdir", "read", "write", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the path or name this operation affects.
//
// Leave unset for operations that don't target a path (e.g., config).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Created records whether a creation operation created its target, as
// opposed to finding it already present.
func (b *Builder) Created(created bool) *Builder {
	b.entry.Created = created
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// validated names, finding counts, content sizes, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation:
//
//	created, err := dir.Mkdirp(fsys)
//	log.Event("cli:mkdir", "mkdirp").Path(p).Created(created).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
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
// The dir should be the absolute path of the working directory.
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
