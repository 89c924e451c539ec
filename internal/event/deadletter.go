package event

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/logger"
)

// DeadLetterSchemaVersion identifies the dead-letter line format.
// Bump it when DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSONL file so they
// can be inspected, or replayed by hand, after the fact
type DeadLetterWriter struct {
	file      *os.File
	mu        sync.Mutex
	closeOnce sync.Once
}

// NewDeadLetterWriter opens the dead-letter file for appending,
// creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, deadLetterFileMode)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends one entry. A nil lastError means the event never got a
// publish attempt (retry queue overflow).
func (w *DeadLetterWriter) Write(ev Event, attempts int, lastError error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         ev,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", ev.Type,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = w.file.Write(append(data, '\n'))
	return err
}

// Close closes the underlying file. Safe to call more than once.
func (w *DeadLetterWriter) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.file.Close()
	})
	return err
}
