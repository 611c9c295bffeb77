// Package events provides event emission for index builds and
// queries: row skips, failed queries, and build start/completion.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// EventType identifies the kind of build event.
type EventType string

const (
	BuildStarted   EventType = "build_started"
	BuildCompleted EventType = "build_completed"
	RowSkipped     EventType = "row_skipped"
	QueryFailed    EventType = "query_failed"
)

// Event is a single build-time or query-time occurrence.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	BuildID   string                 `json:"build_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Subscriber is a function that handles events.
type Subscriber func(Event)

// Emitter fans out events to in-process subscribers and, optionally,
// to a JSON Lines file sink.
type Emitter struct {
	subscribers []Subscriber
	file        *os.File
	filePath    string
	mu          sync.RWMutex
	enabled     bool
}

// NewEmitter creates an Emitter. If eventsDir is empty, events are
// only delivered to subscribers, with no file sink.
func NewEmitter(eventsDir string) (*Emitter, error) {
	e := &Emitter{
		subscribers: make([]Subscriber, 0),
		enabled:     true,
	}

	if eventsDir != "" {
		if err := os.MkdirAll(eventsDir, 0o755); err != nil {
			return nil, types.WrapError("events.NewEmitter", types.ErrStorageIO, err)
		}

		filename := fmt.Sprintf("events_%s.jsonl", time.Now().Format("20060102"))
		e.filePath = filepath.Join(eventsDir, filename)

		file, err := os.OpenFile(e.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, types.WrapError("events.NewEmitter", types.ErrStorageIO, err)
		}
		e.file = file
	}

	return e, nil
}

// Subscribe adds a subscriber to receive events.
func (e *Emitter) Subscribe(sub Subscriber) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, sub)
}

// Emit delivers event to all subscribers (non-blocking) and appends
// it to the file sink, if any.
func (e *Emitter) Emit(event Event) {
	if !e.enabled {
		return
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	e.mu.RLock()
	subscribers := make([]Subscriber, len(e.subscribers))
	copy(subscribers, e.subscribers)
	e.mu.RUnlock()

	for _, sub := range subscribers {
		go sub(event)
	}

	e.writeToFile(event)
}

func (e *Emitter) writeToFile(event Event) {
	if e.file == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.file.Write(data)
	e.file.Write([]byte("\n"))
}

// Flush ensures all buffered events are written to disk.
func (e *Emitter) Flush() error {
	if e.file == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.file.Sync()
}

// Close stops emission and closes the file sink, if any.
func (e *Emitter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.enabled = false
	if e.file != nil {
		return e.file.Close()
	}
	return nil
}

// BuildStartedEvent creates a build-started event.
func BuildStartedEvent(buildID string) Event {
	return Event{Type: BuildStarted, BuildID: buildID, Timestamp: time.Now()}
}

// BuildCompletedEvent creates a build-completed event summarizing the
// document, term, and skipped-row counts.
func BuildCompletedEvent(buildID string, documents, terms, skippedRows int) Event {
	return Event{
		Type:      BuildCompleted,
		BuildID:   buildID,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"documents":    documents,
			"terms":        terms,
			"skipped_rows": skippedRows,
		},
	}
}

// RowSkippedEvent creates an event for a single malformed corpus row.
func RowSkippedEvent(buildID string, lineNumber int, reason string) Event {
	return Event{
		Type:      RowSkipped,
		BuildID:   buildID,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"line":   lineNumber,
			"reason": reason,
		},
	}
}

// QueryFailedEvent creates an event for a query that failed evaluation.
func QueryFailedEvent(terms []string, reason string) Event {
	return Event{
		Type:      QueryFailed,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"terms":  terms,
			"reason": reason,
		},
	}
}
