// Package transcript exports and re-imports a session's query history as
// JSONL, one event per line, so games can be archived or replayed outside
// the process.
package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/regexsoup-xyz/go-regexsoup/session"
)

// Event is one query of one session.
type Event struct {
	SessionID string    `json:"session_id"`
	Seq       int       `json:"seq"`
	Input     string    `json:"input"`
	Matched   bool      `json:"matched"`
	AskedAt   time.Time `json:"asked_at"`
}

// FromQuiz flattens a quiz's history into events.
func FromQuiz(quiz *session.Quiz) []Event {
	history := quiz.History()
	events := make([]Event, len(history))
	for i, record := range history {
		events[i] = Event{
			SessionID: quiz.ID(),
			Seq:       i,
			Input:     record.Input,
			Matched:   record.Matched,
			AskedAt:   record.AskedAt,
		}
	}
	return events
}

// Write emits events as JSONL.
func Write(w io.Writer, events []Event) error {
	enc := json.NewEncoder(w)
	for i := range events {
		if err := enc.Encode(&events[i]); err != nil {
			return fmt.Errorf("encoding event %d: %w", i, err)
		}
	}
	return nil
}

// Read parses a JSONL stream of events. Blank lines are skipped.
func Read(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return events, nil
}
