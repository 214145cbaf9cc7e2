package transcript

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/regexsoup-xyz/go-regexsoup/regex"
	"github.com/regexsoup-xyz/go-regexsoup/session"
)

func TestRoundTrip(t *testing.T) {
	ast, err := regex.Parse("(a|b)*")
	if err != nil {
		t.Fatal(err)
	}
	quiz := session.NewQuiz(2, ast)
	for _, input := range []string{"a", "ba", session.EmptyWord} {
		if _, err := quiz.Query(input); err != nil {
			t.Fatalf("Query(%q) failed: %v", input, err)
		}
	}

	events := FromQuiz(quiz)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, ev := range events {
		if ev.SessionID != quiz.ID() {
			t.Errorf("events[%d].SessionID = %q, want %q", i, ev.SessionID, quiz.ID())
		}
		if ev.Seq != i {
			t.Errorf("events[%d].Seq = %d, want %d", i, ev.Seq, i)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, events); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("wrote %d lines, want 3", got)
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(back) != len(events) {
		t.Fatalf("read %d events, want %d", len(back), len(events))
	}
	for i := range events {
		if back[i].Input != events[i].Input || back[i].Matched != events[i].Matched {
			t.Errorf("event %d changed across the round trip: %+v vs %+v",
				i, back[i], events[i])
		}
		if !back[i].AskedAt.Equal(events[i].AskedAt) {
			t.Errorf("event %d timestamp drifted: %v vs %v",
				i, back[i].AskedAt, events[i].AskedAt)
		}
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	input := `{"session_id":"s","seq":0,"input":"a","matched":true,"asked_at":"2024-01-02T03:04:05Z"}

{"session_id":"s","seq":1,"input":"\"\"","matched":false,"asked_at":"2024-01-02T03:04:06Z"}
`
	events, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Input != session.EmptyWord {
		t.Errorf("Input = %q, want the empty-word sentinel", events[1].Input)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if !events[0].AskedAt.Equal(want) {
		t.Errorf("AskedAt = %v, want %v", events[0].AskedAt, want)
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json}\n")); err == nil {
		t.Error("malformed line should fail")
	}
}

func TestReadEmptyStream(t *testing.T) {
	events, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
