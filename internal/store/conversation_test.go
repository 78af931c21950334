package store

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRecent_FewerThanRequested(t *testing.T) {
	log := NewConversationLog()
	log.Append("hello", "hi there")
	log.Append("how are you", "fine")

	got := log.Recent(10)
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	if got[0].User != "hello" || got[1].User != "how are you" {
		t.Errorf("Entries out of insertion order: %q then %q", got[0].User, got[1].User)
	}
}

func TestRecent_MoreThanRequested(t *testing.T) {
	log := NewConversationLog()
	for i := 0; i < 15; i++ {
		log.Append(fmt.Sprintf("msg %d", i), "ok")
	}

	got := log.Recent(10)
	if len(got) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(got))
	}
	if got[0].User != "msg 5" {
		t.Errorf("Expected window to start at msg 5, got %q", got[0].User)
	}
	if got[9].User != "msg 14" {
		t.Errorf("Expected window to end at msg 14, got %q", got[9].User)
	}
}

func TestRecent_EmptyLog(t *testing.T) {
	log := NewConversationLog()

	got := log.Recent(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 entries from empty log, got %d", len(got))
	}
	if got == nil {
		t.Error("Expected non-nil slice so JSON encodes [] instead of null")
	}
}

func TestClear_ThenRecentIsEmpty(t *testing.T) {
	log := NewConversationLog()
	log.Append("a", "b")
	log.Append("c", "d")

	log.Clear()
	if got := log.Recent(10); len(got) != 0 {
		t.Errorf("Expected empty log after Clear, got %d entries", len(got))
	}

	// Idempotent
	log.Clear()
	if got := log.Recent(10); len(got) != 0 {
		t.Errorf("Expected empty log after second Clear, got %d entries", len(got))
	}
}

func TestAppend_StampsEntry(t *testing.T) {
	log := NewConversationLog()
	entry := log.Append("question", "answer")

	if entry.User != "question" || entry.Assistant != "answer" {
		t.Errorf("Entry fields not preserved: %+v", entry)
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", entry.Timestamp, err)
	}
}

func TestAppend_Concurrent(t *testing.T) {
	log := NewConversationLog()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			log.Append(fmt.Sprintf("msg %d", i), "reply")
		}(i)
	}
	wg.Wait()

	if log.Len() != goroutines {
		t.Errorf("Expected %d entries after concurrent appends, got %d", goroutines, log.Len())
	}
}
