package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"waveai-backend/internal/models"
)

// RecentLimit is how many entries read operations expose.
const RecentLimit = 10

// ConversationLog is an append-only, in-memory record of exchanged messages.
// Storage grows unbounded; reads expose only the most recent entries. The
// mutex keeps append/read/clear atomic under concurrent requests.
type ConversationLog struct {
	mu      sync.Mutex
	entries []models.ConversationEntry
}

func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Append records one user/assistant exchange stamped with the current time.
func (l *ConversationLog) Append(user, assistant string) models.ConversationEntry {
	entry := models.ConversationEntry{
		ID:        uuid.New(),
		User:      user,
		Assistant: assistant,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	return entry
}

// Recent returns a copy of the last n entries in insertion order. It returns
// fewer if the log holds fewer, and never errors.
func (l *ConversationLog) Recent(n int) []models.ConversationEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	if n < 0 {
		n = 0
	}

	out := make([]models.ConversationEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Clear empties the log. Idempotent.
func (l *ConversationLog) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

func (l *ConversationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
