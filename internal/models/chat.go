package models

import "github.com/google/uuid"

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply from the chat endpoint. Success reports whether
// the request itself was handled; a degraded AI answer (offline, classified
// provider failure) still counts as success.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// ConversationEntry is one exchanged user/assistant pair. Immutable once
// created; ordering is insertion order.
type ConversationEntry struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Timestamp string    `json:"timestamp"`
}

// ConversationsResponse wraps the recent conversation history.
type ConversationsResponse struct {
	Conversations []ConversationEntry `json:"conversations"`
}

// HealthResponse reports process and AI readiness.
type HealthResponse struct {
	Status    string `json:"status"`
	AIOnline  bool   `json:"ai_online"`
	Timestamp string `json:"timestamp"`
}
