package handlers

import (
	"net/http"

	"waveai-backend/internal/models"
	"waveai-backend/internal/store"
)

type ConversationHandler struct {
	log *store.ConversationLog
}

func NewConversationHandler(convLog *store.ConversationLog) *ConversationHandler {
	return &ConversationHandler{log: convLog}
}

// List handles GET /conversations, returning the most recent exchanges in
// insertion order.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ConversationsResponse{
		Conversations: h.log.Recent(store.RecentLimit),
	})
}

// Clear handles DELETE /conversations.
func (h *ConversationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.log.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat cleared"})
}
