package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"waveai-backend/internal/gemini"
	"waveai-backend/internal/models"
	"waveai-backend/internal/store"
)

const (
	// OfflineMessage is returned when no AI handle exists. By policy this is
	// content-level degradation, not a request failure, so success stays true.
	OfflineMessage = "❌ AI is currently offline. Please check configuration."

	apologyMessage = "😔 I'm sorry, something unexpected went wrong. Please try again."
)

// Generator produces assistant text for one user message. Failures come back
// raw; the handler owns turning them into user-facing text.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	ai  Generator // nil when credential validation or client init failed
	log *store.ConversationLog
}

func NewChatHandler(ai Generator, convLog *store.ConversationLog) *ChatHandler {
	return &ChatHandler{
		ai:  ai,
		log: convLog,
	}
}

// Chat handles POST /chat. It always answers {response, success} and never
// propagates a raw error to the transport layer.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("chat handler panic: %v", rec)
			writeJSON(w, http.StatusInternalServerError, models.ChatResponse{
				Response: apologyMessage,
				Success:  false,
			})
		}
	}()

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{
			Response: apologyMessage,
			Success:  false,
		})
		return
	}

	responseText := h.respond(r.Context(), req.Message)

	h.log.Append(req.Message, responseText)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: responseText,
		Success:  true,
	})
}

// respond produces the assistant text for a message: the fixed offline
// notice when no handle exists, generated text on success, or a classified
// friendly message on provider failure.
func (h *ChatHandler) respond(ctx context.Context, message string) string {
	if h.ai == nil {
		return OfflineMessage
	}

	text, err := h.ai.Generate(ctx, message)
	if err != nil {
		log.Printf("Gemini generation failed: %v", err)
		return gemini.Classify(err)
	}
	return text
}
