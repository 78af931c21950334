package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waveai-backend/internal/config"
	"waveai-backend/internal/gemini"
	"waveai-backend/internal/handlers"
	"waveai-backend/internal/router"
	"waveai-backend/internal/store"
)

func main() {
	log.Println("🌊 Starting Wave AI backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment loaded (port %s)", cfg.Port)
	if cfg.GeminiAPIKey != "" {
		log.Println("✓ Gemini API key configured")
	} else {
		log.Println("✗ GEMINI_API_KEY not set")
	}

	// ──── Step 2: Initialize Gemini Client ────
	// Initialization failure is not fatal: the server runs in offline mode
	// and every chat request gets the fixed offline message. No retry is
	// attempted for the life of the process.
	var ai handlers.Generator
	svc, err := gemini.NewService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("✗ Gemini initialization failed, running offline: %v", err)
	} else {
		defer svc.Close()
		ai = svc
		log.Printf("✓ Gemini client initialized: %s (%s)", cfg.GeminiModel, svc.Status())
	}

	// ──── Step 3: Initialize Conversation Log ────
	convLog := store.NewConversationLog()

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(ai, convLog)
	conversationHandler := handlers.NewConversationHandler(convLog)
	healthHandler := handlers.NewHealthHandler(ai)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, conversationHandler, healthHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generation can run long; the write timeout must outlast it.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	if ai != nil {
		log.Println("✓ Wave AI ready to serve requests")
	} else {
		log.Println("⚠️  Wave AI started but the AI model is not available")
	}
	log.Printf("✓ Listening on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
