package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Status records how far client initialization got. A failed smoke test
// downgrades Ready to ReadyUntested but the handle is kept and used anyway.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusReadyUntested
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusReadyUntested:
		return "ready (untested)"
	default:
		return "uninitialized"
	}
}

// FallbackMessage is returned when the provider answers with empty text.
const FallbackMessage = "I couldn't generate a response to that. Could you try rephrasing your message?"

const promptTemplate = "You are Wave AI, a helpful assistant created by Ayush Shukla. Provide clear and helpful responses.\n\nHuman: %s\n\nWave AI:"

const smokeTokenCap = 8

// Service wraps the Gemini client with fixed generation parameters and
// safety thresholds. It holds no per-request state.
type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
	status Status
}

// NewService validates the credential, configures the client and model
// handle, and runs a single smoke generation for diagnostic logging. A
// failed smoke test does not discard the handle.
func NewService(ctx context.Context, apiKey, modelName string) (*Service, error) {
	key, err := ValidateAPIKey(apiKey)
	if err != nil {
		return nil, fmt.Errorf("invalid Gemini credential: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(1024)
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	s := &Service{client: client, model: model, status: StatusReady}

	if err := s.smokeTest(ctx, modelName); err != nil {
		log.Printf("WARNING: Gemini smoke test failed, keeping handle anyway: %v", err)
		s.status = StatusReadyUntested
	}

	return s, nil
}

// smokeTest issues one trivial, tightly capped generation. Its outcome is
// logged only; it never gates availability.
func (s *Service) smokeTest(ctx context.Context, modelName string) error {
	probe := s.client.GenerativeModel(modelName)
	probe.SetMaxOutputTokens(smokeTokenCap)
	_, err := probe.GenerateContent(ctx, genai.Text("Hello"))
	return err
}

func (s *Service) Status() Status {
	return s.status
}

func (s *Service) Close() {
	s.client.Close()
}

// Generate produces assistant text for one user message. Provider failures
// are returned raw for the caller to classify; this method never shapes
// user-facing error text.
func (s *Service) Generate(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, message)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return responseText(resp), nil
}

// responseText trims the generated output and substitutes the rephrase
// fallback when the provider answered with nothing usable.
func responseText(resp *genai.GenerateContentResponse) string {
	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		log.Println("WARNING: Gemini returned empty text. Using fallback.")
		return FallbackMessage
	}
	return text
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
