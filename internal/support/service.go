/*
Package support implements the emotions tool: it turns a caregiver-submitted
mood entry into a {message, suggestion, affirmation} payload via one OpenAI
chat completion, degrading to a canned supportive fallback whenever the
model's reply cannot be parsed.
*/
package support

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Entry is a caregiver-submitted record describing a mood or emotional
// event. The form route fills user_type/mood/notes; the JSON entry route
// may supply the full superset.
type Entry struct {
	UserType    string `json:"user_type" form:"user_type"`
	Mood        string `json:"mood" form:"mood"`
	Intensity   string `json:"intensity"`
	Trigger     string `json:"trigger"`
	Behaviors   string `json:"behaviors"`
	Notes       string `json:"notes" form:"notes"`
	Affirmation string `json:"affirmation"`
	Timestamp   string `json:"timestamp"`
}

// Generator is the one outbound dependency: a single-shot chat completion.
// *openaiservice.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt, model string, temperature float32, maxTokens int) (string, error)
}

// Outcome carries the support payload plus, when the fallback was used, the
// raw unparsed model text for debugging.
type Outcome struct {
	Support map[string]any
	Raw     string
}

// Service generates support results. Built once at startup with the OpenAI
// client injected; read-only afterwards, safe for concurrent requests.
type Service struct {
	llm Generator
}

func NewService(llm Generator) *Service {
	return &Service{llm: llm}
}

// GenerateSupport issues the completion and normalizes the reply.
//
// The model reply is parsed strictly, then leniently (see ExtractJSONObject).
// A parse that lacks the "message" key counts as a failure. Parse failures
// are never surfaced: the caregiver gets the fixed fallback payload and the
// raw text rides along for inspection. Transport and configuration errors
// are returned as-is for the handler to map onto status codes.
func (s *Service) GenerateSupport(ctx context.Context, entry Entry, maxTokens int) (Outcome, error) {
	text, err := s.llm.Generate(ctx, systemPrompt, buildUserPrompt(entry), modelID, temperature, maxTokens)
	if err != nil {
		return Outcome{}, err
	}

	if parsed, ok := ExtractJSONObject(text); ok {
		if _, hasMessage := parsed["message"]; hasMessage {
			return Outcome{Support: parsed}, nil
		}
	}

	log.Warn().Msg("Model reply was not the expected JSON shape, returning fallback payload")
	return Outcome{Support: fallbackResult(entry), Raw: text}, nil
}
