package support

import "strings"

/* =================================================================================
                           PROMPT & MODEL CONFIGURATION
   The system prompt pins the model to a bare three-key JSON object. Everything
   the parser and fallback below do assumes exactly this contract.
=================================================================================*/

const (
	modelID     = "gpt-4o-mini"
	temperature = 0.6

	// Token ceilings. The form route keeps the original's tighter budget;
	// the JSON entry route allows the longer default.
	formMaxTokens  = 200
	entryMaxTokens = 300
)

// systemPrompt instructs the model to answer with JSON only, no prose.
const systemPrompt = "You are a compassionate caregiver assistant. Based on the user's mood, " +
	"produce a short supportive response (1-2 sentences), one practical suggestion (1 line), and an affirmation (1 sentence). " +
	"Return ONLY valid JSON with keys: message, suggestion, affirmation."

// missingField stands in for any entry field the caregiver left blank.
const missingField = "—"

// buildUserPrompt serializes every known entry field, one per line, with a
// placeholder for absent values so the model always sees the same shape.
func buildUserPrompt(e Entry) string {
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return missingField
		}
		return s
	}

	return strings.Join([]string{
		"User type: " + orDash(e.UserType),
		"Mood: " + orDash(e.Mood),
		"Intensity: " + orDash(e.Intensity),
		"Trigger: " + orDash(e.Trigger),
		"Behaviors: " + orDash(e.Behaviors),
		"Notes: " + orDash(e.Notes),
		"Affirmation: " + orDash(e.Affirmation),
		"Timestamp: " + orDash(e.Timestamp),
	}, "\n")
}

// fallbackResult is the fixed payload used when the model's reply could not
// be parsed. A caller-supplied affirmation is kept; everything else is canned.
func fallbackResult(e Entry) map[string]any {
	affirmation := strings.TrimSpace(e.Affirmation)
	if affirmation == "" {
		affirmation = "You are safe and loved."
	}

	return map[string]any{
		"message":     "I hear you — it’s okay to feel this way.",
		"suggestion":  "Try a deep breath together, or a short quiet activity.",
		"affirmation": affirmation,
	}
}
