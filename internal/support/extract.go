package support

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject pulls a JSON object out of free-form model text.
//
// Rules, in order:
//  1. strict parse of the trimmed text;
//  2. parse of the span from the first '{' to the last '}';
//  3. nothing.
//
// Models wrap replies in prose or code fences often enough that the span
// pass earns its keep. Anything that parses but is not an object fails.
func ExtractJSONObject(text string) (map[string]any, bool) {
	candidate := strings.TrimSpace(text)
	if candidate == "" {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
		return obj, true
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	obj = nil
	if err := json.Unmarshal([]byte(candidate[start:end+1]), &obj); err == nil {
		return obj, true
	}

	return nil, false
}
