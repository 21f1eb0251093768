package narrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"althistory/internal/model"
)

// StripCodeFences removes a Markdown code fence wrapped around a reply.
// Models often return ```json ... ``` even when asked for bare JSON.
func StripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		if tag := strings.TrimSpace(trimmed[:nl]); tag == "" || strings.EqualFold(tag, "json") {
			trimmed = trimmed[nl+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// ExtractJSONObject returns the first balanced JSON object embedded in s.
// Braces inside string literals do not count toward the balance. Reports
// false when no complete object is present.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeConsequence turns a raw reply into a typed consequence record.
// Missing alterations default to empty and a missing ending flag to false; a
// reply without a usable new_situation is malformed. There is no partial
// result: the record comes back whole or not at all.
func decodeConsequence(raw string) (model.Consequence, error) {
	payload, ok := ExtractJSONObject(StripCodeFences(raw))
	if !ok {
		return model.Consequence{}, fmt.Errorf("%w: no JSON object in reply", model.ErrMalformedResponse)
	}
	var result model.Consequence
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return model.Consequence{}, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if strings.TrimSpace(result.NewSituation) == "" {
		return model.Consequence{}, fmt.Errorf("%w: missing new_situation", model.ErrMalformedResponse)
	}
	if result.Alterations == nil {
		result.Alterations = []string{}
	}
	return result, nil
}
