package engine

import (
	"encoding/json"
	"fmt"

	"althistory/internal/model"
	"althistory/internal/narrator"
)

// parseChoices interprets the raw text returned for a choice prompt. The
// reply is expected to carry a JSON object with a "choices" array, possibly
// wrapped in code fences or surrounding prose. An empty array counts as
// unusable; the session always has at least one option while active.
func parseChoices(raw string) ([]model.ChoiceOption, error) {
	payload, ok := narrator.ExtractJSONObject(narrator.StripCodeFences(raw))
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in choice reply", model.ErrMalformedResponse)
	}

	var decoded struct {
		Choices []model.ChoiceOption `json:"choices"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("%w: choice reply carries no options", model.ErrMalformedResponse)
	}
	return decoded.Choices, nil
}
