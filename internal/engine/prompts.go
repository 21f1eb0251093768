package engine

import (
	"fmt"
	"strings"

	"althistory/internal/model"
)

const choicesPromptTemplate = `You are creating an alternate history scenario.

Historical Context: %s
Current Situation: %s
Previous Choices: %s

Generate 3-4 plausible choices that a key decision-maker in this situation might face.
Each choice should have the potential to significantly alter the course of history.

Return the response in this exact JSON format:
{
    "choices": [
        {
            "id": "choice_1",
            "description": "Brief description of the choice",
            "potential_impact": "Short description of potential consequences"
        }
    ]
}`

const consequencePromptTemplate = `You are narrating an alternate history scenario.

Historical Context: %s
Current Situation: %s
Choice Made: %s

Generate the immediate and long-term consequences of this choice.
Show how this decision ripples through history.

Return the response in this exact JSON format:
{
    "new_situation": "Description of the new situation after the choice",
    "alterations": ["List of specific changes to the timeline"],
    "is_ending": false
}

Set "is_ending" to true if this choice leads to a natural conclusion of the scenario.`

// recentChoiceWindow caps how much decision history is replayed into the
// choice prompt.
const recentChoiceWindow = 3

func buildChoicesPrompt(s *session) string {
	recent := s.history
	if len(recent) > recentChoiceWindow {
		recent = recent[len(recent)-recentChoiceWindow:]
	}
	descriptions := make([]string, len(recent))
	for i, choice := range recent {
		descriptions[i] = choice.Description
	}

	return fmt.Sprintf(choicesPromptTemplate,
		s.scenario.Name, s.situation, strings.Join(descriptions, "; "))
}

func buildConsequencePrompt(s *session, choice model.ChoiceOption) string {
	return fmt.Sprintf(consequencePromptTemplate,
		s.scenario.Name, s.situation, choice.Description)
}
