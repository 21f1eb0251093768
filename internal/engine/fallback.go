package engine

import (
	"fmt"

	"althistory/internal/model"
)

// fallbackChoices is the fixed option set offered when choice generation
// fails or the reply cannot be interpreted. The player never sees the
// failure itself.
func fallbackChoices() []model.ChoiceOption {
	return []model.ChoiceOption{
		{
			ID:              "diplomatic",
			Description:     "Pursue diplomatic negotiations",
			PotentialImpact: "May lead to peaceful resolution but could show weakness",
		},
		{
			ID:              "aggressive",
			Description:     "Take decisive military action",
			PotentialImpact: "Quick results but may escalate conflict",
		},
		{
			ID:              "wait",
			Description:     "Wait and gather more information",
			PotentialImpact: "Safer approach but may miss opportunities",
		},
	}
}

// fallbackSituation replaces a failed consequence narration. The timeline
// gains no alterations and the session stays active.
func fallbackSituation(choice model.ChoiceOption) string {
	return fmt.Sprintf("Your choice to '%s' has created ripple effects through history...", choice.Description)
}
