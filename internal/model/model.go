package model

import "time"

// Scenario is a fixed historical branch-point the player can explore. The
// catalog defines every scenario at process start; instances are never
// mutated afterwards.
type Scenario struct {
	ID               string
	Name             string
	Description      string
	TimePeriod       string
	InitialSituation string
}

// ChoiceOption is one decision offered to the player at a decision point.
// The identifier is unique within the set returned for a single prompt, not
// globally. Options are regenerated every turn; only the chosen one is
// copied into the session history.
type ChoiceOption struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	PotentialImpact string `json:"potential_impact,omitempty"`
}

// Consequence is the narrated outcome of a single choice. Alterations are
// appended to the session timeline in order; IsEnding marks a natural
// conclusion of the scenario.
type Consequence struct {
	NewSituation string   `json:"new_situation"`
	Alterations  []string `json:"alterations"`
	IsEnding     bool     `json:"is_ending"`
}

// StateSnapshot is a read-only view of the running session for display.
// A zero snapshot means no session has been started.
type StateSnapshot struct {
	SessionID    string
	ScenarioID   string
	ScenarioName string
	Situation    string
	Decisions    int
	Alterations  []string
	Complete     bool
}

// ChronicleEntry is the archived record of a completed playthrough. Choices
// holds the chosen option descriptions in the order they were made.
type ChronicleEntry struct {
	ID             string
	ScenarioID     string
	ScenarioName   string
	CompletedAt    time.Time
	Decisions      int
	FinalSituation string
	Alterations    []string
	Choices        []string
}
