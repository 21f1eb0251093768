// Package engine runs an alternate-history session: it holds the timeline
// state, asks the narration service for choices and consequences, and keeps
// the session playable on fixed fallbacks when the service fails.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"althistory/internal/catalog"
	"althistory/internal/model"
	"althistory/internal/narrator"
)

// Engine drives one session at a time. A session moves from uninitialized
// (no scenario selected) to active to complete; complete is terminal, and
// selecting a scenario again always starts a fresh session.
type Engine interface {
	// SelectScenario starts a fresh session for the given scenario,
	// discarding any session in progress. Reports false when the
	// identifier is not in the catalog, leaving the previous session
	// untouched.
	SelectScenario(id string) bool

	// CurrentState returns a display snapshot of the session. The zero
	// snapshot means no session has been started.
	CurrentState() model.StateSnapshot

	// AvailableChoices generates the options for the current decision
	// point. It returns an empty set only when there is no active session;
	// generation or interpretation failures yield fixed fallback options
	// instead. The returned set is the one MakeChoice accepts next.
	AvailableChoices(ctx context.Context) []model.ChoiceOption

	// MakeChoice advances the timeline with one of the options most
	// recently returned by AvailableChoices. Reports false when the
	// identifier is not among them or no session is active. A narration
	// failure still advances: the situation becomes a fixed sentence and
	// the session stays active.
	MakeChoice(ctx context.Context, choiceID string) bool

	// Finish marks the session complete without a narrated ending. Used
	// when play stops outside a natural conclusion.
	Finish()

	// ChoiceHistory returns the options chosen so far, in order.
	ChoiceHistory() []model.ChoiceOption
}

// session is the mutable state of one playthrough. offered caches the last
// generated options so MakeChoice validates against exactly what the player
// saw; it is cleared once a choice is consumed.
type session struct {
	id          uuid.UUID
	scenario    model.Scenario
	situation   string
	history     []model.ChoiceOption
	alterations []string
	offered     []model.ChoiceOption
	complete    bool
}

type gameEngine struct {
	narrator narrator.Client
	logger   *zap.Logger
	session  *session
}

// New builds an engine backed by the given narration client.
func New(client narrator.Client, logger *zap.Logger) Engine {
	return &gameEngine{
		narrator: client,
		logger:   logger,
	}
}

func (e *gameEngine) SelectScenario(id string) bool {
	scenario, ok := catalog.Get(id)
	if !ok {
		return false
	}

	e.session = &session{
		id:        uuid.New(),
		scenario:  scenario,
		situation: scenario.InitialSituation,
	}
	e.logger.Info("session started",
		zap.String("session_id", e.session.id.String()),
		zap.String("scenario_id", scenario.ID))
	return true
}

func (e *gameEngine) CurrentState() model.StateSnapshot {
	if e.session == nil {
		return model.StateSnapshot{}
	}

	s := e.session
	return model.StateSnapshot{
		SessionID:    s.id.String(),
		ScenarioID:   s.scenario.ID,
		ScenarioName: s.scenario.Name,
		Situation:    s.situation,
		Decisions:    len(s.history),
		Alterations:  append([]string(nil), s.alterations...),
		Complete:     s.complete,
	}
}

func (e *gameEngine) AvailableChoices(ctx context.Context) []model.ChoiceOption {
	if e.session == nil || e.session.complete {
		return nil
	}

	options := e.generateOptions(ctx)
	e.session.offered = options
	return append([]model.ChoiceOption(nil), options...)
}

func (e *gameEngine) generateOptions(ctx context.Context) []model.ChoiceOption {
	raw, err := e.narrator.GenerateChoices(ctx, buildChoicesPrompt(e.session))
	if err != nil {
		e.logger.Warn("choice generation failed, offering fallback options", zap.Error(err))
		return fallbackChoices()
	}

	options, err := parseChoices(raw)
	if err != nil {
		e.logger.Warn("choice reply was not usable, offering fallback options", zap.Error(err))
		return fallbackChoices()
	}
	return options
}

func (e *gameEngine) MakeChoice(ctx context.Context, choiceID string) bool {
	if e.session == nil || e.session.complete {
		return false
	}

	s := e.session
	var chosen model.ChoiceOption
	found := false
	for _, option := range s.offered {
		if option.ID == choiceID {
			chosen = option
			found = true
			break
		}
	}
	if !found {
		return false
	}

	// The choice is committed to history before narration; a failed
	// narration call still counts as a decision made.
	s.history = append(s.history, chosen)
	s.offered = nil

	consequence, err := e.narrator.GenerateConsequence(ctx, buildConsequencePrompt(s, chosen))
	if err != nil {
		e.logger.Warn("consequence generation failed, using fallback narration",
			zap.String("choice_id", chosen.ID), zap.Error(err))
		s.situation = fallbackSituation(chosen)
		return true
	}

	s.situation = consequence.NewSituation
	s.alterations = append(s.alterations, consequence.Alterations...)
	if consequence.IsEnding {
		s.complete = true
		e.logger.Info("session reached a natural ending",
			zap.String("session_id", s.id.String()),
			zap.Int("decisions", len(s.history)))
	}
	return true
}

func (e *gameEngine) Finish() {
	if e.session == nil || e.session.complete {
		return
	}
	e.session.complete = true
	e.session.offered = nil
	e.logger.Info("session finished",
		zap.String("session_id", e.session.id.String()),
		zap.Int("decisions", len(e.session.history)))
}

func (e *gameEngine) ChoiceHistory() []model.ChoiceOption {
	if e.session == nil {
		return nil
	}
	return append([]model.ChoiceOption(nil), e.session.history...)
}
