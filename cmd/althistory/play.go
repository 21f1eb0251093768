package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"althistory/internal/catalog"
	"althistory/internal/chronicle"
	"althistory/internal/config"
	"althistory/internal/console"
	"althistory/internal/engine"
	"althistory/internal/logging"
	"althistory/internal/model"
	"althistory/internal/narrator"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateNarrator(); err != nil {
		printAPIKeyHint(err)
		return err
	}

	logLevel := cfg.LogLevel
	if debugLogging {
		logLevel = "debug"
	}
	logger, err := logging.New(logging.Config{Level: logLevel, Path: cfg.LogPath})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	client, err := narrator.New(narrator.Config{
		Provider:  cfg.NarratorProvider,
		APIKey:    cfg.OpenAIAPIKey,
		Model:     cfg.NarratorModel,
		BaseURL:   cfg.NarratorBaseURL,
		OllamaURL: cfg.OllamaServerURL,
		Timeout:   cfg.NarratorTimeout,
	}, logger)
	if err != nil {
		return err
	}

	store, err := chronicle.Open(cfg.ChroniclePath)
	if err != nil {
		return fmt.Errorf("open chronicle store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := console.New()
	play(ctx, ui, engine.New(client, logger), store, logger)

	if ctx.Err() != nil {
		ui.ShowInterrupted()
	}
	return nil
}

// printAPIKeyHint mirrors the setup steps shown when no key is configured.
func printAPIKeyHint(err error) {
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		return
	}
	fmt.Fprintln(os.Stderr, "Please:")
	fmt.Fprintln(os.Stderr, "1. Copy .env.example to .env")
	fmt.Fprintln(os.Stderr, "2. Add your OpenAI API key to the .env file")
	fmt.Fprintln(os.Stderr, "3. Run the application again")
}

// play runs the scenario menu until the player exits or the context is
// canceled.
func play(ctx context.Context, ui *console.UI, eng engine.Engine, store *chronicle.Store, logger *zap.Logger) {
	ui.Welcome()

	for ctx.Err() == nil {
		scenarioID, ok := ui.SelectScenario(catalog.List())
		if !ok {
			ui.Goodbye()
			return
		}
		if !eng.SelectScenario(scenarioID) {
			continue
		}
		runSession(ctx, ui, eng, store, logger)
	}
}

// runSession drives one playthrough. Leaving mid-scenario returns to the
// menu without an ending screen; a completed timeline is shown and archived.
func runSession(ctx context.Context, ui *console.UI, eng engine.Engine, store *chronicle.Store, logger *zap.Logger) {
	for ctx.Err() == nil {
		snap := eng.CurrentState()
		if snap.Complete {
			break
		}
		ui.ShowSituation(snap)

		spinner := ui.StartLoading("Generating historical choices")
		options := eng.AvailableChoices(ctx)
		spinner.Stop()
		if ctx.Err() != nil {
			return
		}
		if len(options) == 0 {
			eng.Finish()
			break
		}

		choiceID, ok := ui.PromptChoice(options)
		if !ok {
			return
		}

		spinner = ui.StartLoading("Calculating historical consequences")
		eng.MakeChoice(ctx, choiceID)
		spinner.Stop()
	}
	if ctx.Err() != nil {
		return
	}

	snap := eng.CurrentState()
	if !snap.Complete {
		return
	}
	ui.ShowEnding(snap)
	archiveSession(ctx, eng, snap, store, logger)
}

// archiveSession records a completed playthrough. Archive failures are
// logged and otherwise ignored; the session itself already ended.
func archiveSession(ctx context.Context, eng engine.Engine, snap model.StateSnapshot, store *chronicle.Store, logger *zap.Logger) {
	history := eng.ChoiceHistory()
	choices := make([]string, 0, len(history))
	for _, choice := range history {
		choices = append(choices, choice.Description)
	}

	entry := model.ChronicleEntry{
		ID:             snap.SessionID,
		ScenarioID:     snap.ScenarioID,
		ScenarioName:   snap.ScenarioName,
		Decisions:      snap.Decisions,
		FinalSituation: snap.Situation,
		Alterations:    snap.Alterations,
		Choices:        choices,
	}
	if err := store.Append(ctx, entry); err != nil {
		logger.Warn("failed to archive playthrough",
			zap.String("session_id", snap.SessionID), zap.Error(err))
	}
}
