package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"althistory/internal/catalog"
	"althistory/internal/chronicle"
	"althistory/internal/config"
)

var (
	debugLogging    bool
	chroniclesLimit int

	rootCmd = &cobra.Command{
		Use:   "althistory",
		Short: "Explore pivotal moments in history through interactive what-if scenarios",
		Long: `althistory is an interactive console application. Pick a historical
scenario, make decisions at its turning points, and watch an AI narrator
unfold the consequences of the timeline you create.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}

	scenariosCmd = &cobra.Command{
		Use:   "scenarios",
		Short: "List the available historical scenarios",
		RunE:  runScenarios,
	}

	chroniclesCmd = &cobra.Command{
		Use:   "chronicles",
		Short: "Show archived playthroughs, most recent first",
		RunE:  runChronicles,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Log at debug level regardless of LOG_LEVEL")
	chroniclesCmd.Flags().IntVar(&chroniclesLimit, "limit", 20, "Maximum number of playthroughs to show")
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(chroniclesCmd)
}

func main() {
	// A local .env complements the real environment; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScenarios(cmd *cobra.Command, args []string) error {
	fmt.Println("Available scenarios:")
	fmt.Println()
	for i, scenario := range catalog.List() {
		fmt.Printf("%2d. %s (%s)\n", i+1, scenario.Name, scenario.TimePeriod)
		fmt.Printf("    %s\n", scenario.Description)
		fmt.Println()
	}
	return nil
}

func runChronicles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := chronicle.Open(cfg.ChroniclePath)
	if err != nil {
		return fmt.Errorf("open chronicle store: %w", err)
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), chroniclesLimit)
	if err != nil {
		return fmt.Errorf("list chronicles: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No playthroughs archived yet.")
		return nil
	}

	for i, entry := range entries {
		fmt.Printf("%d. %s\n", i+1, entry.ScenarioName)
		fmt.Printf("   Completed: %s\n", entry.CompletedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("   Decisions: %d\n", entry.Decisions)
		if len(entry.Choices) > 0 {
			fmt.Println("   Choices:")
			for _, choice := range entry.Choices {
				fmt.Printf("     - %s\n", choice)
			}
		}
		if len(entry.Alterations) > 0 {
			fmt.Println("   Timeline changes:")
			for _, alteration := range entry.Alterations {
				fmt.Printf("     - %s\n", alteration)
			}
		}
		fmt.Printf("   Outcome: %s\n", entry.FinalSituation)
		fmt.Println()
	}
	return nil
}
