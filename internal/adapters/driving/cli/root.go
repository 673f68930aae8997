// Package cli implements the radar command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radar/internal/adapters/driven/answers"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
	"github.com/custodia-labs/radar/internal/core/ports/driving"
	"github.com/custodia-labs/radar/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var verbose bool

// Services used by commands. Execute wires them; tests swap them out.
var (
	analysisService driving.AnalysisService
	textNormaliser  driving.TextNormaliser
	settingsService driving.SettingsService
	answerLoader    driven.AnswerLoader = answers.NewLoader()
	slangStore      slangDictionary
	slangTarget     slangReloader
)

// slangDictionary is the writable custom slang file.
type slangDictionary interface {
	driven.SlangDictionary
	Add(surface, canonical string) error
}

// slangReloader accepts a whole replacement slang table.
type slangReloader interface {
	ReplaceCustomSlang(entries map[string]string) error
}

var rootCmd = &cobra.Command{
	Use:   "radar",
	Short: "Traffic-light verdicts for small-business decisions",
	Long: `radar scores a business situation from a short questionnaire and
answers with a green, yellow or red verdict (low, medium or high risk for
hiring), the signals behind it and a recommendation.

Domains: debt, market, hiring, import, idea.

Verdicts are rule-based. When an LLM provider is configured with
'radar settings llm', --ai asks it first and falls back to the rules on
any failure.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute wires the services and runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup, err := setupServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer cleanup()

	return rootCmd.ExecuteContext(ctx)
}
