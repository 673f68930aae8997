package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/radar/internal/core/domain"
)

var (
	llmModel      string
	llmAPIKey     string
	llmBaseURL    string
	llmSkipVerify bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the LLM provider and the custom slang dictionary.

Settings are stored in ~/.radar/config.toml. RADAR_LLM_PROVIDER,
RADAR_LLM_MODEL, RADAR_LLM_BASE_URL and RADAR_LLM_API_KEY override the
stored LLM settings. With no provider set, USE_LOCAL_LLM=true selects a
local Ollama and QWEN_API_KEY selects Qwen.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm [provider]",
	Short: "Configure LLM provider",
	Long: `Configure the LLM asked for verdicts by 'radar analyze --ai'.

Providers: ollama, openai, anthropic, gemini, qwen.

Without a provider argument an interactive prompt is shown. The new
settings are checked by contacting the provider unless --skip-verify
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsLLM,
}

var settingsSlangFileCmd = &cobra.Command{
	Use:   "slang-file <path>",
	Short: "Set the custom slang dictionary path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSlangFile,
}

func init() {
	settingsLLMCmd.Flags().StringVar(&llmModel, "model", "", "model name (provider default if empty)")
	settingsLLMCmd.Flags().StringVar(&llmAPIKey, "api-key", "", "API key for cloud providers")
	settingsLLMCmd.Flags().StringVar(&llmBaseURL, "base-url", "", "custom endpoint")
	settingsLLMCmd.Flags().BoolVar(&llmSkipVerify, "skip-verify", false, "do not contact the provider")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsSlangFileCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	if settings.LLM.Provider == "" {
		cmd.Println("  Provider: (none, verdicts are rule-based)")
	} else {
		cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
		cmd.Printf("  Model: %s\n", settings.LLM.ModelOrDefault())
		if settings.LLM.BaseURL != "" {
			cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
		}
		if settings.LLM.Provider.RequiresAPIKey() {
			if settings.LLM.APIKey != "" {
				cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
			} else {
				cmd.Printf("  API Key: (not set)\n")
			}
		}
	}
	cmd.Printf("  Timeout: %s\n", settings.LLM.Timeout)
	if settings.LLM.RequestsPerMinute > 0 {
		cmd.Printf("  Rate limit: %d/min\n", settings.LLM.RequestsPerMinute)
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Normaliser]")
	if settings.Normaliser.SlangFile != "" {
		cmd.Printf("  Slang file: %s\n", settings.Normaliser.SlangFile)
	} else {
		cmd.Println("  Slang file: (default)")
	}

	return nil
}

func runSettingsLLM(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		return configureLLMProvider(cmd, bufio.NewReader(cmd.InOrStdin()))
	}

	provider := domain.AIProvider(strings.ToLower(args[0]))
	if err := settingsService.SetLLMProvider(provider, llmModel, llmAPIKey, llmBaseURL); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}
	return finishLLMSetup(cmd, provider)
}

func runSettingsSlangFile(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetSlangFile(args[0]); err != nil {
		return fmt.Errorf("failed to set slang file: %w", err)
	}
	cmd.Printf("Slang file set to: %s\n", args[0])
	return nil
}

func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaultModel := domain.DefaultLLMModels()[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword(cmd.InOrStdin(), reader)
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey, ""); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}
	return finishLLMSetup(cmd, selectedProvider)
}

func finishLLMSetup(cmd *cobra.Command, provider domain.AIProvider) error {
	if !llmSkipVerify {
		cmd.Print("Validating configuration... ")
		if err := settingsService.ValidateLLMConfig(); err != nil {
			cmd.Printf("FAILED: %v\n", err)
			return fmt.Errorf("LLM configuration validation failed: %w", err)
		}
		cmd.Println("OK")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("LLM provider configured: %s (%s)\n", provider.Description(), settings.LLM.ModelOrDefault())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is a terminal.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
