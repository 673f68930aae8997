package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radar/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radar/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/services"
	"github.com/custodia-labs/radar/internal/normalisers/slang"
)

// setupTestServices wires rule-based services over in-memory and
// temp-dir stores, and resets flag state between tests.
func setupTestServices(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		services.EnvLLMProvider, services.EnvLLMModel, services.EnvLLMBaseURL,
		services.EnvLLMAPIKey, services.EnvQwenAPIKey, services.EnvUseLocalLLM,
	} {
		t.Setenv(env, "")
	}

	dict, err := file.NewSlangFile(filepath.Join(t.TempDir(), "slang.toml"))
	require.NoError(t, err)
	normaliser := slang.New()

	analysisService = services.NewAnalysisService(analysis.NewRegistry())
	textNormaliser = normaliser
	settingsService = services.NewSettingsService(memory.NewConfigStore(), nil)
	slangStore = dict
	slangTarget = normaliser

	analyzeFile, analyzeFormat, analyzeSet = "", "yaml", nil
	analyzeNormalise, analyzeAI, analyzeJSON = false, false, false
	entitiesJSON = false
	llmModel, llmAPIKey, llmBaseURL, llmSkipVerify = "", "", "", false

	t.Cleanup(func() {
		analysisService = nil
		textNormaliser = nil
		settingsService = nil
		slangStore = nil
		slangTarget = nil
	})
}

// execute runs the root command with args and stdin, returning output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
