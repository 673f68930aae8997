package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/radar/internal/adapters/driven/ai"
	"github.com/custodia-labs/radar/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/services"
	"github.com/custodia-labs/radar/internal/logger"
	"github.com/custodia-labs/radar/internal/normalisers/slang"
)

// setupServices builds the production services from ~/.radar. The
// returned func releases the LLM client.
func setupServices(ctx context.Context) (func(), error) {
	dir, err := file.DefaultDir()
	if err != nil {
		return nil, err
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settings := services.NewSettingsService(store, ai.NewConfigValidator())
	settingsService = settings

	app, err := settings.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	llm := ai.Init(ctx, &app.LLM)
	for _, w := range llm.Warnings {
		logger.Warn("%s", w)
	}

	prompts, err := file.NewPromptStore(filepath.Join(dir, "prompts"))
	if err != nil {
		return nil, err
	}

	opts := []services.AnalysisOption{
		services.WithPromptStore(prompts),
		services.WithTimeout(app.LLM.Timeout),
		services.WithRateLimit(app.LLM.RequestsPerMinute),
	}
	if llm.LLMService != nil {
		logger.Debug("LLM: %s (%s)", app.LLM.Provider.Description(), llm.LLMService.ModelName())
		opts = append(opts, services.WithLLM(llm.LLMService))
	}
	analysisService = services.NewAnalysisService(analysis.NewRegistry(), opts...)

	normaliser := slang.New()
	dict, err := file.NewSlangFile(app.Normaliser.SlangFile)
	if err != nil {
		return nil, err
	}
	if entries, err := dict.Load(); err != nil {
		logger.Warn("custom slang not loaded: %v", err)
	} else if err := normaliser.ReplaceCustomSlang(entries); err != nil {
		logger.Warn("custom slang %s rejected: %v", dict.Path(), err)
	}
	textNormaliser = normaliser
	slangStore = dict
	slangTarget = normaliser

	return llm.Close, nil
}

// startSlangWatcher reloads the custom slang file into the normaliser
// while a server runs. Call the returned func to stop.
func startSlangWatcher(ctx context.Context) (func(), error) {
	if slangStore == nil || slangTarget == nil {
		return nil, errors.New("slang dictionary not configured")
	}

	w, err := file.NewSlangWatcher(slangStore, slangTarget, file.DefaultDebounce)
	if err != nil {
		return nil, fmt.Errorf("create slang watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	logger.Debug("watching %s", slangStore.Path())
	return w.Stop, nil
}
