package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
)

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	Domain    string            `json:"domain" jsonschema:"one of debt, market, hiring, import, idea"`
	Answers   map[string]string `json:"answers" jsonschema:"questionnaire answers keyed by field name"`
	UseAI     bool              `json:"use_ai,omitempty" jsonschema:"ask the configured LLM first and fall back to rules"`
	Normalise bool              `json:"normalise,omitempty" jsonschema:"normalise slang in every answer before analysis"`
}

// VerdictOutput is the output schema for the analyze tool.
type VerdictOutput struct {
	Domain         string   `json:"domain"`
	Zone           string   `json:"zone"`
	Headline       string   `json:"headline"`
	Signals        []string `json:"signals"`
	Recommendation string   `json:"recommendation,omitempty"`
	Origin         string   `json:"origin"`
	Rendered       string   `json:"rendered"`
}

// TextInput is the input schema for the text tools.
type TextInput struct {
	Text string `json:"text" jsonschema:"free text in Russian or Kazakh"`
}

// NormalizeOutput is the output schema for the normalize tool.
type NormalizeOutput struct {
	Text string `json:"text"`
}

// EntitiesOutput is the output schema for the extract_entities tool.
type EntitiesOutput struct {
	Amounts []string `json:"amounts,omitempty"`
	Cities  []string `json:"cities,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Score a business situation and return a traffic-light verdict",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize",
		Description: "Replace colloquial words with standard forms and drop filler words",
	}, s.handleNormalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_entities",
		Description: "Find money amounts and Kazakhstan city names in text",
	}, s.handleExtractEntities)
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, VerdictOutput, error) {
	d, ok := domain.ParseDomain(input.Domain)
	if !ok {
		return nil, VerdictOutput{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedDomain, input.Domain)
	}

	answers := domain.AnswerSet(input.Answers)
	if input.Normalise {
		answers = answers.Map(s.ports.Normaliser.Normalise)
	}

	var (
		verdict domain.Verdict
		err     error
	)
	if input.UseAI {
		verdict, err = s.ports.Analysis.Analyze(ctx, d, answers)
	} else {
		verdict, err = s.ports.Analysis.RuleBased(d, answers)
	}
	if err != nil {
		return nil, VerdictOutput{}, err
	}

	return nil, toVerdictOutput(verdict), nil
}

func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	return nil, NormalizeOutput{Text: s.ports.Normaliser.Normalise(input.Text)}, nil
}

func (s *Server) handleExtractEntities(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, EntitiesOutput, error) {
	entities := s.ports.Normaliser.ExtractEntities(input.Text)
	return nil, EntitiesOutput{
		Amounts: entities.Get(domain.EntityAmounts),
		Cities:  entities.Get(domain.EntityCities),
	}, nil
}

func toVerdictOutput(v domain.Verdict) VerdictOutput {
	return VerdictOutput{
		Domain:         v.Domain.String(),
		Zone:           v.Zone.String(),
		Headline:       v.Headline,
		Signals:        v.SignalStrings(),
		Recommendation: v.Recommendation,
		Origin:         string(v.Origin),
		Rendered:       analysis.Render(v),
	}
}
