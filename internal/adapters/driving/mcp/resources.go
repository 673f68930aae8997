package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
)

const uriScheme = "radar://"

// domainInfo describes one questionnaire for the domains resource.
type domainInfo struct {
	Domain      string   `json:"domain"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "domains",
		Name:        "domains",
		Description: "Supported domains and the answer fields each one reads",
		MIMEType:    "application/json",
	}, s.handleDomainsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "prompts/{domain}",
		Name:        "verdict-prompt",
		Description: "Built-in LLM prompt template for a domain",
		MIMEType:    "text/plain",
	}, s.handlePromptResource)
}

func (s *Server) handleDomainsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	profiles := analysis.Profiles()
	infos := make([]domainInfo, len(profiles))
	for i, p := range profiles {
		infos[i] = domainInfo{
			Domain:      p.Domain.String(),
			Description: p.Domain.Description(),
			Fields:      p.Fields(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling domains: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handlePromptResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	d, ok := domain.ParseDomain(extractPromptDomain(req.Params.URI))
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     analysis.DefaultPrompt(d),
		}},
	}, nil
}

// extractPromptDomain extracts the domain from radar://prompts/{domain}.
func extractPromptDomain(uri string) string {
	const prefix = uriScheme + "prompts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
