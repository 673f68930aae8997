package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radar/internal/adapters/driving/mcp"
	"github.com/custodia-labs/radar/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can ask
radar for verdicts.

Tools:
  analyze           - verdict for a domain and its answers
  normalize         - replace slang, drop filler words
  extract_entities  - money amounts and cities in text

Resources:
  radar://domains            - domains and the fields each one reads
  radar://prompts/{domain}   - built-in LLM prompt for a domain

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, e.g. for the MCP Inspector.

Examples:
  radar mcp serve
  radar mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "radar": {
        "command": "/path/to/radar",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Analysis:   analysisService,
		Normaliser: textNormaliser,
	})
	if err != nil {
		return err
	}

	if stop, err := startSlangWatcher(cmd.Context()); err != nil {
		logger.Warn("slang hot reload disabled: %v", err)
	} else {
		defer stop()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
