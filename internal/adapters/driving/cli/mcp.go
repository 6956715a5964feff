package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ankiform/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose ankiform to AI assistants",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the format_text and reform_notes tools over MCP",
	Long: `Serves ankiform over the Model Context Protocol.

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop assistants launch. With --port it serves the streamable HTTP
transport instead.

Examples:
  ankiform mcp serve
  ankiform mcp serve --port 8080

Assistant configuration:
  {"mcpServers": {"ankiform": {"command": "ankiform", "args": ["mcp", "serve"]}}}`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")

	server, err := mcp.NewServer(&mcp.Ports{
		Format:  formatService,
		Reform:  reformService,
		History: historyService,
	})
	if err != nil {
		return fmt.Errorf("start mcp server: %w", err)
	}

	if port <= 0 {
		return server.Run(cmd.Context())
	}

	// stdout is free in HTTP mode.
	cmd.Printf("MCP server listening on http://localhost:%d\n", port)
	return server.RunHTTP(cmd.Context(), fmt.Sprintf(":%d", port))
}
