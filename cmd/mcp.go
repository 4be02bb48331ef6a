package cmd

import (
	"github.com/huangsam/stackrank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Stackrank MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze pipeline data via standard tools.`,
	// Protocol traffic flows over stdio, so no other output may land there.
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, store)
	},
}
