package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSelfDeployMCPServer creates a new MCP server with the SelfDeploy
// tools and resources registered. projectPath is the root directory of
// the repository to analyze.
func NewSelfDeployMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"selfdeploy",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
