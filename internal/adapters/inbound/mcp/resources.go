package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers the SelfDeploy MCP resources.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"selfdeploy://profile",
			"Stack Profile",
			mcplib.WithResourceDescription("Resolved technology stack for the repository"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProfileResource(projectPath),
	)
}

func handleProfileResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		profile, _, err := newDetectService().Detect(projectPath)
		if err != nil {
			return nil, fmt.Errorf("detect failed: %w", err)
		}

		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling profile: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "selfdeploy://profile",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
