package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configadapter "github.com/selfdeploy/selfdeploy/internal/adapters/outbound/config"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/gitsource"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/snapshot"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/templates"
	"github.com/selfdeploy/selfdeploy/internal/application"
	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// registerTools registers the SelfDeploy MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("selfdeploy_detect",
			mcplib.WithDescription("Resolve the repository's technology stack and return the profile as JSON"),
			mcplib.WithBoolean("signals", mcplib.Description("Include the raw signal sequence")),
		),
		handleDetect(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("selfdeploy_plan",
			mcplib.WithDescription("Compute the artifact generation plan (dry run, nothing is written) and return the report as JSON"),
			mcplib.WithString("templates_dir", mcplib.Description("Directory overriding the built-in templates")),
		),
		handlePlan(projectPath),
	)
}

func newDetectService() *application.DetectService {
	return application.NewDetectService(snapshot.NewLoader(), configadapter.New())
}

func newGenerateService() *application.GenerateService {
	return application.NewGenerateService(
		snapshot.NewLoader(),
		configadapter.New(),
		gitsource.New(),
		func(dir string) domain.TemplateStore { return templates.New(dir) },
	)
}

func handleDetect(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profile, signals, err := newDetectService().Detect(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("detect failed: %v", err)), nil
		}
		if request.GetBool("signals", false) {
			return jsonResult(map[string]any{"profile": profile, "signals": signals})
		}
		return jsonResult(profile)
	}
}

func handlePlan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newGenerateService().Run(projectPath, application.GenerateOptions{
			TemplatesDir: request.GetString("templates_dir", ""),
			DryRun:       true,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("plan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
