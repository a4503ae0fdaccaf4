package mcp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/datamill-labs/sqlfan-cli/internal/core/domain"
)

// PreviewInput is the input schema for the preview_targets tool.
type PreviewInput struct {
	CSVPath string `json:"csv_path" jsonschema:"path to the CSV file with server and database columns"`
}

// PreviewOutput is the output schema for the preview_targets tool.
type PreviewOutput struct {
	Targets []TargetOutput `json:"targets"`
	Count   int            `json:"count"`
}

// TargetOutput represents a single parsed target.
type TargetOutput struct {
	Ordinal  int    `json:"ordinal"`
	Server   string `json:"server"`
	Database string `json:"database"`
}

// GenerateInput is the input schema for the generate_script tool.
type GenerateInput struct {
	CSVPath    string `json:"csv_path" jsonschema:"path to the CSV file with server and database columns"`
	ScriptPath string `json:"script_path" jsonschema:"path to the SQL script to run on every target"`
	Username   string `json:"username,omitempty" jsonschema:"SQL login bound to the USERNAME variable"`
	Password   string `json:"password,omitempty" jsonschema:"SQL login password bound to the PASSWORD variable"`
}

// GenerateOutput is the output schema for the generate_script tool.
type GenerateOutput struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	TargetCount int    `json:"target_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.inner, &mcp.Tool{
		Name:        "preview_targets",
		Description: "Parse a CSV of (server, database) pairs and list the targets a fan-out script would cover",
	}, s.handlePreview)

	mcp.AddTool(s.inner, &mcp.Tool{
		Name:        "generate_script",
		Description: "Generate a multi-server SQLCMD fan-out script from a CSV of targets; returns the document without writing it",
	}, s.handleGenerate)
}

// handlePreview handles the preview_targets tool invocation.
func (s *Server) handlePreview(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PreviewInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	targets, err := s.readTargets(input.CSVPath)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	output := PreviewOutput{
		Targets: make([]TargetOutput, len(targets)),
		Count:   len(targets),
	}
	for i, t := range targets {
		output.Targets[i] = TargetOutput{
			Ordinal:  t.Ordinal,
			Server:   t.Server,
			Database: t.Database,
		}
	}

	return nil, output, nil
}

// handleGenerate handles the generate_script tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	targets, err := s.readTargets(input.CSVPath)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	now := time.Now()
	script, err := s.ports.Generator.Generate(domain.GenerationRequest{
		Targets:    targets,
		ScriptPath: input.ScriptPath,
		Username:   input.Username,
		Password:   input.Password,
	}, now)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	if s.ports.History != nil {
		// Best effort; the generated document is the result.
		_, _ = s.ports.History.Record(ctx, domain.Run{
			GeneratedAt: now,
			CSVPath:     input.CSVPath,
			ScriptPath:  input.ScriptPath,
			TargetCount: len(targets),
		})
	}

	return nil, GenerateOutput{
		Filename:    script.Filename,
		Content:     script.Content,
		TargetCount: len(targets),
	}, nil
}

func (s *Server) readTargets(csvPath string) ([]domain.Target, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	return s.ports.Generator.ReadTargets(f)
}
