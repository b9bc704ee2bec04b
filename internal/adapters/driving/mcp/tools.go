package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question     string `json:"question" jsonschema:"the question to answer from the indexed documents"`
	K            int    `json:"k,omitempty" jsonschema:"number of chunks to retrieve (default from configuration)"`
	ContextLimit int    `json:"context_limit,omitempty" jsonschema:"maximum deduplicated chunks forwarded to the model"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using the locally indexed documents, with source citations",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	opts := driving.AskOptions{
		K:            input.K,
		ContextLimit: input.ContextLimit,
	}

	answer, err := s.ports.Assistant.Ask(ctx, input.Question, opts)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  answer.Text,
		Sources: answer.Sources,
	}
	if output.Sources == nil {
		output.Sources = []string{}
	}

	return nil, output, nil
}
