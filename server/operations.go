package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Operations serves the MCP primitives exposed by the bridge
type Operations interface {
	ListResources(ctx context.Context) (*schema.ListResourcesResult, *jsonrpc.Error)
	ReadResource(ctx context.Context, params *schema.ReadResourceRequestParams) (*schema.ReadResourceResult, *jsonrpc.Error)
	ListTools(ctx context.Context) (*schema.ListToolsResult, *jsonrpc.Error)
	CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error)
	ListPrompts(ctx context.Context) (*schema.ListPromptsResult, *jsonrpc.Error)
	GetPrompt(ctx context.Context, params *schema.GetPromptRequestParams) (*schema.GetPromptResult, *jsonrpc.Error)
}

// NewOperations creates operations bound to a client connection logger
type NewOperations func(ctx context.Context, logger *Logger) (Operations, error)
