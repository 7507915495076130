package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	catalog "github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/BestDev/unreal-blueprint-mcp/server"
	"github.com/BestDev/unreal-blueprint-mcp/uri"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// implementer serves MCP operations of a single client connection
type implementer struct {
	service *Service
	logger  *server.Logger
}

// ListResources lists engine resources; failures are logged and yield an empty list
func (i *implementer) ListResources(ctx context.Context) (*schema.ListResourcesResult, *jsonrpc.Error) {
	resources, err := i.service.listResources(ctx)
	if err != nil {
		_ = i.logger.Warning(ctx, map[string]interface{}{"message": "failed to list resources", "error": err.Error()})
	}
	return convert[schema.ListResourcesResult](map[string]interface{}{"resources": resources})
}

// ReadResource reads an engine resource
func (i *implementer) ReadResource(ctx context.Context, params *schema.ReadResourceRequestParams) (*schema.ReadResourceResult, *jsonrpc.Error) {
	text, err := i.service.ReadResource(ctx, params.Uri)
	if err != nil {
		_ = i.logger.Error(ctx, map[string]interface{}{"message": "failed to read resource", "uri": params.Uri, "error": err.Error()})
		return nil, asRPCError(err)
	}
	mimeType := catalog.ResourceMimeType
	return &schema.ReadResourceResult{
		Contents: []schema.ReadResourceResultContentsElem{
			{Uri: params.Uri, MimeType: &mimeType, Text: text},
		},
	}, nil
}

// ListTools lists registry tools
func (i *implementer) ListTools(ctx context.Context) (*schema.ListToolsResult, *jsonrpc.Error) {
	return convert[schema.ListToolsResult](map[string]interface{}{"tools": i.service.ListTools()})
}

// CallTool calls an engine tool
func (i *implementer) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	content := i.service.CallTool(ctx, params.Name, params.Arguments)
	if content.IsError {
		_ = i.logger.Warning(ctx, map[string]interface{}{"message": "tool call failed", "tool": params.Name, "error": content.Text})
	}
	isError := content.IsError
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{{Type: "text", Text: content.Text}},
		IsError: &isError,
	}, nil
}

// ListPrompts lists registry prompts
func (i *implementer) ListPrompts(ctx context.Context) (*schema.ListPromptsResult, *jsonrpc.Error) {
	return convert[schema.ListPromptsResult](map[string]interface{}{"prompts": i.service.ListPrompts()})
}

// GetPrompt retrieves prompt text from the engine
func (i *implementer) GetPrompt(ctx context.Context, params *schema.GetPromptRequestParams) (*schema.GetPromptResult, *jsonrpc.Error) {
	args := map[string]string{}
	for key, value := range params.Arguments {
		args[key] = fmt.Sprint(value)
	}
	content := i.service.GetPrompt(ctx, params.Name, args)
	description := params.Name
	if prompt, ok := i.service.Registry().Prompt(params.Name); ok {
		description = prompt.Description
	}
	return convert[schema.GetPromptResult](map[string]interface{}{
		"description": description,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": map[string]interface{}{"type": "text", "text": content.Text},
			},
		},
	})
}

func convert[T any](source interface{}) (*T, *jsonrpc.Error) {
	ret, err := conv.Convert[T](source)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return ret, nil
}

func asRPCError(err error) *jsonrpc.Error {
	var rpcErr *jsonrpc.Error
	switch {
	case errors.Is(err, uri.ErrInvalidURI):
		return catalog.NewInvalidURI(err)
	case errors.As(err, &rpcErr):
		return rpcErr
	}
	return jsonrpc.NewInternalError(err.Error(), nil)
}
