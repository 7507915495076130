package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// GetPrompt handles the prompts/get method
func (h *Handler) GetPrompt(ctx context.Context, request *jsonrpc.Request) (*schema.GetPromptResult, *jsonrpc.Error) {
	params := &schema.GetPromptRequestParams{}
	if err := unmarshalParams(request.Params, params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, jsonrpc.NewInvalidParamsError("prompt name is required", request.Params)
	}
	return h.operations.GetPrompt(ctx, params)
}
