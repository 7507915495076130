package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &schema.CallToolRequestParams{}
	if err := unmarshalParams(request.Params, params); err != nil {
		return nil, err
	}
	if params.Name == "" {
		return nil, jsonrpc.NewInvalidParamsError("tool name is required", request.Params)
	}
	return h.operations.CallTool(ctx, params)
}
