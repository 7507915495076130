package server

import (
	"context"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ReadResource handles the resources/read method
func (h *Handler) ReadResource(ctx context.Context, request *jsonrpc.Request) (*schema.ReadResourceResult, *jsonrpc.Error) {
	params := &schema.ReadResourceRequestParams{}
	if err := unmarshalParams(request.Params, params); err != nil {
		return nil, err
	}
	return h.operations.ReadResource(ctx, params)
}

// ListResourceTemplates handles the resources/templates/list method; engine resources have no templates
func (h *Handler) ListResourceTemplates(ctx context.Context, request *jsonrpc.Request) (*schema.ListResourceTemplatesResult, *jsonrpc.Error) {
	result, err := conv.Convert[schema.ListResourceTemplatesResult](map[string]interface{}{"resourceTemplates": []interface{}{}})
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return result, nil
}
