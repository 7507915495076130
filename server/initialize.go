package server

import (
	"context"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

var capabilities = map[string]interface{}{
	"resources": map[string]interface{}{},
	"tools":     map[string]interface{}{},
	"prompts":   map[string]interface{}{},
	"logging":   map[string]interface{}{},
}

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Error) {
	params := &schema.InitializeRequestParams{}
	if err := unmarshalParams(request.Params, params); err != nil {
		return nil, err
	}
	serverCapabilities, err := conv.Convert[schema.ServerCapabilities](capabilities)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return &schema.InitializeResult{
		ProtocolVersion: h.protocolVersion,
		ServerInfo:      h.info,
		Capabilities:    *serverCapabilities,
		Instructions:    h.instructions,
	}, nil
}
