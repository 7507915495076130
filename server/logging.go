package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// SetLevel handles the logging/setLevel method
func (h *Handler) SetLevel(ctx context.Context, request *jsonrpc.Request) (*schema.SetLevelResult, *jsonrpc.Error) {
	setLevelRequest := &schema.SetLevelRequest{Method: request.Method}
	if err := unmarshalParams(request.Params, &setLevelRequest.Params); err != nil {
		return nil, err
	}
	h.Logger.SetLevel(setLevelRequest.Params.Level)
	return &schema.SetLevelResult{}, nil
}
