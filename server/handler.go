package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BestDev/unreal-blueprint-mcp/internal/collection"
	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Handler serves a single client connection
type Handler struct {
	*Logger
	*Server
	operations     Operations
	activeContexts *collection.SyncMap[string, *activeContext]
	Initialized    bool
	err            error
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(parent context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	if h.err != nil {
		response.Error = jsonrpc.NewInternalError(h.err.Error(), nil)
		return
	}

	ctx, done := h.track(parent, conv.RequestKey(request.Id))
	defer done()

	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		h.setResponse(response, &schema.PingResult{}, nil)
	case schema.MethodResourcesList:
		result, err := h.operations.ListResources(ctx)
		h.setResponse(response, result, err)
	case schema.MethodResourcesTemplatesList:
		result, err := h.ListResourceTemplates(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesRead:
		result, err := h.ReadResource(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPromptsList:
		result, err := h.operations.ListPrompts(ctx)
		h.setResponse(response, result, err)
	case schema.MethodPromptsGet:
		result, err := h.GetPrompt(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsList:
		result, err := h.operations.ListTools(ctx)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	if response.Result, err = json.Marshal(result); err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCanceled:
		if err := h.cancelRequest(notification.Params); err != nil {
			_ = h.Logger.Warning(ctx, map[string]interface{}{"message": "ignored cancellation", "error": err.Message})
		}
	case schema.MethodNotificationInitialized:
		h.Initialized = true
	}
}

// unmarshalParams decodes request params, treating absent params as an empty object
func unmarshalParams(params []byte, target interface{}) *jsonrpc.Error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, target); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), params)
	}
	return nil
}
