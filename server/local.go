package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Local calls the server in process, without a transport
type Local struct {
	handler *Handler
}

// Local returns an in-process client of the server
func (s *Server) Local(ctx context.Context) *Local {
	return &Local{handler: s.newHandler(ctx, nil)}
}

func call[R any](ctx context.Context, l *Local, method string, params interface{}) (*R, error) {
	request, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return nil, err
	}
	response := &jsonrpc.Response{}
	l.handler.Serve(ctx, request, response)
	if response.Error != nil {
		return nil, response.Error
	}
	var result R
	if err = json.Unmarshal(response.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Initialize performs the initialize handshake
func (l *Local) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	result, err := call[schema.InitializeResult](ctx, l, schema.MethodInitialize, &schema.InitializeRequestParams{})
	if err != nil {
		return nil, err
	}
	l.handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized})
	return result, nil
}

// ListResources lists resources
func (l *Local) ListResources(ctx context.Context) (*schema.ListResourcesResult, error) {
	return call[schema.ListResourcesResult](ctx, l, schema.MethodResourcesList, nil)
}

// ReadResource reads a resource
func (l *Local) ReadResource(ctx context.Context, params *schema.ReadResourceRequestParams) (*schema.ReadResourceResult, error) {
	return call[schema.ReadResourceResult](ctx, l, schema.MethodResourcesRead, params)
}

// ListTools lists tools
func (l *Local) ListTools(ctx context.Context) (*schema.ListToolsResult, error) {
	return call[schema.ListToolsResult](ctx, l, schema.MethodToolsList, nil)
}

// CallTool calls a tool
func (l *Local) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	return call[schema.CallToolResult](ctx, l, schema.MethodToolsCall, params)
}

// ListPrompts lists prompts
func (l *Local) ListPrompts(ctx context.Context) (*schema.ListPromptsResult, error) {
	return call[schema.ListPromptsResult](ctx, l, schema.MethodPromptsList, nil)
}

// GetPrompt gets a prompt
func (l *Local) GetPrompt(ctx context.Context, params *schema.GetPromptRequestParams) (*schema.GetPromptResult, error) {
	return call[schema.GetPromptResult](ctx, l, schema.MethodPromptsGet, params)
}

// Ping pings the server
func (l *Local) Ping(ctx context.Context) error {
	_, err := call[schema.PingResult](ctx, l, schema.MethodPing, nil)
	return err
}

// SetLevel sets the logging level of the local connection
func (l *Local) SetLevel(ctx context.Context, level schema.LoggingLevel) error {
	_, err := call[schema.SetLevelResult](ctx, l, schema.MethodLoggingSetLevel, map[string]interface{}{"level": level})
	return err
}
