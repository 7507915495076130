package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type fakeOperations struct{}

func (f *fakeOperations) ListResources(ctx context.Context) (*schema.ListResourcesResult, *jsonrpc.Error) {
	result, err := conv.Convert[schema.ListResourcesResult](map[string]interface{}{
		"resources": []map[string]interface{}{{"name": "BP_Player", "uri": "unreal://Blueprint/BP_Player"}},
	})
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return result, nil
}

func (f *fakeOperations) ReadResource(ctx context.Context, params *schema.ReadResourceRequestParams) (*schema.ReadResourceResult, *jsonrpc.Error) {
	if params.Uri == "" {
		return nil, jsonrpc.NewInvalidParamsError("uri is required", nil)
	}
	return &schema.ReadResourceResult{Contents: []schema.ReadResourceResultContentsElem{{Uri: params.Uri, Text: "{}"}}}, nil
}

func (f *fakeOperations) ListTools(ctx context.Context) (*schema.ListToolsResult, *jsonrpc.Error) {
	return &schema.ListToolsResult{}, nil
}

func (f *fakeOperations) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{{Type: "text", Text: params.Name}}}, nil
}

func (f *fakeOperations) ListPrompts(ctx context.Context) (*schema.ListPromptsResult, *jsonrpc.Error) {
	return &schema.ListPromptsResult{}, nil
}

func (f *fakeOperations) GetPrompt(ctx context.Context, params *schema.GetPromptRequestParams) (*schema.GetPromptResult, *jsonrpc.Error) {
	return &schema.GetPromptResult{}, nil
}

type recordingNotifier struct {
	mux           sync.Mutex
	notifications []*jsonrpc.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.notifications = append(r.notifications, notification)
	return nil
}

func newTestServer(t *testing.T, operations Operations) *Server {
	t.Helper()
	srv, err := New(WithNewOperations(func(ctx context.Context, logger *Logger) (Operations, error) {
		return operations, nil
	}))
	require.NoError(t, err)
	return srv
}

func TestNew(t *testing.T) {
	_, err := New()
	assert.Error(t, err)
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, &fakeOperations{})
	local := srv.Local(ctx)

	result, err := local.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "unreal-blueprint-mcp", result.ServerInfo.Name)
	assert.Equal(t, "1.0.0", result.ServerInfo.Version)
	assert.True(t, local.handler.Initialized)
	require.NoError(t, local.Ping(ctx))

	resources, err := local.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	assert.Equal(t, "unreal://Blueprint/BP_Player", resources.Resources[0].Uri)

	read, err := local.ReadResource(ctx, &schema.ReadResourceRequestParams{Uri: "unreal://Blueprint/BP_Player"})
	require.NoError(t, err)
	assert.Equal(t, "{}", read.Contents[0].Text)

	_, err = local.ReadResource(ctx, &schema.ReadResourceRequestParams{})
	assert.Error(t, err)

	called, err := local.CallTool(ctx, &schema.CallToolRequestParams{Name: "get_asset"})
	require.NoError(t, err)
	assert.Equal(t, "get_asset", called.Content[0].Text)

	_, err = local.CallTool(ctx, &schema.CallToolRequestParams{})
	assert.Error(t, err)

	_, err = local.GetPrompt(ctx, &schema.GetPromptRequestParams{})
	assert.Error(t, err)
}

func TestHandler_Serve(t *testing.T) {
	ctx := context.Background()
	handler := newTestServer(t, &fakeOperations{}).newHandler(ctx, nil)

	response := &jsonrpc.Response{}
	handler.Serve(ctx, &jsonrpc.Request{Jsonrpc: "1.0", Id: 1, Method: schema.MethodPing}, response)
	require.NotNil(t, response.Error)

	response = &jsonrpc.Response{}
	handler.Serve(ctx, &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: 2, Method: "sampling/createMessage"}, response)
	require.NotNil(t, response.Error)
	assert.Equal(t, -32601, response.Error.Code)

	response = &jsonrpc.Response{}
	handler.Serve(ctx, &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: 3, Method: schema.MethodResourcesTemplatesList}, response)
	require.Nil(t, response.Error)
	assert.JSONEq(t, `{"resourceTemplates":[]}`, string(response.Result))

	response = &jsonrpc.Response{}
	handler.Serve(ctx, &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: 4, Method: schema.MethodToolsCall, Params: []byte(`{"name":`)}, response)
	require.NotNil(t, response.Error)
	assert.Equal(t, jsonrpc.InvalidParams, response.Error.Code)
	assert.Equal(t, 0, handler.activeContexts.Len())
}

type blockingOperations struct {
	fakeOperations
	started chan string
	release map[string]chan struct{}
}

func newBlockingOperations(names ...string) *blockingOperations {
	ret := &blockingOperations{started: make(chan string, len(names)), release: map[string]chan struct{}{}}
	for _, name := range names {
		ret.release[name] = make(chan struct{})
	}
	return ret
}

func (b *blockingOperations) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	b.started <- params.Name
	select {
	case <-ctx.Done():
		return nil, jsonrpc.NewInternalError(ctx.Err().Error(), nil)
	case <-b.release[params.Name]:
		return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{{Type: "text", Text: params.Name}}}, nil
	}
}

func serveAsync(ctx context.Context, handler *Handler, id interface{}, tool string) chan *jsonrpc.Response {
	done := make(chan *jsonrpc.Response, 1)
	go func() {
		response := &jsonrpc.Response{}
		params, _ := json.Marshal(map[string]interface{}{"name": tool})
		handler.Serve(ctx, &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: id, Method: schema.MethodToolsCall, Params: params}, response)
		done <- response
	}()
	return done
}

func awaitResponse(t *testing.T, done chan *jsonrpc.Response) *jsonrpc.Response {
	t.Helper()
	select {
	case response := <-done:
		return response
	case <-time.After(5 * time.Second):
		t.Fatal("no response")
	}
	return nil
}

func assertRunning(t *testing.T, done chan *jsonrpc.Response, description string) {
	t.Helper()
	select {
	case response := <-done:
		t.Fatalf("%v: request finished early: %+v", description, response.Error)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandler_Cancel(t *testing.T) {
	var testCases = []struct {
		description string
		id          interface{}
		requestID   string
	}{
		{description: "numeric id", id: 7, requestID: `7`},
		{description: "string id", id: "call-7", requestID: `"call-7"`},
	}
	for _, testCase := range testCases {
		ctx := context.Background()
		operations := newBlockingOperations("edit_graph")
		handler := newTestServer(t, operations).newHandler(ctx, nil)

		done := serveAsync(ctx, handler, testCase.id, "edit_graph")
		<-operations.started
		handler.OnNotification(ctx, &jsonrpc.Notification{Method: "notifications/cancelled", Params: []byte(`{"requestId":` + testCase.requestID + `,"reason":"user abort"}`)})

		response := awaitResponse(t, done)
		require.NotNil(t, response.Error, testCase.description)
		assert.Contains(t, response.Error.Message, "context canceled", testCase.description)
		assert.Equal(t, 0, handler.activeContexts.Len(), testCase.description)
	}
}

func TestHandler_CancelUnknownRequest(t *testing.T) {
	ctx := context.Background()
	operations := newBlockingOperations("edit_graph")
	handler := newTestServer(t, operations).newHandler(ctx, nil)

	done := serveAsync(ctx, handler, 1, "edit_graph")
	<-operations.started
	handler.OnNotification(ctx, &jsonrpc.Notification{Method: "notifications/cancelled", Params: []byte(`{"requestId":"1"}`)})
	handler.OnNotification(ctx, &jsonrpc.Notification{Method: "notifications/cancelled", Params: []byte(`{}`)})
	assertRunning(t, done, "string id must not cancel numeric id")

	close(operations.release["edit_graph"])
	response := awaitResponse(t, done)
	assert.Nil(t, response.Error)
}

func TestHandler_ConcurrentRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("string ids in one session", func(t *testing.T) {
		operations := newBlockingOperations("first", "second")
		handler := newTestServer(t, operations).newHandler(ctx, nil)
		first := serveAsync(ctx, handler, "a", "first")
		second := serveAsync(ctx, handler, "b", "second")
		<-operations.started
		<-operations.started

		close(operations.release["first"])
		assert.Nil(t, awaitResponse(t, first).Error)
		assertRunning(t, second, "second")

		close(operations.release["second"])
		assert.Nil(t, awaitResponse(t, second).Error)
		assert.Equal(t, 0, handler.activeContexts.Len())
	})

	t.Run("same id in two sessions", func(t *testing.T) {
		operations := newBlockingOperations("first", "second")
		srv := newTestServer(t, operations)
		one, two := srv.newHandler(ctx, nil), srv.newHandler(ctx, nil)
		first := serveAsync(ctx, one, 1, "first")
		second := serveAsync(ctx, two, 1, "second")
		<-operations.started
		<-operations.started

		close(operations.release["first"])
		assert.Nil(t, awaitResponse(t, first).Error)
		assertRunning(t, second, "second session")

		one.OnNotification(ctx, &jsonrpc.Notification{Method: "notifications/cancelled", Params: []byte(`{"requestId":1}`)})
		assertRunning(t, second, "cancel in another session")

		close(operations.release["second"])
		assert.Nil(t, awaitResponse(t, second).Error)
	})
}

func TestCancelFilter(t *testing.T) {
	ctx := context.Background()
	operations := newBlockingOperations("edit_graph")
	handler := newTestServer(t, operations).newHandler(ctx, nil)
	session := &stdioSession{}
	session.set(handler)

	source, input := io.Pipe()
	filtered := bufio.NewReader(newCancelFilter(source, session.cancel))

	done := serveAsync(ctx, handler, 7, "edit_graph")
	<-operations.started

	lines := []string{
		`{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"requestId":7}}` + "\n",
		`{"jsonrpc":"2.0","id":8,"method":"ping"}` + "\n",
	}
	go func() {
		for _, line := range lines {
			_, _ = input.Write([]byte(line))
		}
		_ = input.Close()
	}()

	response := awaitResponse(t, done)
	require.NotNil(t, response.Error)
	assert.Contains(t, response.Error.Message, "context canceled")

	for _, line := range lines {
		actual, err := filtered.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, line, actual)
	}
	_, err := filtered.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
}

func TestCancelledRequest(t *testing.T) {
	var testCases = []struct {
		line   string
		expect string
	}{
		{line: `{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"requestId":"abc"}}`, expect: `"abc"`},
		{line: `{"jsonrpc":"2.0","method":"notifications/cancelled","params":{}}`},
		{line: `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"notifications/cancelled"}}`},
		{line: `not json notifications/cancelled`},
	}
	for _, testCase := range testCases {
		actual, ok := cancelledRequest([]byte(testCase.line))
		assert.Equal(t, testCase.expect != "", ok, testCase.line)
		assert.Equal(t, testCase.expect, string(actual), testCase.line)
	}
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	logger := NewLogger("bridge", notifier)

	require.NoError(t, logger.Warning(ctx, "before level is set"))
	assert.Empty(t, notifier.notifications)

	logger.SetLevel(schema.LoggingLevelDebug)
	require.NoError(t, logger.Warning(ctx, map[string]interface{}{"message": "resource listing failed"}))
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, schema.MethodNotificationMessage, notifier.notifications[0].Method)

	var params map[string]interface{}
	require.NoError(t, json.Unmarshal(notifier.notifications[0].Params, &params))
	assert.Equal(t, "bridge", params["logger"])

	logger.SetLevel(schema.Err)
	require.NoError(t, logger.Info(ctx, "filtered"))
	assert.Len(t, notifier.notifications, 1)
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := chain(next, localOrigin([]string{"https://studio.example"}), protocolVersion("2025-06-18"))

	var testCases = []struct {
		description string
		origin      string
		version     string
		expect      int
	}{
		{description: "no origin", expect: http.StatusNoContent},
		{description: "loopback origin", origin: "http://localhost:3000", expect: http.StatusNoContent},
		{description: "allowed origin", origin: "https://studio.example", expect: http.StatusNoContent},
		{description: "foreign origin", origin: "https://evil.example", expect: http.StatusForbidden},
		{description: "matching version", version: "2025-06-18", expect: http.StatusNoContent},
		{description: "other version", version: "2024-11-05", expect: http.StatusBadRequest},
	}
	for _, testCase := range testCases {
		request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if testCase.origin != "" {
			request.Header.Set("Origin", testCase.origin)
		}
		if testCase.version != "" {
			request.Header.Set("MCP-Protocol-Version", testCase.version)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expect, recorder.Code, testCase.description)
	}
}
