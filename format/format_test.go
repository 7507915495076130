package format_test

import (
	"encoding/json"
	"testing"

	"github.com/BestDev/unreal-blueprint-mcp/format"
	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonrpc"
)

func TestParseNamespace(t *testing.T) {
	var testCases = []struct {
		method string
		expect format.Namespace
	}{
		{"ping", format.Core},
		{"getBlueprints", format.Core},
		{"getActors", format.Core},
		{"resources.list", format.Resources},
		{"resources.delete", format.Resources},
		{"tools.create_blueprint", format.Tools},
		{"prompts.get", format.Prompts},
		{"tools.", format.Unknown},
		{"toolsX.run", format.Unknown},
		{"shutdown", format.Unknown},
		{"", format.Unknown},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, format.ParseNamespace(testCase.method), testCase.method)
	}
}

func TestFormat(t *testing.T) {
	var testCases = []struct {
		description string
		method      string
		result      string
		err         *jsonrpc.Error
		expect      string
	}{
		{
			description: "ping",
			method:      "ping",
			result:      `{"status":"pong","server":"Unreal","version":"1.0"}`,
			expect:      "✅ Server responding: pong (version 1.0)",
		},
		{
			description: "ping missing fields",
			method:      "ping",
			result:      `{}`,
			expect:      "✅ Server responding: unknown (version unknown)",
		},
		{
			description: "blueprints",
			method:      "getBlueprints",
			result:      `{"blueprints":[{"name":"BP_Player","path":"/Game/BP_Player"},{"name":"BP_Door"}]}`,
			expect:      "📋 Found 2 Blueprint(s):\n   • BP_Player (/Game/BP_Player)\n   • BP_Door (Unknown path)",
		},
		{
			description: "no blueprints",
			method:      "getBlueprints",
			result:      `{"blueprints":[]}`,
			expect:      "📋 No Blueprints found in the project",
		},
		{
			description: "actors",
			method:      "getActors",
			result:      `{"actors":[{"name":"Floor","class":"StaticMeshActor"}]}`,
			expect:      "🎭 Found 1 actor(s) in the world:\n   • Floor (StaticMeshActor)",
		},
		{
			description: "resources list",
			method:      "resources.list",
			result:      `{"resources":[{"name":"BP_Player","type":"Blueprint"}]}`,
			expect:      "📁 Found 1 resource(s):\n   • BP_Player (Blueprint)",
		},
		{
			description: "resources get",
			method:      "resources.get",
			result:      `{"name":"BP_Player"}`,
			expect:      "📄 Resource details:\n{\n  \"name\": \"BP_Player\"\n}",
		},
		{
			description: "resources create",
			method:      "resources.create",
			result:      `{"success":true,"asset_path":"/Game/BP_New"}`,
			expect:      "✅ Resource created successfully: /Game/BP_New",
		},
		{
			description: "resources create failed",
			method:      "resources.create",
			result:      `{"success":false}`,
			expect:      "❌ Failed to create resource: Unknown error",
		},
		{
			description: "tool success",
			method:      "tools.create_blueprint",
			result:      `{"success":true,"message":"Blueprint created"}`,
			expect:      "✅ Tool operation successful: Blueprint created",
		},
		{
			description: "tool failure",
			method:      "tools.add_variable",
			result:      `{"success":false,"message":"Blueprint not found"}`,
			expect:      "❌ Tool operation failed: Blueprint not found",
		},
		{
			description: "prompts list",
			method:      "prompts.list",
			result:      `{"prompts":[{"name":"performance_tips","description":"Tips"}]}`,
			expect:      "📚 Available prompts (1):\n   • performance_tips - Tips",
		},
		{
			description: "prompt get",
			method:      "prompts.get",
			result:      `{"content":"Use Blueprint interfaces"}`,
			expect:      "📚 Prompt content:\nUse Blueprint interfaces",
		},
		{
			description: "unknown method",
			method:      "shutdown",
			result:      `{"ok":true}`,
			expect:      "{\n  \"ok\": true\n}",
		},
		{
			description: "unknown resources member",
			method:      "resources.delete",
			result:      `[1]`,
			expect:      "[\n  1\n]",
		},
		{
			description: "tool result not object",
			method:      "tools.edit_graph",
			result:      `"done"`,
			expect:      `"done"`,
		},
		{
			description: "error with details",
			method:      "ping",
			err:         jsonrpc.NewError(-32001, "Connection failed", "Unable to connect"),
			expect:      "❌ Error: Connection failed\n   Details: Unable to connect",
		},
		{
			description: "error without details",
			method:      "tools.create_blueprint",
			err:         jsonrpc.NewError(-32601, "Method not found", nil),
			expect:      "❌ Error: Method not found\n   Details: No additional details",
		},
	}
	for _, testCase := range testCases {
		response := &jsonrpc.Response{Error: testCase.err}
		if testCase.result != "" {
			response.Result = json.RawMessage(testCase.result)
		}
		assert.Equal(t, testCase.expect, format.Format(response, testCase.method), testCase.description)
	}
}

func TestFormat_UnexpectedResponse(t *testing.T) {
	actual := format.Format(&jsonrpc.Response{}, "ping")
	assert.Contains(t, actual, "⚠️  Unexpected response format")
	assert.Contains(t, format.Format(nil, "ping"), "Unexpected response format")
}
