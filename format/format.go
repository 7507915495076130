package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/jsonrpc"
)

type (
	named struct {
		Name        string `json:"name"`
		Path        string `json:"path"`
		Class       string `json:"class"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}

	pingResult struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}

	listResult struct {
		Blueprints []*named `json:"blueprints"`
		Actors     []*named `json:"actors"`
		Resources  []*named `json:"resources"`
		Prompts    []*named `json:"prompts"`
	}

	operationResult struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		AssetPath string `json:"asset_path"`
		Content   string `json:"content"`
	}
)

// Format renders a JSON-RPC response of method for a human reader
func Format(response *jsonrpc.Response, method string) string {
	if response == nil {
		return "⚠️  Unexpected response format: null"
	}
	if response.Error != nil {
		return fmt.Sprintf("❌ Error: %v\n   Details: %v", response.Error.Message, details(response.Error.Data))
	}
	if len(response.Result) == 0 {
		data, _ := json.MarshalIndent(response, "", "  ")
		return "⚠️  Unexpected response format: " + string(data)
	}
	var text string
	var ok bool
	switch ParseNamespace(method) {
	case Core:
		text, ok = formatCore(method, response.Result)
	case Resources:
		text, ok = formatResources(method, response.Result)
	case Tools:
		text, ok = formatTools(response.Result)
	case Prompts:
		text, ok = formatPrompts(method, response.Result)
	}
	if !ok {
		return Indent(response.Result)
	}
	return text
}

func formatCore(method string, result json.RawMessage) (string, bool) {
	switch method {
	case "ping":
		pong := &pingResult{}
		if err := json.Unmarshal(result, pong); err != nil {
			return "", false
		}
		return fmt.Sprintf("✅ Server responding: %v (version %v)", or(pong.Status, "unknown"), or(pong.Version, "unknown")), true
	case "getBlueprints":
		list := &listResult{}
		if err := json.Unmarshal(result, list); err != nil {
			return "", false
		}
		if len(list.Blueprints) == 0 {
			return "📋 No Blueprints found in the project", true
		}
		return bulleted(fmt.Sprintf("📋 Found %d Blueprint(s):", len(list.Blueprints)), list.Blueprints, func(item *named) string {
			return fmt.Sprintf("%v (%v)", or(item.Name, "Unknown"), or(item.Path, "Unknown path"))
		}), true
	case "getActors":
		list := &listResult{}
		if err := json.Unmarshal(result, list); err != nil {
			return "", false
		}
		if len(list.Actors) == 0 {
			return "🎭 No actors found in the current world", true
		}
		return bulleted(fmt.Sprintf("🎭 Found %d actor(s) in the world:", len(list.Actors)), list.Actors, func(item *named) string {
			return fmt.Sprintf("%v (%v)", or(item.Name, "Unknown"), or(item.Class, "Unknown class"))
		}), true
	}
	return "", false
}

func formatResources(method string, result json.RawMessage) (string, bool) {
	switch method {
	case "resources.list":
		list := &listResult{}
		if err := json.Unmarshal(result, list); err != nil {
			return "", false
		}
		if len(list.Resources) == 0 {
			return "📁 No resources found in the specified path", true
		}
		return bulleted(fmt.Sprintf("📁 Found %d resource(s):", len(list.Resources)), list.Resources, func(item *named) string {
			return fmt.Sprintf("%v (%v)", or(item.Name, "Unknown"), or(item.Type, "Unknown type"))
		}), true
	case "resources.get":
		return "📄 Resource details:\n" + Indent(result), true
	case "resources.create":
		operation := &operationResult{}
		if err := json.Unmarshal(result, operation); err != nil {
			return "", false
		}
		if operation.Success {
			return "✅ Resource created successfully: " + or(operation.AssetPath, "Unknown path"), true
		}
		return "❌ Failed to create resource: " + or(operation.Message, "Unknown error"), true
	}
	return "", false
}

func formatTools(result json.RawMessage) (string, bool) {
	operation := &operationResult{}
	if err := json.Unmarshal(result, operation); err != nil {
		return "", false
	}
	if operation.Success {
		return "✅ Tool operation successful: " + or(operation.Message, "Operation completed"), true
	}
	return "❌ Tool operation failed: " + or(operation.Message, "Unknown error"), true
}

func formatPrompts(method string, result json.RawMessage) (string, bool) {
	switch method {
	case "prompts.list":
		list := &listResult{}
		if err := json.Unmarshal(result, list); err != nil {
			return "", false
		}
		if len(list.Prompts) == 0 {
			return "📚 No prompts available", true
		}
		return bulleted(fmt.Sprintf("📚 Available prompts (%d):", len(list.Prompts)), list.Prompts, func(item *named) string {
			return fmt.Sprintf("%v - %v", or(item.Name, "Unknown"), or(item.Description, "No description"))
		}), true
	case "prompts.get":
		operation := &operationResult{}
		if err := json.Unmarshal(result, operation); err != nil {
			return "", false
		}
		return "📚 Prompt content:\n" + or(operation.Content, "No content available"), true
	}
	return "", false
}

func bulleted(header string, items []*named, line func(item *named) string) string {
	builder := strings.Builder{}
	builder.WriteString(header)
	for _, item := range items {
		builder.WriteString("\n   • ")
		builder.WriteString(line(item))
	}
	return builder.String()
}

func details(data []byte) string {
	if len(data) == 0 || string(data) == "null" {
		return "No additional details"
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		return text
	}
	return string(data)
}

// Indent pretty prints JSON with two space indentation, returning invalid JSON as is
func Indent(data []byte) string {
	buffer := bytes.Buffer{}
	if err := json.Indent(&buffer, data, "", "  "); err != nil {
		return string(data)
	}
	return buffer.String()
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
