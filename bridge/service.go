package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/client"
	catalog "github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/BestDev/unreal-blueprint-mcp/uri"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
)

// Resource describes an engine resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// Content is a text payload returned by tools and prompts; IsError marks failure text
type Content struct {
	Text    string
	IsError bool
}

// Service represents the bridge between MCP primitives and the engine plugin
type Service struct {
	client   *client.Client
	registry *catalog.Registry
	logger   *slog.Logger
}

// Registry returns the tool and prompt catalog
func (s *Service) Registry() *catalog.Registry {
	return s.registry
}

// ListResources returns engine resources, or an empty list when the engine cannot be listed
func (s *Service) ListResources(ctx context.Context) []*Resource {
	resources, _ := s.listResources(ctx)
	return resources
}

func (s *Service) listResources(ctx context.Context) ([]*Resource, error) {
	ret := []*Resource{}
	data, err := s.client.Get(ctx, catalog.PathResources, nil)
	if err != nil {
		s.logger.Warn("failed to list resources", "error", err)
		return ret, err
	}
	list := &catalog.ResourceList{}
	if err = json.Unmarshal(data, list); err != nil {
		s.logger.Warn("failed to decode resources", "error", err)
		return ret, fmt.Errorf("failed to decode resources: %w", err)
	}
	for _, item := range list.Resources {
		if item == nil {
			continue
		}
		address := &uri.Address{Type: item.Type, Name: item.Name}
		if _, err := uri.Parse(address.URI()); err != nil {
			s.logger.Warn("skipped unaddressable resource", "type", item.Type, "name", item.Name, "error", err)
			continue
		}
		description := item.Description
		if description == "" {
			description = catalog.DefaultResourceDescription(item.Type)
		}
		ret = append(ret, &Resource{
			URI:         address.URI(),
			Name:        item.Name,
			Description: description,
			MimeType:    catalog.ResourceMimeType,
		})
	}
	return ret, nil
}

// ReadResource returns the raw body of the resource addressed by URI
func (s *Service) ReadResource(ctx context.Context, URI string) (string, error) {
	address, err := uri.Parse(URI)
	if err != nil {
		return "", err
	}
	data, err := s.client.Get(ctx, catalog.ResourcePath(url.PathEscape(address.Type), url.PathEscape(address.Name)), nil)
	if err != nil {
		s.logger.Error("failed to read resource", "uri", URI, "error", err)
		return "", err
	}
	return string(data), nil
}

// ListTools returns tool definitions
func (s *Service) ListTools() []*catalog.ToolDefinition {
	return s.registry.ListTools()
}

// ListPrompts returns prompt definitions
func (s *Service) ListPrompts() []*catalog.PromptDefinition {
	return s.registry.ListPrompts()
}

// CallTool validates arguments and forwards the call to the engine; failures are returned as error content
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}) *Content {
	logger := s.logger.With("call", uuid.NewString(), "tool", name)
	if schemaErr := s.registry.ValidateArguments(name, args); schemaErr != nil {
		logger.Warn("rejected tool call", "error", schemaErr)
		return &Content{Text: "Error: " + schemaErr.Error(), IsError: true}
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	started := time.Now()
	data, err := s.client.Post(ctx, catalog.PathTools, map[string]interface{}{"tool": name, "arguments": args})
	if err != nil {
		logger.Error("tool call failed", "error", err, "elapsed", time.Since(started))
		if status := catalog.HTTPStatus(err); status != 0 {
			return &Content{Text: fmt.Sprintf("Error: Tool execution failed: %d - %v", status, message(err)), IsError: true}
		}
		return &Content{Text: fmt.Sprintf("Error: Error calling tool %v: %v", name, message(err)), IsError: true}
	}
	buffer := bytes.Buffer{}
	if err = json.Indent(&buffer, data, "", "  "); err != nil {
		logger.Error("tool call returned invalid JSON", "error", err)
		return &Content{Text: fmt.Sprintf("Error: Error calling tool %v: invalid JSON response: %v", name, err), IsError: true}
	}
	logger.Info("tool call completed", "elapsed", time.Since(started))
	return &Content{Text: buffer.String()}
}

// GetPrompt retrieves prompt text from the engine; failures are returned as error content
func (s *Service) GetPrompt(ctx context.Context, name string, args map[string]string) *Content {
	query := url.Values{}
	for key, value := range args {
		query.Set(key, value)
	}
	data, err := s.client.Get(ctx, catalog.PromptPath(url.PathEscape(name)), query)
	if err != nil {
		s.logger.Error("failed to get prompt", "prompt", name, "error", err)
		if status := catalog.HTTPStatus(err); status != 0 {
			return &Content{Text: fmt.Sprintf("Error retrieving prompt: %d", status), IsError: true}
		}
		return &Content{Text: "Error: " + message(err), IsError: true}
	}
	return &Content{Text: string(data)}
}

// Close releases the engine plugin client
func (s *Service) Close() error {
	return s.client.Close()
}

func message(err error) string {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err.Error()
	}
	var details string
	if len(rpcErr.Data) > 0 && json.Unmarshal(rpcErr.Data, &details) == nil && details != "" {
		return rpcErr.Message + ": " + details
	}
	return rpcErr.Message
}

// NewService creates a bridge service
func NewService(cli *client.Client, registry *catalog.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: cli, registry: registry, logger: logger}
}
