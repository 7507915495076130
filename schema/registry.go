package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry is a read-only catalog of tool and prompt definitions.
type Registry struct {
	tools       []*ToolDefinition
	toolByName  map[string]*ToolDefinition
	prompts     []*PromptDefinition
	promptIndex map[string]*PromptDefinition
	compiled    map[string]*jsonschema.Schema
}

// ListTools returns tool definitions in registration order
func (r *Registry) ListTools() []*ToolDefinition {
	return r.tools
}

// ListPrompts returns prompt definitions in registration order
func (r *Registry) ListPrompts() []*PromptDefinition {
	return r.prompts
}

// Tool returns a tool definition by name
func (r *Registry) Tool(name string) (*ToolDefinition, bool) {
	ret, ok := r.toolByName[name]
	return ret, ok
}

// Prompt returns a prompt definition by name
func (r *Registry) Prompt(name string) (*PromptDefinition, bool) {
	ret, ok := r.promptIndex[name]
	return ret, ok
}

// AddTool registers a tool whose input schema is derived from input struct
func (r *Registry) AddTool(name, description string, input any) error {
	tool, err := NewToolDefinition(name, description, input)
	if err != nil {
		return fmt.Errorf("tool %v: %w", name, err)
	}
	return r.addTool(tool)
}

func (r *Registry) addTool(tool *ToolDefinition) error {
	if _, ok := r.toolByName[tool.Name]; ok {
		return fmt.Errorf("tool %v: already registered", tool.Name)
	}
	if err := validateDefinition(tool); err != nil {
		return fmt.Errorf("tool %v: %w", tool.Name, err)
	}
	compiled, err := compileSchema(schemaLocation(tool.Name), tool.InputSchema)
	if err != nil {
		return fmt.Errorf("tool %v: invalid input schema: %w", tool.Name, err)
	}
	r.compiled[tool.Name] = compiled
	r.tools = append(r.tools, tool)
	r.toolByName[tool.Name] = tool
	return nil
}

// AddPrompt registers a prompt
func (r *Registry) AddPrompt(prompt *PromptDefinition) error {
	if _, ok := r.promptIndex[prompt.Name]; ok {
		return fmt.Errorf("prompt %v: already registered", prompt.Name)
	}
	if prompt.Arguments == nil {
		prompt.Arguments = []PromptArgument{}
	}
	r.prompts = append(r.prompts, prompt)
	r.promptIndex[prompt.Name] = prompt
	return nil
}

// Validate checks every definition for internal consistency
func (r *Registry) Validate() error {
	for _, tool := range r.tools {
		if err := validateDefinition(tool); err != nil {
			return fmt.Errorf("tool %v: %w", tool.Name, err)
		}
	}
	return nil
}

func validateDefinition(tool *ToolDefinition) error {
	if tool.InputSchema.Type != "object" {
		return fmt.Errorf("input schema type %q, expected object", tool.InputSchema.Type)
	}
	return validateObjectSchema(tool.Name, "", tool.InputSchema.Properties, tool.InputSchema.Required)
}

func validateObjectSchema(tool, path string, properties ToolInputSchemaProperties, required []string) error {
	for _, name := range required {
		if _, ok := properties[name]; !ok {
			return fmt.Errorf("required property %v%v is not defined", path, name)
		}
	}
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := validatePropertySchema(tool, path+name, properties[name]); err != nil {
			return err
		}
	}
	return nil
}

func validatePropertySchema(tool, path string, property map[string]interface{}) error {
	if value, ok := property["default"]; ok {
		if err := validateDefault(tool, path, property, value); err != nil {
			return err
		}
	}
	if items, ok := property["items"].(map[string]interface{}); ok {
		if err := validatePropertySchema(tool, path+"[]", items); err != nil {
			return err
		}
	}
	if nested, ok := nestedProperties(property); ok {
		required, _ := property["required"].([]string)
		return validateObjectSchema(tool, path+".", nested, required)
	}
	return nil
}

func validateDefault(tool, path string, property map[string]interface{}, value interface{}) error {
	compiled, err := compileSchema(schemaLocation(tool, path), property)
	if err != nil {
		return fmt.Errorf("property %v: invalid schema: %w", path, err)
	}
	instance, err := asInstance(value)
	if err != nil {
		return fmt.Errorf("property %v: default: %w", path, err)
	}
	if err = compiled.Validate(instance); err != nil {
		return fmt.Errorf("property %v: default: %v", path, strings.Join(violations(err), "; "))
	}
	return nil
}

func nestedProperties(property map[string]interface{}) (ToolInputSchemaProperties, bool) {
	ret, ok := property["properties"].(ToolInputSchemaProperties)
	return ret, ok
}

// NewRegistry creates a registry with the engine tool and prompt catalog
func NewRegistry() (*Registry, error) {
	ret := &Registry{
		toolByName:  map[string]*ToolDefinition{},
		promptIndex: map[string]*PromptDefinition{},
		compiled:    map[string]*jsonschema.Schema{},
	}
	for _, tool := range tools {
		if err := ret.AddTool(tool.name, tool.description, tool.input); err != nil {
			return nil, err
		}
	}
	for _, prompt := range prompts {
		if err := ret.AddPrompt(prompt); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
