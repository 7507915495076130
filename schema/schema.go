package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/tagly/format"
)

type (
	// ToolInputSchemaProperties maps property name to its JSON schema.
	ToolInputSchemaProperties map[string]map[string]interface{}

	// ToolInputSchema is a JSON schema object describing tool arguments.
	ToolInputSchema struct {
		Type       string                    `json:"type" yaml:"type"`
		Properties ToolInputSchemaProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
		Required   []string                  `json:"required,omitempty" yaml:"required,omitempty"`
	}
)

// schemaForType returns a JSON schema representation for a given reflect.Type.
func schemaForType(t reflect.Type) (map[string]interface{}, error) {
	schema := make(map[string]interface{})
	if t.Kind() == reflect.Ptr {
		return schemaForType(t.Elem())
	}
	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		items, err := schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		schema["items"] = items
	case reflect.Map:
		schema["type"] = "object"
		if t.Elem().Kind() != reflect.Interface {
			additional, err := schemaForType(t.Elem())
			if err != nil {
				return nil, err
			}
			schema["additionalProperties"] = additional
		}
	case reflect.Struct:
		schema["type"] = "object"
		properties, required, err := structToProperties(t)
		if err != nil {
			return nil, err
		}
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	case reflect.Interface:
		// any JSON value
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return schema, nil
}

// structToProperties converts a struct type into input schema properties and required fields.
// A field is required unless it is a pointer, tagged omitempty, or carries a default.
func structToProperties(t reflect.Type) (ToolInputSchemaProperties, []string, error) {
	properties := make(ToolInputSchemaProperties)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, _ := format.Parse(field.Tag, "json", "format")
		if tag == nil {
			tag = &format.Tag{}
		}
		if tag.Ignore {
			continue
		}
		fieldName := field.Name
		if tag.Name != "" {
			fieldName = tag.Name
		}
		fieldSchema, err := schemaForType(field.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("field %v: %w", fieldName, err)
		}
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema["description"] = description
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			fieldSchema["enum"] = strings.Split(enum, ",")
		}
		defaultValue, hasDefault := field.Tag.Lookup("default")
		if hasDefault {
			if fieldSchema["default"], err = parseDefault(fieldSchema, defaultValue); err != nil {
				return nil, nil, fmt.Errorf("field %v: invalid default %q: %w", fieldName, defaultValue, err)
			}
		}
		properties[fieldName] = fieldSchema
		if field.Type.Kind() != reflect.Ptr && !tag.Omitempty && !hasDefault {
			required = append(required, fieldName)
		}
	}
	return properties, required, nil
}

func parseDefault(fieldSchema map[string]interface{}, value string) (interface{}, error) {
	switch fieldSchema["type"] {
	case "string":
		return value, nil
	case "boolean":
		return strconv.ParseBool(value)
	case "integer":
		return strconv.ParseInt(value, 10, 64)
	case "number":
		return strconv.ParseFloat(value, 64)
	}
	var ret interface{}
	err := json.Unmarshal([]byte(value), &ret)
	return ret, err
}

// Load populates input schema from a struct type
func (s *ToolInputSchema) Load(v any) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return fmt.Errorf("expected a struct type, got nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	properties, required, err := structToProperties(t)
	if err != nil {
		return err
	}
	s.Properties = properties
	s.Required = required
	s.Type = "object"
	return nil
}
