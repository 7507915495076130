package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ValidateArguments checks tool arguments against the compiled tool input schema.
// Undeclared arguments are passed through untouched.
func (r *Registry) ValidateArguments(name string, args map[string]interface{}) *SchemaError {
	compiled, ok := r.compiled[name]
	if !ok {
		return NewUnknownTool(name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	instance, err := asInstance(args)
	if err != nil {
		return &SchemaError{Tool: name, Violations: []string{err.Error()}}
	}
	if err = compiled.Validate(instance); err != nil {
		return &SchemaError{Tool: name, Violations: violations(err)}
	}
	return nil
}

func compileSchema(location string, schema interface{}) (*jsonschema.Schema, error) {
	document, err := asInstance(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(location, document); err != nil {
		return nil, err
	}
	return compiler.Compile(location)
}

func schemaLocation(elements ...string) string {
	for i, element := range elements {
		elements[i] = url.PathEscape(element)
	}
	return "file:///tools/" + strings.Join(elements, "/") + ".json"
}

// asInstance re-decodes v the way the validator expects JSON values
func asInstance(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

func violations(err error) []string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []string{err.Error()}
	}
	var ret []string
	collectViolations(validationErr, &ret)
	return ret
}

func collectViolations(err *jsonschema.ValidationError, ret *[]string) {
	if len(err.Causes) == 0 {
		location := "arguments"
		if len(err.InstanceLocation) > 0 {
			location = "property /" + strings.Join(err.InstanceLocation, "/")
		}
		*ret = append(*ret, fmt.Sprintf("%v: %v", location, err.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, ret)
	}
}
