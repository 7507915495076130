package schema

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/viant/jsonrpc"
)

// Reserved transport failure codes. They never overlap codes sent by the engine plugin;
// non-200 HTTP replies carry the HTTP status itself as the code.
const (
	ConnectionFailed  = -32001
	RequestTimeout    = -32002
	TransportFailure  = -32003
	InvalidResponse   = -32004
	RequestCancelled  = -32005
	MaxErrorBodyBytes = 512
)

// Kind classifies an error code.
type Kind int

const (
	KindApplication Kind = iota
	KindTransport
)

func (k Kind) String() string {
	if k == KindTransport {
		return "transport"
	}
	return "application"
}

// Classify returns the error kind of code.
func Classify(code int) Kind {
	switch {
	case code <= ConnectionFailed && code >= RequestCancelled:
		return KindTransport
	case code >= 100 && code <= 599:
		return KindTransport
	}
	return KindApplication
}

// IsTransport reports whether err is a transport error.
func IsTransport(err error) bool {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}
	return Classify(rpcErr.Code) == KindTransport
}

// HTTPStatus returns the HTTP status carried by err, or 0.
func HTTPStatus(err error) int {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) && rpcErr.Code >= 100 && rpcErr.Code <= 599 {
		return rpcErr.Code
	}
	return 0
}

// NewConnectionFailed creates a connection failure error
func NewConnectionFailed(err error) *jsonrpc.Error {
	return jsonrpc.NewError(ConnectionFailed, "Connection failed", err.Error())
}

// NewRequestTimeout creates a timeout error
func NewRequestTimeout(err error) *jsonrpc.Error {
	return jsonrpc.NewError(RequestTimeout, "Request timeout", err.Error())
}

// NewRequestCancelled creates a cancellation error
func NewRequestCancelled(err error) *jsonrpc.Error {
	return jsonrpc.NewError(RequestCancelled, "Request cancelled", err.Error())
}

// NewTransportFailure creates an unexpected transport error
func NewTransportFailure(err error) *jsonrpc.Error {
	return jsonrpc.NewError(TransportFailure, "Unexpected error: "+err.Error(), nil)
}

// NewInvalidResponse creates an error for a response that is not a valid JSON-RPC envelope
func NewInvalidResponse(reason string, body []byte) *jsonrpc.Error {
	return jsonrpc.NewError(InvalidResponse, "Invalid response: "+reason, Truncate(string(body), MaxErrorBodyBytes))
}

// NewHTTPError creates an error carrying a non-200 HTTP status as its code
func NewHTTPError(status int, body []byte) *jsonrpc.Error {
	message := strings.TrimSpace(Truncate(string(body), MaxErrorBodyBytes))
	if message == "" {
		message = http.StatusText(status)
	}
	return jsonrpc.NewError(status, message, nil)
}

// NewInvalidURI creates an invalid resource address error
func NewInvalidURI(err error) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
}

// SchemaError reports tool arguments that do not match the tool input schema.
type SchemaError struct {
	Tool       string
	Violations []string
}

func (e *SchemaError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("invalid arguments for tool %v", e.Tool)
	}
	return fmt.Sprintf("invalid arguments for tool %v: %v", e.Tool, strings.Join(e.Violations, "; "))
}

// RPCError converts the schema error to an invalid params error
func (e *SchemaError) RPCError() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, e.Error(), map[string]interface{}{"tool": e.Tool, "violations": e.Violations})
}

// NewUnknownTool creates a schema error for a tool absent from the registry
func NewUnknownTool(name string) *SchemaError {
	return &SchemaError{Tool: name, Violations: []string{"unknown tool: " + name}}
}

// Truncate shortens s to maxLen bytes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.ToValidUTF8(s[:maxLen], "")
	}
	return strings.ToValidUTF8(s[:maxLen-3], "") + "..."
}
