package server

import (
	"context"
	"errors"

	"github.com/BestDev/unreal-blueprint-mcp/internal/collection"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Server represents MCP protocol front end
type Server struct {
	info          schema.Implementation
	newOperations NewOperations

	instructions    *string
	protocolVersion string
	loggerName      string

	stdioServer
	httpServer
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(ctx context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{Server: s, activeContexts: collection.NewSyncMap[string, *activeContext]()}
	ret.Logger = NewLogger(s.loggerName, notifier)
	ret.operations, ret.err = s.newOperations(ctx, ret.Logger)
	return ret
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "unreal-blueprint-mcp",
			Version: "1.0.0",
		},
		loggerName:      "unreal-blueprint-mcp",
		protocolVersion: schema.LatestProtocolVersion,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.newOperations == nil {
		return nil, errors.New("no operations specified")
	}
	return s, nil
}
