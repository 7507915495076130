package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

type httpServer struct {
	streamableURI  string
	allowedOrigins []string
}

// HTTP returns a streamable HTTP server exposing the MCP endpoint
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = "127.0.0.1:5000"
	}
	if s.streamableURI == "" {
		s.streamableURI = "/mcp"
	}
	handler := streamable.New(s.NewHandler, streamable.WithURI(s.streamableURI))
	mux := http.NewServeMux()
	mux.Handle(s.streamableURI, chain(handler, localOrigin(s.allowedOrigins), protocolVersion(s.protocolVersion)))
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
