package server

import (
	"io"

	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		s.instructions = &instructions
		return nil
	}
}

// WithNewOperations sets the operations factory.
func WithNewOperations(newOperations NewOperations) Option {
	return func(s *Server) error {
		s.newOperations = newOperations
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithStdioOptions sets stdio transport options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}

// WithStdin sets the stdio transport input, os.Stdin by default.
func WithStdin(input io.Reader) Option {
	return func(s *Server) error {
		s.stdin = input
		return nil
	}
}

// WithStreamableURI sets the streamable HTTP endpoint path.
func WithStreamableURI(URI string) Option {
	return func(s *Server) error {
		s.streamableURI = URI
		return nil
	}
}

// WithAllowedOrigins allows browser origins other than loopback on the HTTP transport.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = append(s.allowedOrigins, origins...)
		return nil
	}
}
