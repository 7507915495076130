package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

type stdioServer struct {
	stdioServerOption []stdio.Option
	stdin             io.Reader
}

// stdioSession holds the handler of the single stdio connection
type stdioSession struct {
	mux     sync.RWMutex
	handler *Handler
}

func (s *stdioSession) set(handler *Handler) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.handler = handler
}

func (s *stdioSession) cancel(requestID json.RawMessage) {
	s.mux.RLock()
	handler := s.handler
	s.mux.RUnlock()
	if handler != nil {
		handler.cancelOperation(conv.RequestKey(requestID))
	}
}

// Stdio returns a server speaking MCP over standard input and output.
// The stdio transport handles one line at a time, so cancellations are taken off
// the input stream before the line reaches the transport.
func (s *Server) Stdio(ctx context.Context) *stdio.Server {
	session := &stdioSession{}
	input := s.stdin
	if input == nil {
		input = os.Stdin
	}
	options := append([]stdio.Option{stdio.WithReader(newCancelFilter(input, session.cancel))}, s.stdioServerOption...)
	return stdio.New(ctx, func(ctx context.Context, transport transport.Transport) transport.Handler {
		handler := s.newHandler(ctx, transport)
		session.set(handler)
		return handler
	}, options...)
}

// newCancelFilter copies source line by line, calling cancel for every notifications/cancelled
// line as soon as it is read, independently of how fast the copy is consumed
func newCancelFilter(source io.Reader, cancel func(requestID json.RawMessage)) io.Reader {
	reader, writer := io.Pipe()
	go func() {
		lines := bufio.NewReader(source)
		for {
			line, err := lines.ReadBytes('\n')
			if len(line) > 0 {
				if requestID, ok := cancelledRequest(line); ok {
					cancel(requestID)
				}
				if _, writeErr := writer.Write(line); writeErr != nil {
					return
				}
			}
			if err != nil {
				_ = writer.CloseWithError(err)
				return
			}
		}
	}()
	return reader
}

func cancelledRequest(line []byte) (json.RawMessage, bool) {
	if !bytes.Contains(line, []byte(schema.MethodNotificationCanceled)) {
		return nil, false
	}
	notification := &struct {
		Method string          `json:"method"`
		Params cancelledParams `json:"params"`
	}{}
	if err := json.Unmarshal(line, notification); err != nil {
		return nil, false
	}
	if notification.Method != schema.MethodNotificationCanceled || len(notification.Params.RequestId) == 0 {
		return nil, false
	}
	return notification.Params.RequestId, true
}
