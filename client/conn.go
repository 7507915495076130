package client

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/viant/jsonrpc"
)

func transportError(err error) *jsonrpc.Error {
	switch {
	case errors.Is(err, context.Canceled):
		return schema.NewRequestCancelled(err)
	case isTimeout(err):
		return schema.NewRequestTimeout(err)
	case IsConnectionError(err):
		return schema.NewConnectionFailed(err)
	}
	return schema.NewTransportFailure(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsConnectionError reports whether err means the engine plugin is unreachable.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	message := err.Error()
	return strings.Contains(message, "connection refused") || strings.Contains(message, "no such host")
}
