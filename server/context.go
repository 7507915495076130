package server

import (
	"context"
	"encoding/json"

	"github.com/BestDev/unreal-blueprint-mcp/internal/conv"
	"github.com/viant/jsonrpc"
)

// activeContext tracks an in-flight request so that notifications/cancelled can abort it
type activeContext struct {
	context.Context
	context.CancelFunc
}

type cancelledParams struct {
	RequestId json.RawMessage `json:"requestId"`
	Reason    string          `json:"reason,omitempty"`
}

// track registers a cancellable context under key; done releases it, removing only this entry
func (h *Handler) track(parent context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	active := &activeContext{Context: ctx, CancelFunc: cancel}
	h.activeContexts.Put(key, active)
	return ctx, func() {
		h.activeContexts.TakeIf(key, func(candidate *activeContext) bool {
			return candidate == active
		})
		cancel()
	}
}

func (h *Handler) cancelOperation(key string) {
	if active, ok := h.activeContexts.Take(key); ok {
		active.CancelFunc()
	}
}

// cancelRequest aborts the in-flight request named by notifications/cancelled params;
// unknown or finished requests are ignored
func (h *Handler) cancelRequest(params []byte) *jsonrpc.Error {
	cancelled := &cancelledParams{}
	if err := unmarshalParams(params, cancelled); err != nil {
		return err
	}
	if len(cancelled.RequestId) == 0 {
		return jsonrpc.NewInvalidParamsError("missing requestId", params)
	}
	h.cancelOperation(conv.RequestKey(cancelled.RequestId))
	return nil
}
