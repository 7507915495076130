package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Logger sends notifications/message to the connected client once it has set a logging level
type Logger struct {
	name     string
	mux      sync.RWMutex
	level    *schema.LoggingLevel
	notifier transport.Notifier
}

// SetLevel sets the minimum level forwarded to the client
func (l *Logger) SetLevel(level schema.LoggingLevel) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.level = &level
}

func (l *Logger) enabled(level schema.LoggingLevel) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	return l.notifier != nil && l.level != nil && l.level.Ordinal() <= level.Ordinal()
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if !l.enabled(level) {
		return nil
	}
	notification := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	if notification.Params, err = json.Marshal(params); err != nil {
		return err
	}
	return l.notifier.Notify(ctx, notification)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Err, data)
}

func NewLogger(name string, notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		notifier: notifier,
	}
}
