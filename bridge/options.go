package bridge

import (
	"context"
	"log/slog"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/client"
)

// Options represents bridge command line options
type Options struct {
	URL       string        `short:"u" long:"url" env:"UNREAL_SERVER_URL" description:"engine plugin url (default: http://localhost:8080)"`
	Timeout   time.Duration `short:"t" long:"timeout" env:"UNREAL_TIMEOUT" description:"engine request timeout (default: 30s)"`
	Token     string        `long:"token" env:"UNREAL_TOKEN" description:"bearer token sent to the engine plugin"`
	ConfigURL string        `short:"c" long:"config" env:"UNREAL_BRIDGE_CONFIG" description:"YAML config file, local path or afs URL"`
	HTTPAddr  string        `long:"http" description:"serve streamable HTTP on address instead of stdio"`
	Origins   []string      `long:"origin" description:"additional browser origin allowed on the HTTP transport"`
	LogLevel  string        `short:"l" long:"log-level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"stderr log level"`
}

// Config resolves engine connection settings: flags and env first, then the config file, then defaults
func (o *Options) Config(ctx context.Context) (*client.Config, error) {
	ret := &client.Config{URL: o.URL, Timeout: o.Timeout, Token: o.Token}
	if o.ConfigURL != "" {
		file, err := client.LoadConfig(ctx, o.ConfigURL)
		if err != nil {
			return nil, err
		}
		ret.Merge(file)
	}
	ret.Init()
	return ret, nil
}

// Level returns slog level
func (o *Options) Level() slog.Level {
	var ret slog.Level
	if err := ret.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return ret
}
