package client_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	location := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(location, []byte("url: http://engine:9090\ntimeout: 5s\n"), 0o644))

	config, err := client.LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "http://engine:9090", config.URL)
	assert.Equal(t, 5*time.Second, config.Timeout)

	_, err = client.LoadConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_MergeInit(t *testing.T) {
	config := &client.Config{Token: "flag-token"}
	config.Merge(&client.Config{URL: "http://file:1", Token: "file-token"})
	config.Init()
	assert.Equal(t, "http://file:1", config.URL)
	assert.Equal(t, "flag-token", config.Token)
	assert.Equal(t, client.DefaultTimeout, config.Timeout)
	assert.Len(t, config.Options(), 2)
}
