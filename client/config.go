package client

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config represents engine plugin connection settings
type Config struct {
	URL     string        `yaml:"url,omitempty" json:"url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Token   string        `yaml:"token,omitempty" json:"token,omitempty"`
}

// Init sets defaults for unset fields
func (c *Config) Init() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Merge fills unset fields from other
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.URL == "" {
		c.URL = other.URL
	}
	if c.Timeout == 0 {
		c.Timeout = other.Timeout
	}
	if c.Token == "" {
		c.Token = other.Token
	}
}

// Options returns client options
func (c *Config) Options() []Option {
	ret := []Option{WithTimeout(c.Timeout)}
	if c.Token != "" {
		ret = append(ret, WithBearerToken(c.Token))
	}
	return ret
}

// LoadConfig loads YAML config from any afs supported URL
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &Config{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}
