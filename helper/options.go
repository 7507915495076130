package helper

import (
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/client"
)

// Options represents helper command line options
type Options struct {
	Server      string        `short:"s" long:"server" env:"UNREAL_SERVER_URL" description:"engine plugin url (default: http://localhost:8080)"`
	Timeout     time.Duration `short:"t" long:"timeout" description:"request timeout (default: 30s)"`
	ListMethods bool          `short:"l" long:"list-methods" description:"list available methods and exit"`
	Raw         bool          `short:"r" long:"raw" description:"print the raw JSON-RPC response"`
	Args        struct {
		Method string `positional-arg-name:"METHOD" description:"JSON-RPC method to call"`
		Params string `positional-arg-name:"PARAMS_JSON" description:"JSON parameters for the method"`
	} `positional-args:"yes"`
}

// Init sets defaults for unset options
func (o *Options) Init() {
	if o.Server == "" {
		o.Server = client.DefaultURL
	}
	if o.Timeout <= 0 {
		o.Timeout = client.DefaultTimeout
	}
}
