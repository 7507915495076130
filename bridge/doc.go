// Package bridge translates MCP operations into calls against the Unreal Engine
// Blueprint plugin.
//
// Listings favour availability: a failed resource listing yields an empty list. A
// failed resource read is returned to the caller as an error. Tool and prompt failures
// are reported as text content so that the calling agent can read them.
// Tool calls are gated by the schema registry: unknown tools and structurally invalid
// arguments are rejected before anything is sent to the engine.
package bridge
