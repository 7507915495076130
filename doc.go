// Package unrealmcp exposes a running Unreal Engine editor to Model Context Protocol clients.
//
// The module is organized as a set of packages:
//  1. bridge – translates MCP resources, tools and prompts into calls against the engine plugin
//     (binary: bridge/unreal-mcp),
//  2. server – MCP front end serving stdio or streamable HTTP,
//  3. client – JSON-RPC and REST client of the engine plugin,
//  4. schema – tool and prompt catalog, remote methods and error codes,
//  5. uri – unreal://{type}/{name} resource addresses,
//  6. format and helper – the command line companion (binary: helper/unreal-helper).
//
// Example:
//
//	unreal-mcp --url http://localhost:8080 --timeout 30s
//	unreal-helper tools.create_blueprint '{"name":"BP_Door"}'
package unrealmcp
