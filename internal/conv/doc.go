// Package conv converts JSON-RPC request ids and re-shapes plain values into MCP protocol types.
package conv
