// Package server exposes bridge Operations as an MCP server.
//
// It dispatches MCP JSON-RPC methods (initialize, ping, resources, tools, prompts,
// logging/setLevel) to an Operations implementation created per client connection,
// cancels in-flight requests on notifications/cancelled, and forwards log messages to
// clients that asked for them. Transports: stdio and streamable HTTP.
//
//	srv, _ := server.New(server.WithNewOperations(newOperations))
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package server
