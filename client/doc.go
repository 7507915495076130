// Package client implements the outbound side of the bridge: a JSON-RPC 2.0 over HTTP
// client for the engine plugin plus plain REST helpers for its /api sub-paths.
//
// Every failure is normalized to a *jsonrpc.Error. Non-200 replies carry the HTTP status
// as the error code; connection, timeout, cancellation and malformed replies use the
// reserved codes defined in the schema package. Calls are never retried.
//
// Example:
//
//	cli := client.New("http://localhost:8080", client.WithTimeout(10*time.Second))
//	defer cli.Close()
//	response := cli.Invoke(ctx, "ping", nil)
package client
