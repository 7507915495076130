// Package helper implements a command line companion that sends a single JSON-RPC call
// to the engine plugin and prints a human readable rendering of the reply.
package helper
