// Package format renders engine plugin JSON-RPC responses as human readable text for the
// interactive helper. Methods are grouped into a closed set of namespaces; anything not
// recognized falls back to an indented JSON dump.
package format
