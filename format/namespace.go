package format

import "strings"

// Namespace groups remote methods for display.
type Namespace int

const (
	Unknown Namespace = iota
	Core
	Resources
	Tools
	Prompts
)

var coreMethods = map[string]bool{
	"ping":          true,
	"getBlueprints": true,
	"getActors":     true,
}

var prefixes = []struct {
	prefix    string
	namespace Namespace
}{
	{"resources.", Resources},
	{"tools.", Tools},
	{"prompts.", Prompts},
}

// ParseNamespace returns the namespace of a remote method
func ParseNamespace(method string) Namespace {
	if coreMethods[method] {
		return Core
	}
	for _, candidate := range prefixes {
		if strings.HasPrefix(method, candidate.prefix) && len(method) > len(candidate.prefix) {
			return candidate.namespace
		}
	}
	return Unknown
}

func (n Namespace) String() string {
	switch n {
	case Core:
		return "core"
	case Resources:
		return "resources"
	case Tools:
		return "tools"
	case Prompts:
		return "prompts"
	}
	return "unknown"
}
