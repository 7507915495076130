package schema

import "fmt"

// ResourceMimeType is the MIME type of every engine resource.
const ResourceMimeType = "application/json"

// ResourceItem is a single entry returned by the resource listing endpoint.
type ResourceItem struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ResourceList is the resource listing endpoint payload.
type ResourceList struct {
	Resources []*ResourceItem `json:"resources"`
}

// DefaultResourceDescription returns the description used when the engine sends none.
func DefaultResourceDescription(resourceType string) string {
	return fmt.Sprintf("Unreal %v resource", resourceType)
}
