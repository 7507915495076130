package schema

// REST paths exposed by the engine plugin.
const (
	PathResources = "/api/resources"
	PathTools     = "/api/tools"
	PathPrompts   = "/api/prompts"
)

// JSON-RPC methods exposed by the engine plugin.
const (
	MethodPing          = "ping"
	MethodGetBlueprints = "getBlueprints"
	MethodGetActors     = "getActors"

	MethodResourcesList   = "resources.list"
	MethodResourcesGet    = "resources.get"
	MethodResourcesCreate = "resources.create"

	MethodToolsCreateBlueprint = "tools.create_blueprint"
	MethodToolsAddVariable     = "tools.add_variable"
	MethodToolsAddFunction     = "tools.add_function"
	MethodToolsEditGraph       = "tools.edit_graph"

	MethodPromptsList = "prompts.list"
	MethodPromptsGet  = "prompts.get"
)

// Methods lists remote JSON-RPC methods with a short description.
var Methods = []struct {
	Name        string
	Description string
}{
	{MethodPing, "check server connectivity"},
	{MethodGetBlueprints, "list Blueprints in the project"},
	{MethodGetActors, "list Actors in the current level"},
	{MethodResourcesList, "list resources, params: {\"type\": \"Blueprint\"}"},
	{MethodResourcesGet, "get resource details, params: {\"type\": \"Blueprint\", \"name\": \"BP_Player\"}"},
	{MethodResourcesCreate, "create an asset, params: {\"type\": \"Blueprint\", \"name\": \"BP_New\"}"},
	{MethodToolsCreateBlueprint, "create a Blueprint, params: {\"name\": \"BP_New\", \"parent_class\": \"Actor\"}"},
	{MethodToolsAddVariable, "add a variable, params: {\"blueprint_path\": \"...\", \"variable_name\": \"Health\", \"variable_type\": \"float\"}"},
	{MethodToolsAddFunction, "add a function, params: {\"blueprint_path\": \"...\", \"function_name\": \"Heal\"}"},
	{MethodToolsEditGraph, "edit a graph, params: {\"blueprint_path\": \"...\", \"nodes\": []}"},
	{MethodPromptsList, "list prompts"},
	{MethodPromptsGet, "get a prompt, params: {\"name\": \"blueprint_best_practices\"}"},
}

// ResourcePath returns the REST path of a single resource.
func ResourcePath(resourceType, name string) string {
	return PathResources + "/" + resourceType + "/" + name
}

// PromptPath returns the REST path of a single prompt.
func PromptPath(name string) string {
	return PathPrompts + "/" + name
}
