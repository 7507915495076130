package schema

type (
	// CreateBlueprintInput represents create_blueprint arguments
	CreateBlueprintInput struct {
		Name        string `json:"name" description:"Blueprint class name"`
		ParentClass string `json:"parent_class,omitempty" description:"Parent class (e.g., Actor, Pawn, Character)" default:"Actor"`
		Path        string `json:"path,omitempty" description:"Content path for the Blueprint" default:"/Game/Blueprints/"`
	}

	// AddVariableInput represents add_variable arguments
	AddVariableInput struct {
		BlueprintPath string `json:"blueprint_path" description:"Path to the Blueprint asset"`
		VariableName  string `json:"variable_name" description:"Name of the variable"`
		VariableType  string `json:"variable_type" description:"Type of the variable (e.g., int, float, string, bool)"`
		DefaultValue  string `json:"default_value,omitempty" description:"Default value for the variable" default:""`
		IsPublic      bool   `json:"is_public,omitempty" description:"Whether the variable is public" default:"false"`
	}

	// FunctionParameter represents a Blueprint function parameter
	FunctionParameter struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	// AddFunctionInput represents add_function arguments
	AddFunctionInput struct {
		BlueprintPath string              `json:"blueprint_path" description:"Path to the Blueprint asset"`
		FunctionName  string              `json:"function_name" description:"Name of the function"`
		ReturnType    string              `json:"return_type,omitempty" description:"Return type (optional)" default:"void"`
		Parameters    []FunctionParameter `json:"parameters,omitempty" description:"Function parameters" default:"[]"`
	}

	// Position represents a graph node position
	Position struct {
		X float64 `json:"x,omitempty"`
		Y float64 `json:"y,omitempty"`
	}

	// GraphNode represents a node added to a Blueprint graph
	GraphNode struct {
		Type       string                 `json:"type"`
		ID         string                 `json:"id"`
		Position   *Position              `json:"position,omitempty"`
		Properties map[string]interface{} `json:"properties,omitempty"`
	}

	// GraphConnection connects two node pins
	GraphConnection struct {
		FromNode string `json:"from_node"`
		FromPin  string `json:"from_pin"`
		ToNode   string `json:"to_node"`
		ToPin    string `json:"to_pin"`
	}

	// EditGraphInput represents edit_graph arguments
	EditGraphInput struct {
		BlueprintPath string            `json:"blueprint_path" description:"Path to the Blueprint asset"`
		GraphType     string            `json:"graph_type,omitempty" description:"Type of graph (Event, Function, Macro)" enum:"Event,Function,Macro" default:"Event"`
		Nodes         []GraphNode       `json:"nodes" description:"Nodes to add to the graph"`
		Connections   []GraphConnection `json:"connections,omitempty" description:"Connections between nodes"`
	}

	// ListAssetsInput represents list_assets arguments
	ListAssetsInput struct {
		Path      string `json:"path,omitempty" description:"Content path to search" default:"/Game/"`
		AssetType string `json:"asset_type,omitempty" description:"Filter by asset type (Blueprint, StaticMesh, Material, etc.)" default:""`
	}

	// GetAssetInput represents get_asset arguments
	GetAssetInput struct {
		AssetPath string `json:"asset_path" description:"Full path to the asset"`
	}

	// CreateAssetInput represents create_asset arguments
	CreateAssetInput struct {
		AssetType  string                 `json:"asset_type" description:"Type of asset to create"`
		AssetName  string                 `json:"asset_name" description:"Name for the new asset"`
		AssetPath  string                 `json:"asset_path,omitempty" description:"Path where to create the asset" default:"/Game/"`
		Properties map[string]interface{} `json:"properties,omitempty" description:"Asset-specific properties" default:"{}"`
	}
)

// ToolDefinition describes a remote tool.
type ToolDefinition struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	InputSchema ToolInputSchema `json:"inputSchema" yaml:"inputSchema"`
}

// NewToolDefinition creates a tool definition with input schema derived from input struct
func NewToolDefinition(name, description string, input any) (*ToolDefinition, error) {
	ret := &ToolDefinition{Name: name, Description: description}
	if err := ret.InputSchema.Load(input); err != nil {
		return nil, err
	}
	return ret, nil
}

var tools = []struct {
	name        string
	description string
	input       any
}{
	{"create_blueprint", "Create a new Blueprint class in Unreal Engine", &CreateBlueprintInput{}},
	{"add_variable", "Add a variable to a Blueprint", &AddVariableInput{}},
	{"add_function", "Add a function to a Blueprint", &AddFunctionInput{}},
	{"edit_graph", "Edit Blueprint graph with nodes and connections", &EditGraphInput{}},
	{"list_assets", "List assets in Unreal Engine content browser", &ListAssetsInput{}},
	{"get_asset", "Get detailed information about a specific asset", &GetAssetInput{}},
	{"create_asset", "Create a new asset in Unreal Engine", &CreateAssetInput{}},
}
