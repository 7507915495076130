package schema

type (
	// PromptArgument describes a prompt argument
	PromptArgument struct {
		Name        string `json:"name" yaml:"name"`
		Description string `json:"description,omitempty" yaml:"description,omitempty"`
		Required    bool   `json:"required" yaml:"required"`
	}

	// PromptDefinition describes a remote prompt
	PromptDefinition struct {
		Name        string           `json:"name" yaml:"name"`
		Description string           `json:"description" yaml:"description"`
		Arguments   []PromptArgument `json:"arguments" yaml:"arguments"`
	}
)

var prompts = []*PromptDefinition{
	{
		Name:        "blueprint_best_practices",
		Description: "Get Blueprint development best practices and guidelines",
		Arguments:   []PromptArgument{},
	},
	{
		Name:        "performance_tips",
		Description: "Get Blueprint performance optimization tips",
		Arguments:   []PromptArgument{},
	},
	{
		Name:        "node_reference",
		Description: "Get reference information for Blueprint nodes",
		Arguments: []PromptArgument{
			{Name: "node_type", Description: "Type of node to get information about"},
		},
	},
	{
		Name:        "troubleshooting",
		Description: "Get troubleshooting guide for common Blueprint issues",
		Arguments: []PromptArgument{
			{Name: "issue_type", Description: "Type of issue (compilation, runtime, performance)"},
		},
	},
}
