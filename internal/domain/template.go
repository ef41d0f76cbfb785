package domain

// Template describes a documentation template: identity, the expected
// output artifact, and the variable schema its body consumes.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// OutputFile is the filename (under the output directory) Claude
	// is instructed to produce. May reference template variables.
	OutputFile string             `yaml:"output_file"`
	Version    string             `yaml:"version"`
	Variables  []TemplateVariable `yaml:"variables"`
	// Body is the markdown below the frontmatter fence.
	Body string `yaml:"-"`
}

// TemplateVariable declares a substitution slot in a template body.
type TemplateVariable struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

// GenerationContext carries everything needed to render one command.
type GenerationContext struct {
	Template  Template
	Variables map[string]string
}

// GeneratedCommand is the content generator's product: the rendered
// command text plus placement hints for the hand-off layer.
type GeneratedCommand struct {
	Content string
	// Filename is the suggested command filename; the path allocator
	// disambiguates collisions with numeric suffixes.
	Filename string
	// OutputPath is where the output artifact is expected to appear.
	OutputPath string
	Metadata   map[string]string
}
