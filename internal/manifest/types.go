package manifest

// Descriptor is one manifest entry. Every field is optional; defaults are
// applied when the exemplar is materialized.
type Descriptor struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Slug     string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Level    string   `json:"level,omitempty" yaml:"level,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Manifest formats, detected from the file extension.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
