// Package templates loads documentation templates from disk and
// renders slash commands from them. It implements the content
// generation collaborator consumed by the executor.
package templates

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
)

var (
	// ErrMissingFrontMatter indicates the template did not start with a YAML fence.
	ErrMissingFrontMatter = errors.New("templates: missing frontmatter")
	// ErrMalformedFrontMatter indicates the YAML fence was never closed.
	ErrMalformedFrontMatter = errors.New("templates: malformed frontmatter")
)

// ParseTemplate splits the YAML frontmatter from the markdown body of
// a template document delimited by `---` fences.
func ParseTemplate(raw []byte) (domain.Template, error) {
	normalized := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return domain.Template{}, ErrMissingFrontMatter
	}
	parts := bytes.SplitN(normalized[4:], []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return domain.Template{}, ErrMalformedFrontMatter
	}
	var tpl domain.Template
	if err := yaml.Unmarshal(parts[0], &tpl); err != nil {
		return domain.Template{}, fmt.Errorf("templates: parse frontmatter: %w", err)
	}
	if tpl.Name == "" {
		return domain.Template{}, fmt.Errorf("templates: frontmatter missing name")
	}
	tpl.Body = string(bytes.TrimLeft(parts[1], "\n"))
	return tpl, nil
}
