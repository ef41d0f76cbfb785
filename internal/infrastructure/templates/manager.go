package templates

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/SargeyWargey/documentation-generator-sub000/assets"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Manager discovers templates under the configured directory and
// renders slash commands from them. Parsed templates are cached per
// path and invalidated by modification time.
type Manager struct {
	dir       string
	outputDir string

	mu    sync.Mutex
	cache map[string]cachedTemplate
}

type cachedTemplate struct {
	tpl     domain.Template
	modTime time.Time
}

// NewManager builds a template manager rooted at cfg.TemplatesDir.
// Output paths for generated commands land under outputDir.
func NewManager(cfg domain.TemplateSettings, outputDir string) *Manager {
	return &Manager{
		dir:       cfg.TemplatesDir,
		outputDir: outputDir,
		cache:     make(map[string]cachedTemplate),
	}
}

// EnsureDefaults materializes the embedded starter template on first
// run so a fresh install has something to generate from.
func (m *Manager) EnsureDefaults() error {
	if err := filesystem.EnsureDirectory(m.dir, 0o755); err != nil {
		return fmt.Errorf("templates: ensure %s: %w", m.dir, err)
	}
	path := filepath.Join(m.dir, "project-readme.md")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, assets.DefaultReadmeTemplate, 0o644)
}

// List returns every parseable template in the directory, sorted by name.
func (m *Manager) List(ctx context.Context) ([]domain.Template, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("templates: read %s: %w", m.dir, err)
	}
	var out []domain.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		tpl, err := m.load(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			// Skip unparseable files; Get reports them precisely.
			continue
		}
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns the template whose frontmatter name (or filename stem)
// matches name.
func (m *Manager) Get(ctx context.Context, name string) (domain.Template, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return domain.Template{}, fmt.Errorf("templates: read %s: %w", m.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(m.dir, entry.Name())
		tpl, err := m.load(path)
		if err != nil {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".md")
		if tpl.Name == name || stem == name {
			return tpl, nil
		}
	}
	return domain.Template{}, fmt.Errorf("templates: %q not found in %s", name, m.dir)
}

// Generate implements ports.ContentGenerator. It renders the template
// body with the resolved variables and returns the command content
// plus placement hints. No filesystem writes happen here; preview
// relies on that.
func (m *Manager) Generate(ctx context.Context, gen domain.GenerationContext) (domain.GeneratedCommand, error) {
	vars := resolveVariables(gen.Template, gen.Variables)
	content, err := render(gen.Template.Name, gen.Template.Body, vars)
	if err != nil {
		return domain.GeneratedCommand{}, err
	}

	slug := slugify(gen.Template.Name)
	outputFile := gen.Template.OutputFile
	if outputFile == "" {
		outputFile = slug + "-output.md"
	} else {
		outputFile, err = render(gen.Template.Name+":output_file", outputFile, vars)
		if err != nil {
			return domain.GeneratedCommand{}, err
		}
	}

	version := gen.Template.Version
	if version == "" {
		version = "1"
	}
	return domain.GeneratedCommand{
		Content:    content,
		Filename:   slug + ".md",
		OutputPath: filepath.Join(m.outputDir, outputFile),
		Metadata: map[string]string{
			"version":  version,
			"template": gen.Template.Name,
		},
	}, nil
}

// load parses the template at path, reusing the cache entry while the
// file's modification time is unchanged.
func (m *Manager) load(path string) (domain.Template, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Template{}, err
	}
	m.mu.Lock()
	cached, ok := m.cache[path]
	m.mu.Unlock()
	if ok && cached.modTime.Equal(info.ModTime()) {
		return cached.tpl, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Template{}, err
	}
	tpl, err := ParseTemplate(raw)
	if err != nil {
		return domain.Template{}, err
	}
	m.mu.Lock()
	m.cache[path] = cachedTemplate{tpl: tpl, modTime: info.ModTime()}
	m.mu.Unlock()
	return tpl, nil
}

// resolveVariables layers provided values over declared defaults.
func resolveVariables(tpl domain.Template, provided map[string]string) map[string]string {
	vars := make(map[string]string, len(tpl.Variables)+len(provided))
	for _, v := range tpl.Variables {
		if v.Default != "" {
			vars[v.Name] = v.Default
		}
	}
	for name, value := range provided {
		vars[name] = value
	}
	return vars
}

func render(name, body string, vars map[string]string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(body)
	if err != nil {
		return "", fmt.Errorf("templates: parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("templates: render %s: %w", name, err)
	}
	return buf.String(), nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

var _ ports.ContentGenerator = (*Manager)(nil)
var _ ports.TemplateSource = (*Manager)(nil)
