package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/boltwire/exemplars/internal/branding"
	"github.com/boltwire/exemplars/internal/manifest"
)

// Generated file names, in write order.
const (
	MetadataFile = "metadata.json"
	ReadmeFile   = "README.md"
	ExampleFile  = "example.cs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// TemplateData holds the variables available to README and example templates.
type TemplateData struct {
	Metadata
	ProductName string // e.g., "BoltWire"
	Namespace   string // e.g., "BoltWire.Examples"
}

// Result holds the outcome of generating one exemplar.
type Result struct {
	Slug      string
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generator writes exemplar folders under a fixed root directory.
type Generator struct {
	root   string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger for per-file debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator rooted at root.
func NewGenerator(root string, opts ...Option) *Generator {
	g := &Generator{
		root:   root,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Root returns the documentation root the generator writes under.
func (g *Generator) Root() string {
	return g.root
}

// EnsureRoot creates the documentation root if it does not exist.
func (g *Generator) EnsureRoot() error {
	if err := os.MkdirAll(g.root, 0755); err != nil {
		return fmt.Errorf("creating output root %s: %w", g.root, err)
	}
	return nil
}

// Generate writes metadata.json, README.md and example.cs for d into
// <root>/<slug>. Existing files are overwritten. The first filesystem error
// aborts generation and leaves whatever was already written in place.
func (g *Generator) Generate(d manifest.Descriptor) (*Result, error) {
	meta := NewMetadata(d, g.now())
	outDir := filepath.Join(g.root, meta.Slug)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating exemplar directory %s: %w", outDir, err)
	}

	result := &Result{
		Slug:      meta.Slug,
		OutputDir: outDir,
	}

	metaBytes, err := meta.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", MetadataFile, err)
	}
	if err := g.write(outDir, MetadataFile, metaBytes); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, MetadataFile)

	data := TemplateData{
		Metadata:    meta,
		ProductName: branding.ProductName(),
		Namespace:   branding.SampleNamespace(),
	}

	var readme []byte
	for _, name := range []string{ReadmeFile, ExampleFile} {
		content, err := render(name, data)
		if err != nil {
			return nil, err
		}
		if err := g.write(outDir, name, content); err != nil {
			return nil, err
		}
		if name == ReadmeFile {
			readme = content
		}
		result.Files = append(result.Files, name)
	}

	result.Warnings = append(result.Warnings, checkMetadata(filepath.Join(outDir, MetadataFile))...)
	result.Warnings = append(result.Warnings, checkReadme(readme, meta.Title)...)

	g.logger.Debug("exemplar generated",
		slog.String("slug", meta.Slug),
		slog.String("dir", outDir),
		slog.Int("warnings", len(result.Warnings)))

	return result, nil
}

// render executes the embedded template for an output file name.
func render(name string, data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) write(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.logger.Debug("wrote file", slog.String("path", path), slog.Int("bytes", len(content)))
	return nil
}
