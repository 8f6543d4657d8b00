package scaffold

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/boltwire/exemplars/internal/manifest"
	"github.com/boltwire/exemplars/internal/slug"
)

// Defaults applied to descriptor fields that are missing or empty.
const (
	DefaultTitle    = "Untitled Example"
	DefaultCategory = "quickstart"
	DefaultLevel    = "beginner"
)

// DateLayout is the created_at format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Metadata is the normalized record written to metadata.json.
// Field order is the serialized key order.
type Metadata struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Category  string   `json:"category"`
	Level     string   `json:"level"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"created_at"`
	Tags      []string `json:"tags"`
}

// NewMetadata applies defaults to d and stamps it with the UTC date of now.
func NewMetadata(d manifest.Descriptor, now time.Time) Metadata {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return Metadata{
		Title:     orDefault(d.Title, DefaultTitle),
		Slug:      slug.Resolve(d.Slug, d.Title),
		Category:  orDefault(d.Category, DefaultCategory),
		Level:     orDefault(d.Level, DefaultLevel),
		Author:    d.Author,
		CreatedAt: now.UTC().Format(DateLayout),
		Tags:      tags,
	}
}

// Marshal renders m as two-space indented JSON without a trailing newline.
// HTML characters are written as-is.
func (m Metadata) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
