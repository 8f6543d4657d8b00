package scaffold

import (
	"path/filepath"

	"github.com/boltwire/exemplars/internal/manifest"
	"github.com/boltwire/exemplars/internal/slug"
)

// Target is where one descriptor will be materialized.
type Target struct {
	Index      int    // Position in the manifest
	Slug       string // Resolved slug
	OutputDir  string // <root>/<slug>
	Overwrites int    // Index of an earlier descriptor with the same slug, or -1
}

// Plan resolves the output directory of every descriptor without touching
// the filesystem.
func Plan(root string, descriptors []manifest.Descriptor) []Target {
	seen := make(map[string]int, len(descriptors))
	targets := make([]Target, 0, len(descriptors))
	for i, d := range descriptors {
		s := slug.Resolve(d.Slug, d.Title)
		t := Target{
			Index:      i,
			Slug:       s,
			OutputDir:  filepath.Join(root, s),
			Overwrites: -1,
		}
		if prev, ok := seen[s]; ok {
			t.Overwrites = prev
		}
		seen[s] = i
		targets = append(targets, t)
	}
	return targets
}
