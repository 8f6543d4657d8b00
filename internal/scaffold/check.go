package scaffold

import (
	"fmt"
	"strings"

	"github.com/boltwire/exemplars/internal/manifest"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeSections are the level-2 headings every generated README carries.
var readmeSections = []string{"Setup", "Example", "Run"}

// checkMetadata validates a written metadata.json against the embedded schema.
func checkMetadata(path string) []string {
	res, err := manifest.ValidateMetadataFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", MetadataFile, err)}
	}
	if res.Valid {
		return nil
	}
	warnings := make([]string, 0, len(res.Issues))
	for _, issue := range res.Issues {
		warnings = append(warnings, MetadataFile+": "+issue.String())
	}
	return warnings
}

// checkReadme parses a README and reports a missing title heading or
// missing sections.
func checkReadme(source []byte, title string) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var titles []string
	sections := make(map[string]bool)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		switch h.Level {
		case 1:
			titles = append(titles, headingText(h, source))
		case 2:
			sections[headingText(h, source)] = true
		}
		return gmast.WalkSkipChildren, nil
	})

	var warnings []string
	want := strings.TrimSpace(title)
	switch {
	case len(titles) == 0:
		warnings = append(warnings, ReadmeFile+": missing title heading")
	case titles[0] != want:
		warnings = append(warnings, fmt.Sprintf("%s: title heading %q does not match %q", ReadmeFile, titles[0], want))
	}
	for _, s := range readmeSections {
		if !sections[s] {
			warnings = append(warnings, fmt.Sprintf("%s: missing %q section", ReadmeFile, s))
		}
	}
	return warnings
}

// headingText concatenates the literal text below a heading node.
func headingText(h *gmast.Heading, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(h, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
		case *gmast.String:
			b.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
