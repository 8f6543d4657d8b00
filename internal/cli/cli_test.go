package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/boltwire/exemplars/internal/errors"
)

var testBuild = BuildInfo{Version: "1.4.0", Commit: "abc1234", Date: "2026-10-14"}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr, testBuild)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// sandbox isolates config and returns a working dir and its docs root.
func sandbox(t *testing.T) (dir, root string) {
	t.Helper()
	t.Setenv("EXEMPLARS_HOME", t.TempDir())
	t.Setenv("EXEMPLARS_OUTPUT_ROOT", "")
	t.Setenv("EXEMPLARS_LOG_LEVEL", "")
	dir = t.TempDir()
	return dir, filepath.Join(dir, "docs", "exemplars")
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestNoArgsIsUsageError(t *testing.T) {
	dir, _ := sandbox(t)
	chdir(t, dir)

	res := run(t)
	if res.code != apperrors.ExitBadInput {
		t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitBadInput)
	}
	if !strings.Contains(res.stderr, "Usage: exemplars <manifest.json>") {
		t.Errorf("stderr = %q", res.stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "docs")); !os.IsNotExist(err) {
		t.Errorf("docs directory should not exist, stat err = %v", err)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	sandbox(t)

	res := run(t, "--bogus", "m.json")
	if res.code != apperrors.ExitBadInput {
		t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitBadInput)
	}
	if !strings.Contains(res.stderr, "unknown flag: --bogus") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestManifestErrors(t *testing.T) {
	dir, root := sandbox(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.json")},
		{"malformed", writeManifest(t, dir, "bad.json", `[{"title": `)},
		{"not an array", writeManifest(t, dir, "obj.json", `{"title": "x"}`)},
		{"null entry", writeManifest(t, dir, "null.json", `[null]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "--output-root", root, tt.path)
			if res.code != apperrors.ExitBadInput {
				t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitBadInput)
			}
			if !strings.Contains(res.stderr, "Failed to read or parse manifest:") {
				t.Errorf("stderr = %q", res.stderr)
			}
			if _, err := os.Stat(root); !os.IsNotExist(err) {
				t.Errorf("output root should not exist, stat err = %v", err)
			}
		})
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	dir, root := sandbox(t)
	path := writeManifest(t, dir, "exemplars-manifest.json", `[
  {"title":"Quickstart: Basic bind and resolve","slug":"quickstart-basic-bind","category":"quickstart","level":"beginner","author":"alice"},
  {"title":"My Cool/Example!!"}
]`)

	res := run(t, "--output-root", root, path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}

	for _, slug := range []string{"quickstart-basic-bind", "my-cool-example"} {
		exDir := filepath.Join(root, slug)
		entries, err := os.ReadDir(exDir)
		if err != nil {
			t.Fatalf("reading %s: %v", exDir, err)
		}
		if len(entries) != 3 {
			t.Errorf("%s has %d files, want 3", slug, len(entries))
		}
		if !strings.Contains(res.stdout, "Created exemplar: "+exDir+"\n") {
			t.Errorf("stdout missing created line for %s:\n%s", slug, res.stdout)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "quickstart-basic-bind", "metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	var meta struct {
		Slug   string   `json:"slug"`
		Author string   `json:"author"`
		Tags   []string `json:"tags"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("metadata.json: %v", err)
	}
	if meta.Slug != "quickstart-basic-bind" || meta.Author != "alice" || meta.Tags == nil || len(meta.Tags) != 0 {
		t.Errorf("metadata = %+v", meta)
	}

	if strings.Contains(res.stdout, "warning:") {
		t.Errorf("unexpected warnings:\n%s", res.stdout)
	}
	if !strings.HasSuffix(res.stdout, "Done. Review the generated folders under "+filepath.ToSlash(root)+"/\n") {
		t.Errorf("stdout missing completion line:\n%s", res.stdout)
	}
}

func TestGenerateDefaultRootUnderWorkingDir(t *testing.T) {
	dir, root := sandbox(t)
	path := writeManifest(t, dir, "m.json", `[{"title":"Hello"}]`)
	chdir(t, dir)

	res := run(t, path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "hello", "README.md")); err != nil {
		t.Errorf("expected README.md under default root: %v", err)
	}
	if !strings.HasSuffix(res.stdout, "Done. Review the generated folders under docs/exemplars/\n") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestGenerateEmptyOutputRootUsesDefault(t *testing.T) {
	dir, root := sandbox(t)
	path := writeManifest(t, dir, "m.json", `[{"title":"Hello"}]`)
	chdir(t, dir)

	res := run(t, "--output-root", "", path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "hello", "metadata.json")); err != nil {
		t.Errorf("expected metadata.json under default root: %v", err)
	}
	if !strings.HasSuffix(res.stdout, "Done. Review the generated folders under docs/exemplars/\n") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestGenerateIgnoresMixedCaseKeys(t *testing.T) {
	dir, root := sandbox(t)
	path := writeManifest(t, dir, "m.json", `[{"Title":"Upper Case Key","SLUG":"from-upper-slug"}]`)

	res := run(t, "--output-root", root, path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "from-upper-slug")); !os.IsNotExist(err) {
		t.Errorf("from-upper-slug should not exist, stat err = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "example", "metadata.json"))
	if err != nil {
		t.Fatalf("reading metadata.json: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Untitled Example"`) {
		t.Errorf("metadata.json = %s", data)
	}
}

func TestManifestNamedLikeSubcommand(t *testing.T) {
	dir, root := sandbox(t)
	writeManifest(t, dir, "version", `[{"title":"Shadowed"}]`)
	chdir(t, dir)

	res := run(t, "./version")
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "shadowed", "example.cs")); err != nil {
		t.Errorf("expected example.cs for ./version manifest: %v", err)
	}

	help := run(t, "--help")
	if !strings.Contains(help.stdout, "must be given as ./<name> or carry a .json suffix") {
		t.Errorf("help output missing subcommand path note:\n%s", help.stdout)
	}
}

func TestGenerateRootFromEnv(t *testing.T) {
	dir, _ := sandbox(t)
	envRoot := filepath.Join(dir, "site", "exemplars")
	t.Setenv("EXEMPLARS_OUTPUT_ROOT", envRoot)
	path := writeManifest(t, dir, "m.yaml", "- title: From YAML\n")

	res := run(t, path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(envRoot, "from-yaml", "example.cs")); err != nil {
		t.Errorf("expected example.cs under env root: %v", err)
	}
}

func TestGenerateFilesystemFailure(t *testing.T) {
	dir, _ := sandbox(t)
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}
	path := writeManifest(t, dir, "m.json", `[{"title":"x"}]`)

	res := run(t, "--output-root", filepath.Join(blocker, "exemplars"), path)
	if res.code != apperrors.ExitFailure {
		t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitFailure)
	}
	if !strings.HasPrefix(res.stderr, "Error: ") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestPlanWritesNothing(t *testing.T) {
	dir, root := sandbox(t)
	path := writeManifest(t, dir, "m.json", `[{"title":"Alpha"},{"title":"Beta"},{"title":"alpha"}]`)

	res := run(t, "plan", "--output-root", root, path)
	if res.code != apperrors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("plan created the output root, stat err = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), res.stdout)
	}
	if !strings.HasPrefix(lines[0], "alpha\t"+filepath.Join(root, "alpha")) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "(overwrites entry 1)") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "3 exemplar(s) under "+root {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestPlanWithoutManifest(t *testing.T) {
	sandbox(t)

	res := run(t, "plan")
	if res.code != apperrors.ExitBadInput {
		t.Errorf("exit code = %d, want %d", res.code, apperrors.ExitBadInput)
	}
	if !strings.Contains(res.stderr, "Usage: exemplars plan <manifest.json>") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestVersion(t *testing.T) {
	sandbox(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"version"}, "exemplars version v1.4.0 (commit: abc1234, built: 2026-10-14)\n"},
		{"short", []string{"version", "--short"}, "v1.4.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			if res.code != apperrors.ExitOK || res.stdout != tt.want {
				t.Errorf("code = %d stdout = %q, want %q", res.code, res.stdout, tt.want)
			}
		})
	}

	res := run(t, "version", "--json")
	var info map[string]string
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("version --json: %v\n%s", err, res.stdout)
	}
	if info["version"] != "v1.4.0" || info["commit"] != "abc1234" {
		t.Errorf("info = %v", info)
	}
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"2.0.0-rc.1", "v2.0.0-rc.1"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigSetGet(t *testing.T) {
	sandbox(t)

	res := run(t, "config", "set", "output_root", "site/exemplars")
	if res.code != apperrors.ExitOK || res.stdout != "Set output_root = site/exemplars\n" {
		t.Fatalf("set: code = %d stdout = %q stderr = %q", res.code, res.stdout, res.stderr)
	}

	res = run(t, "config", "get", "output_root")
	if res.code != apperrors.ExitOK || res.stdout != "site/exemplars\n" {
		t.Errorf("get: code = %d stdout = %q", res.code, res.stdout)
	}
}
