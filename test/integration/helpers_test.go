//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/boltwire/exemplars/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // EXEMPLARS_HOME, holds config.yaml
	WorkDir string // invocation directory; docs/exemplars lands here
}

// setupTestEnv creates isolated temp directories, points EXEMPLARS_HOME at
// one of them and changes into the other for the duration of the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("EXEMPLARS_HOME", env.HomeDir)
	t.Setenv("EXEMPLARS_OUTPUT_ROOT", "")
	t.Setenv("EXEMPLARS_LOG_LEVEL", "")
	chdir(t, env.WorkDir)
	return env
}

func (e *testEnv) docsRoot() string {
	return filepath.Join(e.WorkDir, "docs", "exemplars")
}

// runCLI invokes the command tree in-process.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = cli.Run(args, &out, &errOut, cli.BuildInfo{Version: "dev", Commit: "test", Date: "today"})
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// listTree returns every file under root as a sorted slash-separated relative path.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}
