// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. The product name and sample namespace also feed
// the generated example sources.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	ProductName     string `yaml:"product_name"`
	SampleNamespace string `yaml:"sample_namespace"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "exemplars",
			DisplayName:     "Exemplars",
			Description:     "Documentation exemplar scaffolder",
			HomeDir:         ".exemplars",
			EnvPrefix:       "EXEMPLARS",
			ProductName:     "BoltWire",
			SampleNamespace: "BoltWire.Examples",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "exemplars").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable tool name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short tool description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".exemplars").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "EXEMPLARS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProductName returns the name of the library the exemplars document.
func ProductName() string { load(); return defaults.ProductName }

// SampleNamespace returns the namespace used by generated example sources.
func SampleNamespace() string { load(); return defaults.SampleNamespace }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "EXEMPLARS_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
