// Package config handles loading and merging of sf-preflight settings files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/Avinava/sf-preflight/internal/derrors"
)

// SupportedConfigNames contains supported settings file names (in order of
// preference)
var SupportedConfigNames = []string{
	".sf-preflight.yml",
	".sf-preflight.yaml",
	".sf-preflight.toml",
	".sf-preflight.json",
}

// GlobalConfigName is the name of the global settings file
const GlobalConfigName = "global.yml"

// defaultSettings is the built-in baseline every load starts from
const defaultSettings = `
check_on_startup: true
status_line: true
freshness_hours: 24
node:
  min_major: 18
java:
  min_major: 11
required_plugins:
  - sfdx-git-delta
required_packages:
  - prettier
  - prettier-plugin-apex
  - sfdx-cli
provision:
  run_on_startup: true
  prettier: true
  editorconfig: true
  gitignore: true
  vscode_settings: true
  spell_checker: true
`

// RuntimeSettings holds the version floor for one runtime
type RuntimeSettings struct {
	MinMajor int `koanf:"min_major"`
}

// ProvisionSettings gates the provisioning orchestrator and its provisioners
type ProvisionSettings struct {
	RunOnStartup   bool `koanf:"run_on_startup" yaml:"run_on_startup"`
	Prettier       bool `koanf:"prettier" yaml:"prettier"`
	EditorConfig   bool `koanf:"editorconfig" yaml:"editorconfig"`
	GitIgnore      bool `koanf:"gitignore" yaml:"gitignore"`
	VSCodeSettings bool `koanf:"vscode_settings" yaml:"vscode_settings"`
	SpellChecker   bool `koanf:"spell_checker" yaml:"spell_checker"`
	// Templates overrides a provisioner's built-in default content, keyed by
	// template kind (prettier, prettierignore, editorconfig, gitignore,
	// vscode_settings, cspell, cspell_dictionary).
	Templates map[string]string `koanf:"templates" yaml:"templates,omitempty"`
}

// Settings is the effective sf-preflight configuration
type Settings struct {
	CheckOnStartup   bool              `koanf:"check_on_startup"`
	StatusLine       bool              `koanf:"status_line"`
	FreshnessHours   int               `koanf:"freshness_hours"`
	Node             RuntimeSettings   `koanf:"node"`
	Java             RuntimeSettings   `koanf:"java"`
	RequiredPlugins  []string          `koanf:"required_plugins"`
	RequiredPackages []string          `koanf:"required_packages"`
	Provision        ProvisionSettings `koanf:"provision"`
}

// Default returns the built-in settings
func Default() *Settings {
	s, err := load(nil)
	if err != nil {
		// The embedded defaults are constant; a parse failure here is a
		// programming error.
		panic(err)
	}
	return s
}

// GlobalConfigPath returns the global settings file location
func GlobalConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sf-preflight", GlobalConfigName), nil
}

// FindLocalConfig returns the first settings file found across workspace
// roots, or "" when none exists
func FindLocalConfig(roots []string) string {
	for _, root := range roots {
		for _, name := range SupportedConfigNames {
			path := filepath.Join(root, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Load merges built-in defaults, the global settings file, and the first
// local settings file found across workspace roots, in that order
func Load(roots []string) (*Settings, error) {
	var paths []string

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			paths = append(paths, globalPath)
		}
	}

	if localPath := FindLocalConfig(roots); localPath != "" {
		paths = append(paths, localPath)
	}

	return load(paths)
}

// LoadFile merges built-in defaults with a single settings file
func LoadFile(path string) (*Settings, error) {
	return load([]string{path})
}

func load(paths []string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultSettings)), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("", "failed to load default settings", err)
	}

	for _, path := range paths {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load settings", err)
		}
	}

	settings := &Settings{}
	if err := k.Unmarshal("", settings); err != nil {
		return nil, derrors.NewConfigurationError("", "failed to unmarshal settings", err)
	}
	return settings, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, derrors.NewConfigurationError(path, "unsupported settings format: "+filepath.Ext(path), nil)
	}
}

// Template returns the configured override for a template kind, or ok=false
// when the built-in default should be used
func (s *Settings) Template(kind string) (string, bool) {
	if s.Provision.Templates == nil {
		return "", false
	}
	tpl, ok := s.Provision.Templates[kind]
	if !ok || strings.TrimSpace(tpl) == "" {
		return "", false
	}
	return tpl, true
}

// FreshnessWindowHours returns the configured freshness window, falling back
// to 24 hours for zero or negative values
func (s *Settings) FreshnessWindowHours() int {
	if s.FreshnessHours <= 0 {
		return 24
	}
	return s.FreshnessHours
}

// Dump renders the effective settings as YAML
func (s *Settings) Dump() (string, error) {
	out, err := goyaml.Marshal(struct {
		CheckOnStartup   bool              `yaml:"check_on_startup"`
		StatusLine       bool              `yaml:"status_line"`
		FreshnessHours   int               `yaml:"freshness_hours"`
		Node             map[string]int    `yaml:"node"`
		Java             map[string]int    `yaml:"java"`
		RequiredPlugins  []string          `yaml:"required_plugins"`
		RequiredPackages []string          `yaml:"required_packages"`
		Provision        ProvisionSettings `yaml:"provision"`
	}{
		CheckOnStartup:   s.CheckOnStartup,
		StatusLine:       s.StatusLine,
		FreshnessHours:   s.FreshnessHours,
		Node:             map[string]int{"min_major": s.Node.MinMajor},
		Java:             map[string]int{"min_major": s.Java.MinMajor},
		RequiredPlugins:  s.RequiredPlugins,
		RequiredPackages: s.RequiredPackages,
		Provision:        s.Provision,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
