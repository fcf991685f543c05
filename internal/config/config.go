// Package config resolves where the generator runs and what the index,
// template, and overrides files are called. Scan and generate receive the
// resolved Config explicitly so they stay testable against temp dirs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultIndexFile     = "index.html"
	DefaultTemplateFile  = "index.template.html"
	DefaultOverridesFile = "tools.toml"

	// FileName is the optional per-directory config file.
	FileName = ".toolindex.yaml"

	// EnvDir overrides the scan directory when --dir is not set.
	EnvDir = "TOOLINDEX_DIR"
)

// Config holds the resolved settings for a single run.
type Config struct {
	Dir           string   `yaml:"-"`
	IndexFile     string   `yaml:"index"`
	TemplateFile  string   `yaml:"template"`
	OverridesFile string   `yaml:"overrides"`
	Exclude       []string `yaml:"exclude"`
}

// Default returns the configuration used when no config file is present.
func Default(dir string) Config {
	return Config{
		Dir:           dir,
		IndexFile:     DefaultIndexFile,
		TemplateFile:  DefaultTemplateFile,
		OverridesFile: DefaultOverridesFile,
	}
}

// Load reads the optional .toolindex.yaml in dir. A missing file yields the
// defaults; zero fields in the file keep their default values. When the
// file does not set an exclude list, the index and template files exclude
// themselves.
func Load(dir string) (Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err == nil {
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
		if file.IndexFile != "" {
			cfg.IndexFile = file.IndexFile
		}
		if file.TemplateFile != "" {
			cfg.TemplateFile = file.TemplateFile
		}
		if file.OverridesFile != "" {
			cfg.OverridesFile = file.OverridesFile
		}
		cfg.Exclude = file.Exclude
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if cfg.Exclude == nil {
		cfg.Exclude = []string{cfg.IndexFile, cfg.TemplateFile}
	}
	return cfg, nil
}

// ResolveDir picks the scan directory: the flag value, then $TOOLINDEX_DIR,
// then the directory the binary itself lives in.
func ResolveDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvDir); env != "" {
		return env, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable directory: %w", err)
	}
	return filepath.Dir(exe), nil
}

func (c Config) IndexPath() string     { return filepath.Join(c.Dir, c.IndexFile) }
func (c Config) TemplatePath() string  { return filepath.Join(c.Dir, c.TemplateFile) }
func (c Config) OverridesPath() string { return filepath.Join(c.Dir, c.OverridesFile) }

// ExcludeSet returns the lowercase exclusion set used by the scanner.
func (c Config) ExcludeSet() map[string]bool {
	set := make(map[string]bool, len(c.Exclude))
	for _, name := range c.Exclude {
		set[strings.ToLower(name)] = true
	}
	return set
}
