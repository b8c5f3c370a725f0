// Package config models the normalized configuration the compiler emits
// for mini-program pages and custom components, plus the optional rax.yaml
// project file. The runtime never parses source; it validates and exposes
// what the compiler produced.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// ComponentConfig is the normalized config for one compiled source unit.
// UsingComponents maps a template tag name to the module path of the
// custom component it refers to; a tag absent from the map is a plain
// host-provided component.
type ComponentConfig struct {
	Component       bool              `json:"component,omitempty" yaml:"component,omitempty"`
	UsingComponents map[string]string `json:"usingComponents,omitempty" yaml:"usingComponents,omitempty"`
	Window          map[string]any    `json:"window,omitempty" yaml:"window,omitempty"`
}

// ParseComponent decodes a compiler-emitted JSON config and normalizes it.
func ParseComponent(data []byte) (*ComponentConfig, error) {
	var cfg ComponentConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse component config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Normalize ensures the maps are non-nil so lookups and merges are safe.
func (c *ComponentConfig) Normalize() {
	if c.UsingComponents == nil {
		c.UsingComponents = make(map[string]string)
	}
	if c.Window == nil {
		c.Window = make(map[string]any)
	}
}

// Resolve returns the module path registered for a tag name, and whether
// the tag refers to a custom component at all.
func (c *ComponentConfig) Resolve(tag string) (string, bool) {
	p, ok := c.UsingComponents[tag]
	return p, ok
}

// Validate checks every usingComponents entry: the tag must be a valid
// template tag name and the path either a clean relative path or a valid
// module path.
func (c *ComponentConfig) Validate() error {
	for tag, componentPath := range c.UsingComponents {
		if err := checkTagName(tag); err != nil {
			return fmt.Errorf("usingComponents tag %q: %w", tag, err)
		}
		if err := checkComponentPath(componentPath); err != nil {
			return fmt.Errorf("usingComponents entry %q: %w", tag, err)
		}
	}
	return nil
}

// checkTagName validates a template tag name: lowercase letters, digits and
// hyphens, starting with a letter.
func checkTagName(tag string) error {
	if tag == "" {
		return errors.New("empty tag name")
	}
	if tag[0] < 'a' || tag[0] > 'z' {
		return fmt.Errorf("tag must start with a lowercase letter")
	}
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return fmt.Errorf("invalid character %q in tag", r)
		}
	}
	return nil
}

// checkComponentPath validates a usingComponents target. Relative paths
// (the common form for sibling components) must be clean; anything else
// must be a valid module path.
func checkComponentPath(p string) error {
	if p == "" {
		return errors.New("empty component path")
	}
	if strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") || p == "." {
		// Clean strips a leading "./", so allow both spellings.
		if cleaned := path.Clean(p); p != cleaned && p != "./"+cleaned {
			return fmt.Errorf("component path %q is not clean", p)
		}
		return nil
	}
	if err := module.CheckImportPath(p); err != nil {
		return fmt.Errorf("invalid component path: %w", err)
	}
	return nil
}

// Project represents the optional rax.yaml configuration next to an app.
type Project struct {
	App AppConfig `yaml:"app"`
}

// AppConfig contains application metadata and page routes.
type AppConfig struct {
	Name   string         `yaml:"name,omitempty"`
	Pages  []string       `yaml:"pages,omitempty"`
	Window map[string]any `yaml:"window,omitempty"`
}

// LoadOptional reads rax.yaml if present. A missing file yields an empty
// project, not an error.
func LoadOptional(dir string) (*Project, error) {
	p := filepath.Join(dir, "rax.yaml")
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Project{}, nil
		}
		return nil, fmt.Errorf("failed to read rax.yaml: %w", err)
	}
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse rax.yaml: %w", err)
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return &project, nil
}

// Validate checks the page routes: each must be a clean relative path
// without a leading slash or traversal.
func (p *Project) Validate() error {
	for _, page := range p.App.Pages {
		if page == "" {
			return errors.New("empty page route")
		}
		if strings.HasPrefix(page, "/") || strings.HasPrefix(page, "../") {
			return fmt.Errorf("page route %q must be relative to the app root", page)
		}
		if path.Clean(page) != page {
			return fmt.Errorf("page route %q is not clean", page)
		}
	}
	return nil
}
