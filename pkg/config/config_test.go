package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseComponent(t *testing.T) {
	data := []byte(`{
		"component": true,
		"usingComponents": {
			"my-button": "../components/button",
			"rax-view": "rax-components/view"
		}
	}`)

	cfg, err := ParseComponent(data)
	if err != nil {
		t.Fatalf("ParseComponent failed: %v", err)
	}
	if !cfg.Component {
		t.Error("expected component flag set")
	}
	want := map[string]string{
		"my-button": "../components/button",
		"rax-view":  "rax-components/view",
	}
	if diff := cmp.Diff(want, cfg.UsingComponents); diff != "" {
		t.Errorf("usingComponents mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestParseComponentInvalidJSON(t *testing.T) {
	if _, err := ParseComponent([]byte("{")); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseComponentNormalizes(t *testing.T) {
	cfg, err := ParseComponent([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseComponent failed: %v", err)
	}
	if cfg.UsingComponents == nil || cfg.Window == nil {
		t.Error("expected normalized non-nil maps")
	}
}

func TestResolve(t *testing.T) {
	cfg := &ComponentConfig{
		UsingComponents: map[string]string{"my-card": "./card"},
	}
	if p, ok := cfg.Resolve("my-card"); !ok || p != "./card" {
		t.Errorf("expected custom component resolution, got %q %v", p, ok)
	}
	if _, ok := cfg.Resolve("view"); ok {
		t.Error("expected host-provided tag to stay unresolved")
	}
}

func TestValidateRejectsBadTags(t *testing.T) {
	bad := []string{"", "My-Button", "1button", "my button", "-lead"}
	for _, tag := range bad {
		cfg := &ComponentConfig{UsingComponents: map[string]string{tag: "./x"}}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected tag %q to be rejected", tag)
		}
	}
}

func TestValidateRejectsBadPaths(t *testing.T) {
	bad := []string{"", "../a/../b/", "bad path with spaces", "a//b"}
	for _, p := range bad {
		cfg := &ComponentConfig{UsingComponents: map[string]string{"my-tag": p}}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected path %q to be rejected", p)
		}
	}
}

func TestValidateAcceptsRelativeAndModulePaths(t *testing.T) {
	good := []string{"./button", "../shared/card", "rax-components/view"}
	for _, p := range good {
		cfg := &ComponentConfig{UsingComponents: map[string]string{"my-tag": p}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected path %q to be accepted, got %v", p, err)
		}
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	project, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if project.App.Name != "" || len(project.App.Pages) != 0 {
		t.Error("expected empty project for missing rax.yaml")
	}
}

func TestLoadOptionalParses(t *testing.T) {
	dir := t.TempDir()
	content := strings.Join([]string{
		"app:",
		"  name: demo",
		"  pages:",
		"    - pages/index/index",
		"    - pages/detail/detail",
		"  window:",
		"    navigationBarTitleText: Demo",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, "rax.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	project, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if project.App.Name != "demo" {
		t.Errorf("expected app name, got %q", project.App.Name)
	}
	want := []string{"pages/index/index", "pages/detail/detail"}
	if diff := cmp.Diff(want, project.App.Pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
	if project.App.Window["navigationBarTitleText"] != "Demo" {
		t.Errorf("expected window settings, got %v", project.App.Window)
	}
}

func TestLoadOptionalRejectsBadRoutes(t *testing.T) {
	dir := t.TempDir()
	content := "app:\n  pages:\n    - /absolute/route\n"
	if err := os.WriteFile(filepath.Join(dir, "rax.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected absolute page route to be rejected")
	}
}

func TestLoadOptionalRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rax.yaml"), []byte("app: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected yaml parse error")
	}
}
