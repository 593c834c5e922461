package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"room-planner/internal/camera"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("got %+v", p)
	}
}

func TestLoadInvalidReturnsDefaultAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFrom(path)
	if err == nil {
		t.Error("expected a parse error")
	}
	if p != Default() {
		t.Errorf("got %+v", p)
	}
}

func TestLoadUnreadableReturnsError(t *testing.T) {
	// A directory exists but cannot be read as a file.
	p, err := LoadFrom(t.TempDir())
	if err == nil || errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want a read error", err)
	}
	if p != Default() {
		t.Errorf("got %+v", p)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "planner.json")
	want := Default()
	want.ViewMode = "top"
	want.ShowFPS = true
	want.LayoutPath = "elsewhere.yaml"
	if err := SaveTo(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Mode() != camera.TopDown {
		t.Errorf("mode = %v", got.Mode())
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.json")
	if err := os.WriteFile(path, []byte(`{"view_mode":"sideways","window_width":-5}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, _ := LoadFrom(path)
	def := Default()
	if p.ViewMode != def.ViewMode || p.WindowWidth != def.WindowWidth || p.LayoutPath != def.LayoutPath {
		t.Errorf("got %+v", p)
	}
}

func TestDotEnvAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nPLANNER_LAYOUT = \"layouts/studio.yaml\"\nbroken line\nPLANNER_VIEW='top'\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLayout, "")
	t.Setenv(EnvView, "")
	os.Unsetenv(EnvLayout)
	os.Unsetenv(EnvView)
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	p := ApplyEnv(Default())
	if p.LayoutPath != "layouts/studio.yaml" || p.Mode() != camera.TopDown {
		t.Errorf("got %+v", p)
	}
}

func TestDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PLANNER_VIEW=top\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvView, "free")
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(EnvView); got != "free" {
		t.Errorf("PLANNER_VIEW = %q, want free", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("missing .env: %v", err)
	}
}
