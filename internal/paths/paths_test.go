package paths

import (
	"path/filepath"
	"testing"
)

func TestHomeDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	home, err := HomeDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if home != filepath.Join("/tmp", "test-home") {
		t.Fatalf("expected %s, got %s", filepath.Join("/tmp", "test-home"), home)
	}
}

func TestHomeDirMissing(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := HomeDir(); err == nil {
		t.Fatal("expected error when HOME is empty")
	}
	if _, err := DefaultConfigPath(); err == nil {
		t.Fatal("expected error when HOME is empty")
	}
}

func TestDefaultConfigPathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "rtd", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	cases := map[string]string{
		"~":                "/tmp/test-home",
		"~/tasks.csv":      "/tmp/test-home/tasks.csv",
		"/abs/tasks.csv":   "/abs/tasks.csv",
		"relative/~/x.csv": "relative/~/x.csv",
		"~other/x.csv":     "~other/x.csv",
	}
	for input, want := range cases {
		got, err := ExpandHome(input)
		if err != nil {
			t.Fatalf("expand %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("expand %q: expected %s, got %s", input, want, got)
		}
	}
}
