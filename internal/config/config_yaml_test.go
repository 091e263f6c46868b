package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes content to config.yaml under a fresh XDG config home
// and returns the file path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dataDir := filepath.Join(tmpDir, "shellpane")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dataDir, "config.yaml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestLoad_NoConfigFile(t *testing.T) {
	writeConfig(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Keys.Escape != "ctrl+q" {
		t.Errorf("cfg.Keys.Escape = %q, want %q", cfg.Keys.Escape, "ctrl+q")
	}
	if cfg.Keys.Quit != "q" {
		t.Errorf("cfg.Keys.Quit = %q, want %q", cfg.Keys.Quit, "q")
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	path := writeConfig(t, `shell: /bin/sh
rows: 20
env:
  EDITOR: vi
keys:
  quit: "Q"
theme:
  palette:
    blue: cyan
  frame_command: magenta
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.DataDir != filepath.Dir(path) {
		t.Errorf("cfg.DataDir = %q, want %q", cfg.DataDir, filepath.Dir(path))
	}
	if cfg.Shell != "/bin/sh" {
		t.Errorf("cfg.Shell = %q, want %q", cfg.Shell, "/bin/sh")
	}
	if cfg.Rows != 20 {
		t.Errorf("cfg.Rows = %d, want 20", cfg.Rows)
	}
	if cfg.Env["EDITOR"] != "vi" {
		t.Errorf("cfg.Env[EDITOR] = %q, want %q", cfg.Env["EDITOR"], "vi")
	}
	if cfg.Keys.Quit != "Q" {
		t.Errorf("cfg.Keys.Quit = %q, want %q", cfg.Keys.Quit, "Q")
	}
	if cfg.Theme.Palette["blue"] != "cyan" {
		t.Errorf("cfg.Theme.Palette[blue] = %q, want %q", cfg.Theme.Palette["blue"], "cyan")
	}
	if cfg.Theme.FrameCommand != "magenta" {
		t.Errorf("cfg.Theme.FrameCommand = %q, want %q", cfg.Theme.FrameCommand, "magenta")
	}

	// Verify defaults are preserved for unset values
	if len(cfg.ShellArgs) != 1 || cfg.ShellArgs[0] != "-i" {
		t.Errorf("cfg.ShellArgs = %q, want default [-i]", cfg.ShellArgs)
	}
	if cfg.Cols != 0 {
		t.Errorf("cfg.Cols = %d, want 0 (default)", cfg.Cols)
	}
	if cfg.Keys.Escape != "ctrl+q" {
		t.Errorf("cfg.Keys.Escape = %q, want %q (default)", cfg.Keys.Escape, "ctrl+q")
	}
	if cfg.Theme.FrameTerminal != "green" {
		t.Errorf("cfg.Theme.FrameTerminal = %q, want %q (default)", cfg.Theme.FrameTerminal, "green")
	}
}

func TestLoad_EmptyShellArgs(t *testing.T) {
	writeConfig(t, "shell_args: []\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ShellArgs == nil || len(cfg.ShellArgs) != 0 {
		t.Errorf("cfg.ShellArgs = %#v, want empty non-nil", cfg.ShellArgs)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate keys", "keys:\n  quit: \"x\"\n  resume: \"x\"\n"},
		{"padded duplicate keys", "keys:\n  quit: \"x\"\n  resume: \" x \"\n"},
		{"duplicate ctrl keys", "keys:\n  escape: \"ctrl+x\"\n  quit: \"Ctrl+X\"\n"},
		{"invalid key", "keys:\n  quit: \"hyper+q\"\n"},
		{"invalid palette color", "theme:\n  palette:\n    blue: teal\n"},
		{"invalid palette source", "theme:\n  palette:\n    orange: blue\n"},
		{"invalid frame color", "theme:\n  frame_terminal: pink\n"},
		{"malformed yaml", "rows: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s, got nil", tt.name)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v, want nil", err)
	}
	if cfg.ConfigFile() != path {
		t.Errorf("ConfigFile() = %q, want %q", cfg.ConfigFile(), path)
	}
}

func TestLoadFile_CustomName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("rows: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Rows != 12 {
		t.Errorf("cfg.Rows = %d, want 12", cfg.Rows)
	}
	if cfg.ConfigFile() != path {
		t.Errorf("ConfigFile() = %q, want %q", cfg.ConfigFile(), path)
	}
	if cfg.DataDir != filepath.Dir(path) {
		t.Errorf("cfg.DataDir = %q, want %q", cfg.DataDir, filepath.Dir(path))
	}
}
