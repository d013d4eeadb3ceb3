package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want default %+v", cfg, Default())
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tinycatrc.yaml")
	content := "prompt: \"BASIC> \"\nbanner: \"tinycat basic\"\ntrace: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "BASIC> " || cfg.Banner != "tinycat basic" || !cfg.Trace {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tinycatrc.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadSessionFallsBackToHomeDirectory(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	t.Chdir(cwd)
	t.Setenv("HOME", home)

	content := "prompt: \"HOME> \"\n"
	if err := os.WriteFile(filepath.Join(home, ".tinycatrc.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cfg := LoadSession(&stderr)
	if cfg.Prompt != "HOME> " {
		t.Fatalf("cfg.Prompt = %q, want %q", cfg.Prompt, "HOME> ")
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", stderr.String())
	}
}

func TestLoadSessionPrefersCurrentDirectoryOverHome(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	t.Chdir(cwd)
	t.Setenv("HOME", home)

	if err := os.WriteFile(filepath.Join(cwd, ".tinycatrc.yaml"), []byte("prompt: \"CWD> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".tinycatrc.yaml"), []byte("prompt: \"HOME> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSession(&bytes.Buffer{})
	if cfg.Prompt != "CWD> " {
		t.Fatalf("cfg.Prompt = %q, want %q", cfg.Prompt, "CWD> ")
	}
}

func TestLoadSessionReportsMalformedFileAndUsesDefaults(t *testing.T) {
	cwd := t.TempDir()
	t.Chdir(cwd)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(cwd, ".tinycatrc.yaml"), []byte("prompt: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cfg := LoadSession(&stderr)
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want Default() %+v", cfg, Default())
	}
	if stderr.Len() == 0 {
		t.Fatal("expected the malformed file to be reported to stderr")
	}
}

func TestLoadEmptyPromptFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".tinycatrc.yaml")
	if err := os.WriteFile(path, []byte("trace: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Fatalf("expected default prompt, got %q", cfg.Prompt)
	}
}
