package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  B = two  ", "B", "two", true},
		{`C="quoted value"`, "C", "quoted value", true},
		{"D='single'", "D", "single", true},
		{"export E=x", "E", "x", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=nokey", "", "", false},
		{"noequals", "", "", false},
	}
	for _, tt := range tests {
		k, v, ok := parseLine(tt.line)
		if k != tt.key || v != tt.value || ok != tt.ok {
			t.Errorf("parseLine(%q) = %q, %q, %v", tt.line, k, v, ok)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CUBE_ENV_TEST_A=from-file\nCUBE_ENV_TEST_B=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CUBE_ENV_TEST_B", "from-process")
	// Registers cleanup for A so the test leaves the environment as it found it.
	t.Setenv("CUBE_ENV_TEST_A", "")
	os.Unsetenv("CUBE_ENV_TEST_A")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("CUBE_ENV_TEST_A"); got != "from-file" {
		t.Errorf("A = %q", got)
	}
	if got := os.Getenv("CUBE_ENV_TEST_B"); got != "from-process" {
		t.Errorf("B = %q, process value should win", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}
}
