package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/systemconf/iftar-cli/internal/display"
)

// runCommand executes the root command in-process with the given args and
// returns captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	display.SetEnabled(false)

	// Command handlers print via fmt to os.Stdout.
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	root := NewRootCmd("test")
	root.SetArgs(args)
	execErr := root.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), execErr
}

func TestMethodsCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "methods")
	if err != nil {
		t.Fatalf("methods failed: %v", err)
	}

	for _, want := range []string{
		"ISNA",
		"Muslim World League",
		"Umm Al-Qura",
		"Diyanet",
		"(default)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("methods output missing %q", want)
		}
	}
}

func TestCitiesCommand_ListsAll(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "cities")
	if err != nil {
		t.Fatalf("cities failed: %v", err)
	}

	for _, want := range []string{"İstanbul", "Ankara", "Zonguldak"} {
		if !strings.Contains(out, want) {
			t.Errorf("cities output missing %q", want)
		}
	}
}

func TestCitiesCommand_Search(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "cities", "istanbul")
	if err != nil {
		t.Fatalf("cities search failed: %v", err)
	}
	if !strings.Contains(out, "İstanbul") {
		t.Errorf("search output missing İstanbul:\n%s", out)
	}
	if strings.Contains(out, "Ankara") {
		t.Errorf("search output should not contain Ankara:\n%s", out)
	}
}

func TestCitiesCommand_NoMatch(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := runCommand(t, "cities", "atlantis"); err == nil {
		t.Fatal("expected error for unknown city search")
	}
}

func TestConfigPathCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := runCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}

	want := filepath.Join(dir, "iftar", "config.json")
	if strings.TrimSpace(out) != want {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := runCommand(t, "config", "set", "city", "İstanbul"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := runCommand(t, "config", "set", "language", "tr"); err != nil {
		t.Fatalf("config set language failed: %v", err)
	}

	out, err := runCommand(t, "config")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "İstanbul") {
		t.Errorf("config show missing city:\n%s", out)
	}
	if !strings.Contains(out, "water_reminder") || !strings.Contains(out, "prayer_notifications") {
		t.Errorf("config show missing toggle keys:\n%s", out)
	}
}

func TestConfigSet_InvalidKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := runCommand(t, "config", "set", "font_size", "large"); err == nil {
		t.Fatal("expected error for invalid key")
	}
}

func TestConfigReset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if _, err := runCommand(t, "config", "set", "city", "Ankara"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := runCommand(t, "config", "reset"); err != nil {
		t.Fatalf("config reset failed: %v", err)
	}

	path := filepath.Join(dir, "iftar", "config.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file should be gone after reset")
	}
}

func TestHelp_ListsSubcommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("--help failed: %v", err)
	}

	out := buf.String()
	for _, sub := range []string{"watch", "imsakiye", "notify", "config", "methods", "cities"} {
		if !strings.Contains(out, sub) {
			t.Errorf("--help output missing subcommand %q", sub)
		}
	}
}

func TestCalculationMethods_NoDuplicateIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, m := range CalculationMethods {
		if seen[m.ID] {
			t.Errorf("duplicate calculation method ID: %d", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestCalculationMethods_IDsAreValid(t *testing.T) {
	for _, m := range CalculationMethods {
		if m.ID < 0 || m.ID > 23 {
			t.Errorf("method ID %d out of range 0-23", m.ID)
		}
		if m.Name == "" {
			t.Errorf("method ID %d has empty name", m.ID)
		}
	}
}
