package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI against a config and session in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		content := "paths:\n  mesh_dir: " + filepath.Join(dir, "meshes") +
			"\n  temp_dir: " + filepath.Join(dir, "tmp") +
			"\n  session: " + filepath.Join(dir, "session.yaml") +
			"\nlogging:\n  level: error\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}

	var out bytes.Buffer
	root := (&app{}).rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSetGet(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "set", "cavity.rays", "256"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out, err := run(t, dir, "get", "cavity.rays")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(out) != "256" {
		t.Errorf("expected 256, got %q", out)
	}

	if _, err := run(t, dir, "set", "cavity.rays", "1"); err == nil {
		t.Error("expected out-of-range value to be rejected")
	}
}

func TestModeAndRender(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "mode", "cavity"); err != nil {
		t.Fatalf("mode failed: %v", err)
	}
	out, err := run(t, dir, "render")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"<?xml", `GenCavity="true"`, `GenNormals="false"`, "<CavityBackgroundColor"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered document lacks %q:\n%s", want, out)
		}
	}

	out, err = run(t, dir, "render", "--mode", "normal")
	if err != nil {
		t.Fatalf("render --mode failed: %v", err)
	}
	if !strings.Contains(out, `GenNormals="true"`) {
		t.Errorf("expected normal map document:\n%s", out)
	}
}

func TestBakeWithoutExecutable(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "bake")
	if err == nil {
		t.Fatal("expected launch error without an executable")
	}

	// The document is still written.
	docs, _ := filepath.Glob(filepath.Join(dir, "tmp", "xnbake-*.xml"))
	if len(docs) != 1 {
		t.Errorf("expected one kept document, got %v", docs)
	}
}

func TestDefaults(t *testing.T) {
	out, err := run(t, t.TempDir(), "defaults", "ambient_occlusion")
	if err != nil {
		t.Fatalf("defaults failed: %v", err)
	}
	if !strings.Contains(out, "spread_angle: 162") || !strings.Contains(out, "atten1: 1") {
		t.Errorf("unexpected defaults:\n%s", out)
	}
}

func TestPrefsSet(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "prefs", "--set", "/opt/xNormal/xNormal.exe"); err != nil {
		t.Fatalf("prefs --set failed: %v", err)
	}

	out, err := run(t, dir, "prefs")
	if err != nil {
		t.Fatalf("prefs failed: %v", err)
	}
	if !strings.Contains(out, "executable: /opt/xNormal/xNormal.exe") {
		t.Errorf("stored executable not read back:\n%s", out)
	}

	// The rest of the config file survives the rewrite.
	if !strings.Contains(out, filepath.Join(dir, "session.yaml")) {
		t.Errorf("session path lost on save:\n%s", out)
	}
}

func TestModesListing(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "mode", "vertex_color"); err != nil {
		t.Fatalf("mode failed: %v", err)
	}
	out, err := run(t, dir, "modes")
	if err != nil {
		t.Fatalf("modes failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 modes, got %d:\n%s", len(lines), out)
	}
	for _, line := range lines {
		active := strings.HasPrefix(line, "*")
		if strings.Contains(line, "BakeHighpolyVCols") != active {
			t.Errorf("unexpected active marker on %q", line)
		}
	}
}
