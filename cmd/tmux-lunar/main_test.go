package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func buildBinary(t *testing.T, ldflags string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "tmux-lunar")
	args := []string{"build"}
	if ldflags != "" {
		args = append(args, "-ldflags", ldflags)
	}
	args = append(args, "-o", binPath, ".")
	cmd := exec.Command("go", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	return binPath
}

// TestVersionFlag verifies that --version prints the version string.
func TestVersionFlag(t *testing.T) {
	binPath := buildBinary(t, "-X main.version=v1.2.3-test")

	out, err := exec.Command(binPath, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	got := strings.TrimSpace(string(out))
	want := "tmux-lunar v1.2.3-test"
	if got != want {
		t.Errorf("--version = %q, want %q", got, want)
	}
}

// TestVersionFlag_Dev verifies the default "dev" version when no ldflags.
func TestVersionFlag_Dev(t *testing.T) {
	binPath := buildBinary(t, "")

	out, err := exec.Command(binPath, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	got := strings.TrimSpace(string(out))
	if !strings.HasPrefix(got, "tmux-lunar ") {
		t.Errorf("--version output unexpected: %q", got)
	}
}

// TestStatusLine runs the binary end to end for a fixed date.
func TestStatusLine(t *testing.T) {
	binPath := buildBinary(t, "")

	cmd := exec.Command(binPath, "--date", "2026-10-26", "--format", "full")
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("tmux-lunar failed: %v", err)
	}

	want := "🌕 Purnima (Full Moon) (96%)"
	if string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestPrintFormats(t *testing.T) {
	var b strings.Builder
	printFormats(&b)
	output := b.String()

	for _, name := range []string{"glyph", "glyph-and-title", "illumination", "full", "7.4d"} {
		if !strings.Contains(output, name) {
			t.Errorf("format list missing %q", name)
		}
	}
}

func runStatus(t *testing.T, opts options) (string, error) {
	t.Helper()
	var b strings.Builder
	err := run(&b, opts, zerolog.Nop())
	return b.String(), err
}

func TestRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name string
		opts options
		want string
	}{
		{"default format", options{Date: "2026-10-18"}, "🌔 Shukla Ashtami"},
		{"glyph", options{Date: "2026-10-18", Format: "glyph"}, "🌔"},
		{"ascii", options{Date: "2026-10-26", Format: "glyph", Glyphs: "ascii"}, "()"},
		{"new moon", options{Date: "2026-10-11", Format: "title"}, "Amavasya (New Moon)"},
		{"age", options{Date: "2026-10-18", Format: "age"}, "7.4d"},
		{"template", options{Date: "2026-10-07", Format: "{{.Tithi}}{{if .Ekadashi}} *{{end}}"}, "Krishna Ekadashi *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runStatus(t, tt.opts)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_UsesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "lunar-almanac"), 0o755); err != nil {
		t.Fatal(err)
	}
	toml := "glyphs = \"ascii\"\nformat = \"glyph-and-illumination\"\n"
	if err := os.WriteFile(filepath.Join(dir, "lunar-almanac", "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runStatus(t, options{Date: "2026-10-18"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != " ) 50%" {
		t.Errorf("got %q, want %q", got, " ) 50%")
	}

	// Flags win over the config file.
	got, err = runStatus(t, options{Date: "2026-10-18", Format: "glyph", Glyphs: "emoji"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "🌔" {
		t.Errorf("got %q, want %q", got, "🌔")
	}
}

func TestRun_BrokenConfigIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "lunar-almanac"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lunar-almanac", "config.toml"), []byte("not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runStatus(t, options{Date: "2026-10-18", Format: "tithi"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "Shukla Ashtami" {
		t.Errorf("got %q", got)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, opts := range []options{
		{Date: "2026-02-30"},
		{Date: "2026-10-18", Format: "moonish"},
		{Date: "2026-10-18", Format: "{{.Nope"},
		{Date: "2026-10-18", Glyphs: "runes"},
	} {
		if _, err := runStatus(t, opts); err == nil {
			t.Errorf("run(%+v): expected error", opts)
		}
	}
}
