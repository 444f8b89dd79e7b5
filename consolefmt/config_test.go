package consolefmt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "consolefmt.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mode = "server"
color = "never"

[defaults]
type = "info"
pad = true
line_break_start = false
json_spacer = 4
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Mode != ModeServer || cfg.Color != ColorNever {
		t.Fatalf("unexpected mode/color: %q/%q", cfg.Mode, cfg.Color)
	}
	d := cfg.Defaults
	if d.Type != LevelInfo {
		t.Fatalf("unexpected default type: %q", d.Type)
	}
	if d.Pad == nil || !*d.Pad {
		t.Fatalf("pad should be set to true, got: %v", d.Pad)
	}
	if d.LineBreakStart == nil || *d.LineBreakStart {
		t.Fatalf("line_break_start should be set to false, got: %v", d.LineBreakStart)
	}
	if d.LineBreakEnd != nil {
		t.Fatalf("line_break_end should stay unset, got: %v", *d.LineBreakEnd)
	}
	if d.JSONSpacer == nil || *d.JSONSpacer != 4 {
		t.Fatalf("json_spacer should be 4, got: %v", d.JSONSpacer)
	}
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		toml  string
		field string
	}{
		{"mode", `mode = "desktop"`, "mode"},
		{"color", `color = "sometimes"`, "color"},
		{"spacer", "[defaults]\njson_spacer = 42", "defaults.json_spacer"},
		{"type", "[defaults]\ntype = \"verbose\"", "defaults.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.toml))
			if err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got: %v", err)
			}
			if len(verrs) != 1 || verrs[0].FieldPath != tt.field {
				t.Fatalf("expected one error on %q, got: %v", tt.field, verrs)
			}
		})
	}
}

func TestLoadConfig_DecodeErrors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "mode = \n")); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("syntax error should report its line, got: %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `theme = "dark"`)); err == nil {
		t.Fatalf("unknown keys should be rejected")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file should be an error")
	}
}

func TestNew_Server(t *testing.T) {
	var stdoutBuf, stderrBuf bytes.Buffer
	f, err := New(Config{Mode: ModeServer, Color: ColorAlways, Stdout: &stdoutBuf, Stderr: &stderrBuf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if f.Mode() != ServerMode {
		t.Fatalf("expected server mode, got: %v", f.Mode())
	}

	f.Info("hello")
	f.Error("boom")

	if got := stdoutBuf.String(); got != "\n"+ServerStyle(LevelInfo)+"hello"+Reset+"\n\n" {
		t.Fatalf("unexpected stdout, got: %q", got)
	}
	if got := stderrBuf.String(); !strings.Contains(got, "boom") {
		t.Fatalf("stderr missing expected logs, got: %q", got)
	}
}

func TestNew_AutoColorOffForBuffers(t *testing.T) {
	var buf bytes.Buffer
	f, err := New(Config{Stdout: &buf, Stderr: &buf, Defaults: Options{Pad: Bool(true)}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	f.Log("plain")

	if got := buf.String(); got != "\n plain \n\n" {
		t.Fatalf("non-terminal writers should get plain output, got: %q", got)
	}
}

func TestNew_Browser(t *testing.T) {
	if _, err := New(Config{Mode: ModeBrowser}); err == nil {
		t.Fatalf("browser mode without a console should fail outside js/wasm")
	}

	var got []any
	f, err := New(Config{Mode: ModeBrowser, Console: ConsoleFuncs{
		LevelLog: func(args ...any) { got = args },
	}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if f.Mode() != BrowserMode {
		t.Fatalf("expected browser mode, got: %v", f.Mode())
	}

	f.Log("hi")

	if len(got) != 2 || got[0] != "%chi" || got[1] != "" {
		t.Fatalf("unexpected console call: %q", got)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Defaults: Options{JSONSpacer: Int(-1)}}); err == nil {
		t.Fatalf("negative json_spacer should be rejected")
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if !useColor(ColorAlways, &buf) {
		t.Fatalf("always should enable colour")
	}
	if useColor(ColorNever, os.Stdout) {
		t.Fatalf("never should disable colour")
	}
	if useColor(ColorAuto, &buf) {
		t.Fatalf("auto should disable colour for non-file writers")
	}

	t.Setenv("NO_COLOR", "1")
	if useColor(ColorAuto, os.Stdout) {
		t.Fatalf("NO_COLOR should disable automatic colour")
	}
	if !useColor(ColorAlways, os.Stdout) {
		t.Fatalf("always should win over NO_COLOR")
	}
}
