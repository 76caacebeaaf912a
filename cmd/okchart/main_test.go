package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const example = "../../config/testdata/example.toml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath, svgMode, errorMode = "", "full", "warn"
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "okchart ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRenderStdout(t *testing.T) {
	out, err := execute(t, "render", example, "--mode", "partial", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<svg") || !strings.Contains(out, "<line") {
		t.Errorf("unexpected partial output %q", out)
	}

	if _, err = execute(t, "render", example, "--mode", "other"); err == nil {
		t.Error("expected error on invalid mode")
	}
	if _, err = execute(t, "render", example, "--log-level", "loud"); err == nil {
		t.Error("expected error on invalid log level")
	}
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chart.svg", "chart.png", "chart.pdf"} {
		path := filepath.Join(dir, name)
		if _, err := execute(t, "render", example, "-o", path); err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("%s: empty output (%v)", name, err)
		}
	}

	if _, err := execute(t, "render", example, "-o", filepath.Join(dir, "chart.bmp")); err == nil {
		t.Error("expected error on unsupported format")
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "chart.svg")
	if _, err := execute(t, "render", example, "-o", svgPath); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "chart.png")
	if _, err := execute(t, "convert", svgPath, "-o", pngPath, "--errors", "strict"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("expected a PNG file")
	}

	if _, err = execute(t, "convert", svgPath, "-o", pngPath, "--errors", "silent"); err == nil {
		t.Error("expected error on invalid error mode")
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRenderStdoutError(t *testing.T) {
	outputPath, svgMode, errorMode = "", "full", "warn"
	cmd := newRootCmd()
	cmd.SetOut(brokenPipe{})
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"render", example})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("expected write error, got %v", err)
	}
}
