package chart

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileDisplay(t *testing.T) {
	c := defaultChart(t, Options{})
	want, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "chart.svg")
	if err := c.Show(FileDisplay{Path: path}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, string(got))

	err = c.Show(FileDisplay{Path: filepath.Join(t.TempDir(), "missing", "chart.svg")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, fs.ErrNotExist)
	}
}

func TestWriterDisplay(t *testing.T) {
	c := defaultChart(t, Options{})
	var buf bytes.Buffer
	if err := c.Show(WriterDisplay{W: &buf}); err != nil {
		t.Fatal(err)
	}
	want, _ := c.Render()
	diff(t, want, buf.String())

	err := c.Show(WriterDisplay{W: &failWriter{}})
	if !errors.Is(err, errDiskFull) {
		t.Errorf("got error %v, want %v", err, errDiskFull)
	}
}

func TestViewerDisplay(t *testing.T) {
	for _, name := range []string{"true", "false"} {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("no %q command: %s", name, err)
		}
	}
	c := defaultChart(t, Options{})
	path := filepath.Join(t.TempDir(), "chart.svg")
	if err := c.Show(ViewerDisplay{Path: path, Command: []string{"true"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("viewer display did not write the document: %s", err)
	}

	err := c.Show(ViewerDisplay{Path: path, Command: []string{"false"}})
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("got error %v, want an exit error", err)
	}
	if !strings.Contains(err.Error(), `run viewer "false"`) {
		t.Errorf("unexpected error message %q", err)
	}
}

func TestDefaultViewer(t *testing.T) {
	if v := DefaultViewer(); len(v) == 0 || v[0] == "" {
		t.Errorf("got empty viewer command %q", v)
	}
}
