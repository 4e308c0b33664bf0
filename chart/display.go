package chart

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Display shows a rendered chart document.
type Display interface {
	Display(doc []byte) error
}

// FileDisplay writes the document to a file. It is the display for
// non-interactive use.
type FileDisplay struct {
	Path string
}

func (d FileDisplay) Display(doc []byte) error {
	return os.WriteFile(d.Path, doc, 0o644)
}

// WriterDisplay writes the document to W.
type WriterDisplay struct {
	W io.Writer
}

func (d WriterDisplay) Display(doc []byte) error {
	_, err := d.W.Write(doc)
	return err
}

// ViewerDisplay writes the document to Path and opens it with an external
// viewer, blocking until the viewer command exits.
type ViewerDisplay struct {
	Path string
	// Command is the viewer command; Path is appended as its last argument.
	// If empty, [DefaultViewer] is used.
	Command []string
}

func (d ViewerDisplay) Display(doc []byte) error {
	if err := (FileDisplay{Path: d.Path}).Display(doc); err != nil {
		return err
	}
	cmd := d.Command
	if len(cmd) == 0 {
		cmd = DefaultViewer()
	}
	c := exec.Command(cmd[0], append(cmd[1:], d.Path)...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run viewer %q: %w", cmd[0], err)
	}
	return nil
}

// DefaultViewer returns the command that opens a file with the desktop's
// default application.
func DefaultViewer() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", "-W"}
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}
	default:
		return []string{"xdg-open"}
	}
}
