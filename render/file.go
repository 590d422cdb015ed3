package render

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/vdobler/subplot"
)

// Write renders fig in format f to w.
func Write(w io.Writer, fig *subplot.Figure, f Format, opts ImageOptions) error {
	switch f {
	case FormatJSON:
		return JSON(w, fig)
	case FormatHTML:
		return HTML(w, fig, HTMLOptions{})
	}
	return Image(w, fig, f, opts)
}

// WriteFile renders fig into the file path. The format is selected by
// the file extension.
func WriteFile(path string, fig *subplot.Figure, opts ImageOptions) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return &Error{Op: "create", Format: f, Err: err}
	}
	w := bufio.NewWriter(file)
	err = Write(w, fig, f, opts)
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		var re *Error
		if !errors.As(err, &re) {
			err = &Error{Op: "write", Format: f, Err: err}
		}
		return err
	}
	return nil
}

// openURL is replaced in tests.
var openURL = browser.OpenURL

// Show writes fig as HTML page into a temporary file and opens it in the
// web browser. The file name is returned; the file is not removed.
func Show(fig *subplot.Figure) (string, error) {
	file, err := os.CreateTemp("", "subplot-*.html")
	if err != nil {
		return "", &Error{Op: "create", Format: FormatHTML, Err: err}
	}
	name := file.Name()
	err = HTML(file, fig, HTMLOptions{})
	if cerr := file.Close(); err == nil && cerr != nil {
		err = &Error{Op: "write", Format: FormatHTML, Err: cerr}
	}
	if err != nil {
		return name, err
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	if err := openURL("file://" + filepath.ToSlash(abs)); err != nil {
		return name, &Error{Op: "show", Format: FormatHTML, Err: err}
	}
	return name, nil
}
