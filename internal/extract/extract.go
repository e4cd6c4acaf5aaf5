// Package extract turns a Markdown document into a source file made of its
// fenced code blocks.
package extract

import (
	"io/fs"

	"github.com/ezerfernandes/md2py/internal/mdcode"
)

const (
	// DefaultLang is the fence tag extracted when none is configured.
	DefaultLang = "python"

	docExt    = ".md"
	sourceExt = ".py"
	separator = "\n"

	fileMode fs.FileMode = 0o644
)

// Extractor copies the code blocks tagged with Lang from <basename>.md into
// <basename>.py.
type Extractor struct {
	Lang string
	FS   FS
}

// New returns an Extractor for python blocks on fsys.
func New(fsys FS) *Extractor {
	return &Extractor{Lang: DefaultLang, FS: fsys}
}

// Paths returns the document and source file names derived from basename.
func Paths(basename string) (string, string) {
	return basename + docExt, basename + sourceExt
}

// Extract reads <basename>.md, joins the bodies of its tagged code blocks with
// a newline and writes them to <basename>.py, truncating any existing file.
// Nothing is written when the document cannot be read. Failures are returned
// as *[FileAccessError].
func (e *Extractor) Extract(basename string) error {
	input, output := Paths(basename)

	src, err := fs.ReadFile(e.FS, input)
	if err != nil {
		return newFileAccessError("read", input, err)
	}

	code := mdcode.Unfence(src, e.Lang).Join(separator)

	if err := e.FS.WriteFile(output, code, fileMode); err != nil {
		return newFileAccessError("write", output, err)
	}

	return nil
}
