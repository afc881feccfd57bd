package output

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sink persists rendered pages.
type Sink interface {
	// WritePage stores the fragments of a page, in order, under fileName.
	WritePage(fileName string, fragments []string) error
}

// Dir writes every page as a file into a directory. The directory is created
// on the first write.
type Dir struct {
	path string
}

// NewDir returns a sink writing into path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the output directory.
func (d *Dir) Path() string {
	return d.path
}

// WritePage implements Sink.
func (d *Dir) WritePage(fileName string, fragments []string) error {
	if fileName == "" || filepath.Base(fileName) != fileName {
		return errors.Errorf("invalid page file name %q", fileName)
	}
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return errors.Wrapf(err, "could not create output directory %q", d.path)
	}

	target := filepath.Join(d.path, fileName)
	if err := ioutil.WriteFile(target, []byte(strings.Join(fragments, "")), 0644); err != nil {
		return errors.Wrapf(err, "could not write page %q", target)
	}
	logrus.Debugf("Page written to %q", target)
	return nil
}

// Page is a page kept in memory.
type Page struct {
	FileName string
	Content  string
}

// Memory keeps written pages in order.
type Memory struct {
	pages []Page
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// WritePage implements Sink.
func (m *Memory) WritePage(fileName string, fragments []string) error {
	m.pages = append(m.pages, Page{FileName: fileName, Content: strings.Join(fragments, "")})
	return nil
}

// Pages returns pages in the order they were written.
func (m *Memory) Pages() []Page {
	return append([]Page(nil), m.pages...)
}

// Page returns content of the named page.
func (m *Memory) Page(fileName string) (string, bool) {
	for _, p := range m.pages {
		if p.FileName == fileName {
			return p.Content, true
		}
	}
	return "", false
}
