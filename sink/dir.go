package sink

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Dir writes files under a local root directory. Each file is written to
// a temporary name first and renamed into place, so a file is either
// complete or absent.
type Dir struct {
	Root string
}

func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

func (d *Dir) path(p string) string {
	return filepath.Join(d.Root, filepath.FromSlash(p))
}

func (d *Dir) MkdirAll(dir string) error {
	return errors.WithStack(os.MkdirAll(d.path(dir), 0755))
}

func (d *Dir) WriteFile(p string, data []byte) error {
	final := d.path(p)
	tmp := filepath.Join(filepath.Dir(final), "."+uuid.New().String()+".tmp")

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return errors.WithStack(err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "rename into %s", final)
	}
	return nil
}

func (d *Dir) String() string {
	return d.Root
}
