package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs as plain files under a single directory.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Disk{root: root}, nil
}

// path rejects names that would escape the root directory.
func (d *Disk) path(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean != filepath.Base(clean) || strings.HasPrefix(clean, ".") {
		return "", errors.New("storage: invalid file name")
	}
	return filepath.Join(d.root, clean), nil
}

func (d *Disk) Exists(_ context.Context, name string) (bool, error) {
	p, err := d.path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (d *Disk) Write(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (d *Disk) Read(_ context.Context, name string) ([]byte, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return b, err
}
