package io

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

var (
	_ FileIO = (*MediaFileSystem)(nil)

	ErrFileExists = fmt.Errorf("file already exists")
)

// MediaFileSystem is the default implementation of file io. It delegates to Fs,
// or to the os package when Fs is nil.
type MediaFileSystem struct {
	Fs afero.Fs
}

// New returns a MediaFileSystem backed by fs
func New(fs afero.Fs) *MediaFileSystem {
	return &MediaFileSystem{Fs: fs}
}

func (o *MediaFileSystem) fs() afero.Fs {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o.Fs
}

// Stat is a wrapper around Fs.Stat
func (o *MediaFileSystem) Stat(name string) (os.FileInfo, error) {
	return o.fs().Stat(name)
}

// ReadDir returns the entries of a directory sorted by name
func (o *MediaFileSystem) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(o.fs(), name)
}

// Walk walks the tree rooted at root in lexical order, calling fn for every file and directory
func (o *MediaFileSystem) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(o.fs(), root, fn)
}

// MkdirAll is a wrapper around Fs.MkdirAll
func (o *MediaFileSystem) MkdirAll(name string, perm os.FileMode) error {
	return o.fs().MkdirAll(name, perm)
}

// Remove is a wrapper around Fs.Remove
func (o *MediaFileSystem) Remove(name string) error {
	return o.fs().Remove(name)
}

// RemoveAll is a wrapper around Fs.RemoveAll
func (o *MediaFileSystem) RemoveAll(name string) error {
	return o.fs().RemoveAll(name)
}

// Move renames source to target. The target must not exist yet. When source and target
// live on different devices the file is copied and the source removed.
func (o *MediaFileSystem) Move(source, target string) error {
	if o.FileExists(target) {
		return ErrFileExists
	}

	err := o.fs().Rename(source, target)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if _, err := o.Copy(source, target); err != nil {
		return fmt.Errorf("cross device copy: %w", err)
	}

	return o.fs().Remove(source)
}

// Copy copies a file from a source path to a target path. The target file must not exist yet.
func (o *MediaFileSystem) Copy(source, target string) (int64, error) {
	sourceFile, err := o.fs().Open(source)
	if err != nil {
		return 0, err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return 0, err
	}

	targetFile, err := o.fs().OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return 0, ErrFileExists
		}
		return 0, err
	}

	n, err := io.Copy(targetFile, sourceFile)
	if closeErr := targetFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = o.fs().Remove(target)
		return n, err
	}

	return n, nil
}

func (o *MediaFileSystem) FileExists(path string) bool {
	_, err := o.Stat(path)
	return err == nil
}
