package io

import (
	"os"
	"path/filepath"
)

// FileIO is an interface for file io operations
type FileIO interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.FileInfo, error)
	Walk(root string, fn filepath.WalkFunc) error
	MkdirAll(name string, perm os.FileMode) error
	Move(source, target string) error
	Copy(source, target string) (int64, error)
	Remove(name string) error
	RemoveAll(name string) error
}
