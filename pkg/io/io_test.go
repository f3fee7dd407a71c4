package io

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossDeviceFs fails every rename the way a rename across mounts does
type crossDeviceFs struct {
	afero.Fs
}

func (c crossDeviceFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: syscall.EXDEV}
}

func TestMediaFileSystem_Move(t *testing.T) {
	t.Run("same file system", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/show.s01e01.mkv", []byte("video"), 0o644))
		require.NoError(t, fs.MkdirAll("/dst", 0o755))

		mfs := New(fs)
		err := mfs.Move("/src/show.s01e01.mkv", "/dst/show.s01e01.mkv")
		require.NoError(t, err)

		assert.False(t, mfs.FileExists("/src/show.s01e01.mkv"))
		b, err := afero.ReadFile(fs, "/dst/show.s01e01.mkv")
		require.NoError(t, err)
		assert.Equal(t, "video", string(b))
	})

	t.Run("target exists", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/a.mkv", []byte("new"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/dst/a.mkv", []byte("old"), 0o644))

		mfs := New(fs)
		err := mfs.Move("/src/a.mkv", "/dst/a.mkv")
		assert.ErrorIs(t, err, ErrFileExists)

		b, err := afero.ReadFile(fs, "/dst/a.mkv")
		require.NoError(t, err)
		assert.Equal(t, "old", string(b))
		assert.True(t, mfs.FileExists("/src/a.mkv"))
	})

	t.Run("cross device falls back to copy", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/src/a.mkv", []byte("payload"), 0o644))
		require.NoError(t, mem.MkdirAll("/dst", 0o755))

		mfs := New(crossDeviceFs{Fs: mem})
		err := mfs.Move("/src/a.mkv", "/dst/a.mkv")
		require.NoError(t, err)

		assert.False(t, mfs.FileExists("/src/a.mkv"))
		b, err := afero.ReadFile(mem, "/dst/a.mkv")
		require.NoError(t, err)
		assert.Equal(t, "payload", string(b))
	})

	t.Run("missing source", func(t *testing.T) {
		mfs := New(afero.NewMemMapFs())
		err := mfs.Move("/nope.mkv", "/dst.mkv")
		assert.Error(t, err)
	})

	t.Run("os backed zero value", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.mp4")
		dst := filepath.Join(dir, "b.mp4")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

		mfs := &MediaFileSystem{}
		require.NoError(t, mfs.Move(src, dst))

		_, err := os.Stat(dst)
		assert.NoError(t, err)
		_, err = os.Stat(src)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMediaFileSystem_Copy(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.avi", []byte("12345"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/exists.avi", []byte(""), 0o600))
	mfs := New(fs)

	n, err := mfs.Copy("/a.avi", "/b.avi")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	_, err = mfs.Copy("/a.avi", "/exists.avi")
	assert.ErrorIs(t, err, ErrFileExists)
}

func TestMediaFileSystem_ReadDirAndWalk(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/b/x.mkv", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/root/a/y.mkv", nil, 0o644))
	mfs := New(fs)

	entries, err := mfs.ReadDir("/root")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name())
	assert.Equal(t, "b", entries[1].Name())

	var visited []string
	err = mfs.Walk("/root", func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(path))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/root", "/root/a", "/root/a/y.mkv", "/root/b", "/root/b/x.mkv"}, visited)
}
