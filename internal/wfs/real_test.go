package wfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReal_OpenForCreate_FailsIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")

	fsys := NewReal()

	f, err := fsys.OpenForCreate(path, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = fsys.OpenForCreate(path, 0o644)
	require.Error(t, err)
	require.True(t, os.IsExist(err))
}

func TestReal_OpenForRead_OpenForWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	fsys := NewReal()

	rf, err := fsys.OpenForRead(path)
	require.NoError(t, err)
	defer rf.Close()

	buf := make([]byte, 5)
	n, err := rf.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf[:n]))

	_, err = rf.Write([]byte("x"))
	require.Error(t, err, "a read-only handle must reject writes")

	wf, err := fsys.OpenForWrite(path)
	require.NoError(t, err)
	defer wf.Close()

	_, err = wf.Write([]byte("!"))
	require.NoError(t, err)
}

func TestReal_Stat_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	fsys := NewReal()

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(3), info.Size())

	require.NoError(t, fsys.Remove(path))

	_, err = fsys.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestReal_Rename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("stale"), 0o644))

	fsys := NewReal()
	require.NoError(t, fsys.Rename(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))

	_, err = os.Stat(src)
	require.True(t, os.IsNotExist(err))
}
