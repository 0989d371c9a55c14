package upload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, baseDir, rel string) string {
	t.Helper()

	path := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("asset"), 0o644))
	return path
}

func TestCleaner_Remove(t *testing.T) {
	baseDir := t.TempDir()
	cleaner := NewCleaner(baseDir, "/img")

	path := writeAsset(t, baseDir, "tours/old.jpg")

	cleaner.Remove("/img/tours/old.jpg")
	cleaner.Wait()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "referenced file should be removed")
}

func TestCleaner_Remove_MissingFileIsQuiet(t *testing.T) {
	cleaner := NewCleaner(t.TempDir(), "/img")

	// Must not retry or panic on files already gone.
	cleaner.Remove("/img/tours/never-existed.jpg")
	cleaner.Wait()
}

func TestCleaner_Remove_IgnoresEmptyAndForeignRefs(t *testing.T) {
	baseDir := t.TempDir()
	cleaner := NewCleaner(baseDir, "/img")

	path := writeAsset(t, baseDir, "tours/keep.jpg")

	cleaner.Remove("")
	cleaner.Remove("/static/other.jpg")
	cleaner.Wait()

	_, err := os.Stat(path)
	assert.NoError(t, err, "unrelated references must not cause deletions")
}

func TestCleaner_Remove_RejectsTraversal(t *testing.T) {
	baseDir := t.TempDir()
	outside := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	cleaner := NewCleaner(baseDir, "/img")
	cleaner.Remove("/img/../" + filepath.Base(filepath.Dir(outside)) + "/secret.txt")
	cleaner.Wait()

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside base dir must survive")
}

func TestCleaner_RemoveAll(t *testing.T) {
	baseDir := t.TempDir()
	cleaner := NewCleaner(baseDir, "/img")

	first := writeAsset(t, baseDir, "gallery/a.png")
	second := writeAsset(t, baseDir, "gallery/b.png")

	cleaner.RemoveAll([]string{"/img/gallery/a.png", "/img/gallery/b.png"})
	cleaner.Wait()

	_, err := os.Stat(first)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(second)
	assert.True(t, os.IsNotExist(err))
}

func TestCleaner_Sweep(t *testing.T) {
	baseDir := t.TempDir()
	cleaner := NewCleaner(baseDir, "/img")

	kept := writeAsset(t, baseDir, "tours/kept.jpg")
	orphan := writeAsset(t, baseDir, "tours/orphan.jpg")

	err := cleaner.Sweep(map[string]bool{"/img/tours/kept.jpg": true})
	require.NoError(t, err)

	_, statErr := os.Stat(kept)
	assert.NoError(t, statErr, "referenced file survives sweep")
	_, statErr = os.Stat(orphan)
	assert.True(t, os.IsNotExist(statErr), "orphan removed by sweep")
}

func TestCleaner_RetriesThenGivesUp(t *testing.T) {
	baseDir := t.TempDir()
	cleaner := NewCleaner(baseDir, "/img")
	cleaner.retryDelay = time.Millisecond

	// A directory full of files cannot be removed by os.Remove, forcing
	// every attempt to fail without touching the contents.
	writeAsset(t, baseDir, "tours/inner/file.jpg")

	cleaner.Remove("/img/tours/inner")
	cleaner.Wait()

	_, err := os.Stat(filepath.Join(baseDir, "tours/inner/file.jpg"))
	assert.NoError(t, err, "contents survive a failed best-effort removal")
}
