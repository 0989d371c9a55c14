package upload

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Cleaner removes stored assets whose content records were updated or
// deleted. Removal is best-effort: failures are logged and retried a few
// times, but they never fail the operation that triggered them.
type Cleaner struct {
	baseDir      string
	publicPrefix string // e.g. "/img"
	retries      int
	retryDelay   time.Duration
	wg           sync.WaitGroup
}

func NewCleaner(baseDir, publicPrefix string) *Cleaner {
	return &Cleaner{
		baseDir:      baseDir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
		retries:      3,
		retryDelay:   time.Second,
	}
}

// Remove schedules deletion of the file behind a public reference like
// /img/tours/<name>.jpg. Safe to call with an empty or nil reference.
func (c *Cleaner) Remove(ref string) {
	path, ok := c.resolve(ref)
	if !ok {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.removeWithRetry(path)
	}()
}

// RemoveAll schedules deletion of every reference a deleted record held.
func (c *Cleaner) RemoveAll(refs []string) {
	for _, ref := range refs {
		c.Remove(ref)
	}
}

// Wait blocks until all scheduled deletions have finished. Used by tests and
// graceful shutdown.
func (c *Cleaner) Wait() {
	c.wg.Wait()
}

// Sweep removes every file under the base directory that is not in the
// referenced set. Intended for operator-driven reconciliation of orphans left
// behind by a crash between record commit and cleanup.
func (c *Cleaner) Sweep(referenced map[string]bool) error {
	return filepath.Walk(c.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(c.baseDir, path)
		if err != nil {
			return err
		}

		ref := c.publicPrefix + "/" + filepath.ToSlash(rel)
		if !referenced[ref] {
			if err := os.Remove(path); err != nil {
				log.Printf("ERROR [upload.Cleaner] sweep failed to remove %s: %v", path, err)
			}
		}
		return nil
	})
}

func (c *Cleaner) removeWithRetry(path string) {
	for attempt := 1; attempt <= c.retries; attempt++ {
		err := os.Remove(path)
		if err == nil || os.IsNotExist(err) {
			return
		}

		log.Printf("ERROR [upload.Cleaner] failed to remove %s (attempt %d/%d): %v", path, attempt, c.retries, err)
		if attempt < c.retries {
			time.Sleep(c.retryDelay)
		}
	}
}

// resolve maps a public reference onto the base directory, rejecting
// anything that escapes it.
func (c *Cleaner) resolve(ref string) (string, bool) {
	if ref == "" || !strings.HasPrefix(ref, c.publicPrefix+"/") {
		return "", false
	}

	rel := strings.TrimPrefix(ref, c.publicPrefix+"/")
	path := filepath.Join(c.baseDir, filepath.FromSlash(rel))

	absBase, err := filepath.Abs(c.baseDir)
	if err != nil {
		return "", false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		log.Printf("ERROR [upload.Cleaner] rejected reference outside base dir: %s", ref)
		return "", false
	}

	return absPath, true
}
