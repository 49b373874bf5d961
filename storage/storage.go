// Package storage persists uploaded image blobs on disk, grouped into
// buckets, and hands back the public URLs they are served under.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Store struct {
	baseDir    string
	publicBase string
}

// New returns a store rooted at baseDir. Objects land in
// baseDir/<bucket>/<name> and are addressed as publicBase/<bucket>/<name>.
func New(baseDir, publicBase string) *Store {
	return &Store{baseDir: baseDir, publicBase: publicBase}
}

// Put copies the blob into the bucket and returns its public URL.
func (s *Store) Put(bucket, name string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	return s.publicBase + "/" + bucket + "/" + name, nil
}
