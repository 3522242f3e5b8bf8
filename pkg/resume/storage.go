package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiskStore keeps uploaded binaries in a single directory. Stored names
// combine the ingestion timestamp with the original filename, so concurrent
// uploads never collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare storage: %w", err)
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return name, nil
}

func (s *DiskStore) Read(fileName string) ([]byte, error) {
	data, err := os.ReadFile(s.path(fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *DiskStore) Remove(fileName string) error {
	if err := os.Remove(s.path(fileName)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *DiskStore) Exists(fileName string) bool {
	_, err := os.Stat(s.path(fileName))
	return err == nil
}

// path keeps lookups inside the uploads directory regardless of the input.
func (s *DiskStore) path(fileName string) string {
	return filepath.Join(s.dir, filepath.Base(fileName))
}
