package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore persists uploaded binary objects and hands back a public
// URL. Implementations must tolerate Remove on a key that is already gone.
type ObjectStore interface {
	// Save writes the object and returns its public URL.
	Save(filename string, r io.Reader) (string, error)
	// Remove deletes the object behind a URL previously returned by Save.
	Remove(url string) error
}

// DiskStore keeps objects on the local filesystem under Dir and serves
// them at BaseURL + "/" + name.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	// Random prefix keeps concurrent uploads of the same filename apart.
	name := uuid.NewString() + "-" + filepath.Base(filename)
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return s.BaseURL + "/" + name, nil
}

func (s *DiskStore) Remove(url string) error {
	name := filepath.Base(url)
	err := os.Remove(filepath.Join(s.Dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
