// internal/storage/artifact.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/google/uuid"
)

// ArtifactStore is the artifact collaborator: rendered documents go in under
// a key, a retrievable locator comes back, and a written artifact must be
// readable immediately after Put returns.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// CertificateKey addresses a certificate artifact by its event and user.
func CertificateKey(eventID, userID uuid.UUID) string {
	return fmt.Sprintf("%s/%s.pdf", eventID, userID)
}

// FilesystemStore keeps artifacts under a root directory and serves locators
// relative to a base URL.
type FilesystemStore struct {
	root    string
	baseURL string
}

func NewFilesystemStore(root, baseURL string) (*FilesystemStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact root: %w", err)
	}
	return &FilesystemStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *FilesystemStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: creating artifact dir: %v", domain.ErrArtifactStorage, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing artifact: %v", domain.ErrArtifactStorage, err)
	}

	// Write-then-read-back contract.
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: artifact not readable after write: %v", domain.ErrArtifactStorage, err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *FilesystemStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrArtifactMissing
		}
		return nil, fmt.Errorf("%w: opening artifact: %v", domain.ErrArtifactStorage, err)
	}
	return f, nil
}

func (s *FilesystemStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: statting artifact: %v", domain.ErrArtifactStorage, err)
	}
	return true, nil
}

// path resolves key under root, rejecting traversal outside it.
func (s *FilesystemStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("%w: invalid artifact key %q", domain.ErrArtifactStorage, key)
	}
	return filepath.Join(s.root, clean), nil
}
