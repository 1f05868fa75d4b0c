package infra

// imagestore.go — disk-backed product image storage.
// Uploaded files are written under baseDir/products/ with a collision-resistant
// uuid name and served statically at {publicBaseURL}/uploads/products/{name}.

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowed image extensions, lowercased. Matches what the admin form accepts.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// ImageStore persists product images on disk and resolves their public URLs.
type ImageStore struct {
	baseDir       string
	publicBaseURL string
}

func NewImageStore(baseDir, publicBaseURL string) (*ImageStore, error) {
	dir := filepath.Join(baseDir, "products")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("imagestore: create storage dir: %w", err)
	}
	return &ImageStore{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Save writes the upload to disk under a generated name and returns the public
// URL. The original filename only contributes its extension; everything else
// is replaced so concurrent uploads can never collide.
func (s *ImageStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("imagestore: unsupported file type %q", ext)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(s.baseDir, "products", name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("imagestore: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst) // never leave a half-written file behind
		return "", fmt.Errorf("imagestore: write file: %w", err)
	}

	return s.publicBaseURL + "/uploads/products/" + name, nil
}

// Remove deletes the file a public URL points at. URLs outside this store's
// namespace (or with traversal in them) are rejected rather than resolved.
func (s *ImageStore) Remove(publicURL string) error {
	prefix := s.publicBaseURL + "/uploads/products/"
	if !strings.HasPrefix(publicURL, prefix) {
		return fmt.Errorf("imagestore: url %q not managed by this store", publicURL)
	}
	name := strings.TrimPrefix(publicURL, prefix)
	if name == "" || name != path.Base(name) {
		return fmt.Errorf("imagestore: invalid file name %q", name)
	}
	return os.Remove(filepath.Join(s.baseDir, "products", name))
}

// BaseDir exposes the storage root so the router can mount it statically.
func (s *ImageStore) BaseDir() string { return s.baseDir }
