package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrAssetWrite      = errors.New("failed to write asset")
)

// AssetKind distinguishes the two asset slots a section carries. Each kind
// owns its extension allow-list.
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

var allowedExtensions = map[AssetKind]map[string]bool{
	AssetImage: {"png": true, "jpg": true, "jpeg": true, "gif": true, "svg": true},
	AssetVideo: {"mp4": true, "webm": true, "ogg": true},
}

// AssetService stores and removes uploaded files under a single upload root.
type AssetService struct {
	uploadDir string
}

// NewAssetService returns an AssetService rooted at uploadDir.
func NewAssetService(uploadDir string) *AssetService {
	return &AssetService{uploadDir: uploadDir}
}

// ValidateExtension reports whether the filename's extension is allowed for
// the given kind. The check is case-insensitive on the last dot-segment;
// filenames without an extension are rejected.
func (s *AssetService) ValidateExtension(filename string, kind AssetKind) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	return allowedExtensions[kind][ext]
}

// Store writes the uploaded bytes under a collision-resistant name derived
// from a fresh UUID and the sanitized original filename, and returns that
// name relative to the upload root.
func (s *AssetService) Store(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(originalName))
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}

	return name, nil
}

// Remove deletes a stored asset by its relative name. A missing file is not
// an error; any other failure is logged and swallowed, since a stale file on
// disk is recoverable.
func (s *AssetService) Remove(name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}

	path := filepath.Join(s.uploadDir, filepath.Base(trimmed))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove asset %s: %v", path, err)
	}
}

// Path resolves a stored asset name to its on-disk location.
func (s *AssetService) Path(name string) string {
	return filepath.Join(s.uploadDir, filepath.Base(name))
}

// sanitizeFilename strips directory components and anything outside
// [A-Za-z0-9._-] from an uploaded filename so it is safe to join under the
// upload root.
func sanitizeFilename(name string) string {
	base := name
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}
