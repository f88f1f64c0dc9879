package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// allowedExtensions is the image extension allow-list for uploads.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadService decides where uploaded images land and under what name.
type UploadService struct {
	dir string
}

// NewUploadService creates an UploadService rooted at dir, creating the
// upload directory if needed.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *UploadService) Dir() string {
	return s.dir
}

// Path returns the on-disk path for a stored filename.
func (s *UploadService) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// StoredName validates the extension against the allow-list
// (case-insensitive) and returns the sanitized filename with a timestamp
// suffix to avoid collisions between uploads sharing a name.
func (s *UploadService) StoredName(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileType, ext)
	}

	base := sanitizeFilename(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102150405"), ext), nil
}

// sanitizeFilename strips anything but ASCII letters, digits, dashes,
// underscores and dots, turning spaces into underscores. The result is safe
// to join under the upload directory.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
