package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ShareService copies generated quotation PDFs into the share directory the
// mobile client (or a sync agent) picks them up from.
// Implements ShareServiceInterface.
type ShareService struct {
	shareDir string
}

// NewShareService creates a new ShareService
func NewShareService(shareDir string) *ShareService {
	return &ShareService{shareDir: shareDir}
}

// Ensure ShareService implements ShareServiceInterface
var _ ShareServiceInterface = (*ShareService)(nil)

// Share copies the file into the share directory under the given title and
// returns the shared path. The source file is left in place so a failed
// share can be retried.
func (s *ShareService) Share(filePath, title string) (string, error) {
	log.Printf("📤 Share: %s (title: %s)", filePath, title)

	if err := os.MkdirAll(s.shareDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create share directory: %w", err)
	}

	src, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF for sharing: %w", err)
	}
	defer src.Close()

	sharedPath := filepath.Join(s.shareDir, filepath.Base(filePath))
	dst, err := os.Create(sharedPath)
	if err != nil {
		return "", fmt.Errorf("failed to create shared file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy PDF to share directory: %w", err)
	}

	log.Printf("✅ Share: PDF available at %s", sharedPath)
	return sharedPath, nil
}
