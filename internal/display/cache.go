package display

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
)

// ArtCache keeps rendered ANSI art on disk so repeat draws skip the
// download and resize
type ArtCache struct {
	Dir string
}

// NewArtCache returns a cache under baseDir/ansi_cache
func NewArtCache(baseDir string) *ArtCache {
	return &ArtCache{Dir: filepath.Join(baseDir, "ansi_cache")}
}

func (c *ArtCache) path(imageURL string, width, height int, upsideDown bool) string {
	key := fmt.Sprintf("%s|%dx%d|%t", imageURL, width, height, upsideDown)
	return filepath.Join(c.Dir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
}

// Load returns cached art, if any
func (c *ArtCache) Load(imageURL string, width, height int, upsideDown bool) (string, bool) {
	if c == nil || c.Dir == "" {
		return "", false
	}
	data, err := os.ReadFile(c.path(imageURL, width, height, upsideDown))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Store writes art to the cache, creating the directory if needed
func (c *ArtCache) Store(imageURL string, width, height int, upsideDown bool, art string) error {
	if c == nil || c.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path(imageURL, width, height, upsideDown), []byte(art), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to cache: %w", err)
	}
	return nil
}
