// Package sink provides output destinations for generated artifacts.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is one artifact to write: a relative slash-separated path and its
// content.
type File struct {
	Path    string
	Content []byte
}

// OutputSink receives generated file content. Paths are relative,
// slash-separated, and clean; the sink decides the actual location.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error

	// WriteFiles writes a set of files as one unit: when it returns an
	// error, no destination file has been replaced.
	WriteFiles(ctx context.Context, files []File) error
}

// FilesystemSink writes to a directory on the local filesystem. Each write
// goes to a temp file first and is renamed into place, so a reader never
// observes a half-written artifact and a failed run leaves the previous
// artifact untouched.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default 0644).
	Mode os.FileMode
}

// NewFilesystemSink creates a FilesystemSink writing under root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644}
}

// stage validates the path, creates parent directories, and writes content
// to a temp file next to the destination. The caller renames or removes it.
func (s *FilesystemSink) stage(path string, content []byte) (tempPath, fullPath string, err error) {
	if err := ValidatePath(path); err != nil {
		return "", "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	fullPath = filepath.Join(s.Root, filepath.FromSlash(path))

	// Re-check after joining: a clean relative path cannot escape, but the
	// root itself may be weird.
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve root directory: %w", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return "", "", fmt.Errorf("path escapes root directory: %q", path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create directories: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tempFile, err := os.CreateTemp(dir, ".pmxtgen-*.tmp")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath = tempFile.Name()

	// Leftover temp files keep a predictable prefix for manual cleanup;
	// removal errors on the failure path are not worth reporting over the
	// original error.
	cleanup := func() { _ = os.Remove(tempPath) }

	_, writeErr := tempFile.Write(content)
	closeErr := tempFile.Close()
	if writeErr != nil {
		cleanup()
		return "", "", fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr != nil {
		cleanup()
		return "", "", fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	if err := os.Chmod(tempPath, mode); err != nil {
		cleanup()
		return "", "", fmt.Errorf("failed to set file mode: %w", err)
	}

	return tempPath, fullPath, nil
}

// WriteFile writes content to path within the root directory, creating
// parent directories as needed.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tempPath, fullPath, err := s.stage(path, content)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	if err := os.Rename(tempPath, fullPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteFiles stages every file to a temp first and renames only after all
// staging succeeded, so a failure on any file leaves every destination
// untouched.
func (s *FilesystemSink) WriteFiles(ctx context.Context, files []File) error {
	type stagedFile struct {
		temp, full string
	}
	staged := make([]stagedFile, 0, len(files))
	cleanup := func() {
		for _, f := range staged {
			_ = os.Remove(f.temp)
		}
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		temp, full, err := s.stage(f.Path, f.Content)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, stagedFile{temp, full})
	}

	for i, f := range staged {
		if err := os.Rename(f.temp, f.full); err != nil {
			for _, rest := range staged[i:] {
				_ = os.Remove(rest.temp)
			}
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
	}
	return nil
}

// MemorySink stores generated files in memory. All operations are
// safe for concurrent use.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates a MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile writes content to the in-memory store.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	return s.WriteFiles(ctx, []File{{Path: path, Content: content}})
}

// WriteFiles writes a set of files under one lock; every path is validated
// before the first write, so a bad entry leaves the store untouched.
func (s *MemorySink) WriteFiles(ctx context.Context, files []File) error {
	for _, f := range files {
		if err := ValidatePath(f.Path); err != nil {
			return fmt.Errorf("invalid path %q: %w", f.Path, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range files {
		cp := make([]byte, len(f.Content))
		copy(cp, f.Content)
		s.files[f.Path] = cp
	}
	return nil
}

// Files returns a copy of all written files.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		cp := make([]byte, len(content))
		copy(cp, content)
		result[path] = cp
	}
	return result
}

// Get returns the content of a single file, or nil if not found.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

// Reset clears all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}

// ValidatePath checks that a path is acceptable for output: relative,
// slash-separated, clean, and without traversal components.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) {
		return errors.New("absolute paths not allowed")
	}
	// Windows drive prefixes count as absolute even on Unix.
	if len(path) >= 2 && path[1] == ':' && ((path[0] >= 'A' && path[0] <= 'Z') || (path[0] >= 'a' && path[0] <= 'z')) {
		return errors.New("absolute paths not allowed")
	}
	if strings.Contains(path, "..") {
		return errors.New("path traversal not allowed")
	}

	cleaned := filepath.Clean(filepath.ToSlash(path))
	if cleaned != filepath.ToSlash(path) {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}
