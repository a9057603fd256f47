package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// staging accumulates build output in a temp directory next to the final
// output directory, then swaps it into place so a failed build never
// leaves a half-written site behind.
type staging struct {
	dir       string
	final     string
	committed bool
}

func newStaging(outDir string) (*staging, error) {
	tmpDir := outDir + ".tmp"
	if err := os.RemoveAll(tmpDir); err != nil {
		return nil, fmt.Errorf("cleaning temp directory: %w", err)
	}
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	return &staging{dir: tmpDir, final: outDir}, nil
}

// Path returns the absolute staging path for a named output file, for
// writers that need to open the file themselves.
func (s *staging) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteFile writes one output file into the staging directory.
func (s *staging) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// CopyDir copies a static asset directory into the staging directory
// under the given name.
func (s *staging) CopyDir(src, name string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.dir, name, rel)
		if info.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		return copyFile(path, dst)
	})
}

// Commit replaces the final output directory with the staged one.
func (s *staging) Commit() error {
	if err := os.RemoveAll(s.final); err != nil {
		return fmt.Errorf("removing previous output: %w", err)
	}
	if err := os.Rename(s.dir, s.final); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	s.committed = true
	return nil
}

// Discard removes the staging directory. Safe to call after Commit.
func (s *staging) Discard() {
	if !s.committed {
		os.RemoveAll(s.dir)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
