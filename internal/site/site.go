// Package site loads and validates the site.toml manifest at the root of
// a documentation source directory.
package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Sentinel errors for manifest loading and validation.
var (
	// ErrNoManifest indicates no site.toml was found in the source directory.
	ErrNoManifest = errors.New("site.toml not found in source directory")
	// ErrMissingField indicates a required manifest field is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownExtension indicates the manifest enables an extension that
	// is not compiled into the builder.
	ErrUnknownExtension = errors.New("unknown extension")
)

// Manifest is parsed from site.toml in the source directory root.
type Manifest struct {
	Site Info `toml:"site"`
	HTML HTML `toml:"html"`
}

// Info holds the site's identity fields and the list of enabled
// extensions. Extensions lives in the [site] table so it can be written
// anywhere inside it; a top-level key would have to precede the first
// table header to parse at all.
type Info struct {
	Name       string   `toml:"name"`
	Version    string   `toml:"version"`
	Author     string   `toml:"author"`
	Theme      string   `toml:"theme"`
	Extensions []string `toml:"extensions"`
}

// HTML holds output options: assets copied verbatim and extra stylesheet
// links injected into every page.
type HTML struct {
	Logo       string   `toml:"logo"`
	Favicon    string   `toml:"favicon"`
	StaticDirs []string `toml:"static_dirs"`
	CSSFiles   []string `toml:"css_files"`
}

// Load reads and parses site.toml from dir.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "site.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("reading site.toml: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing site.toml: %w", err)
	}
	return &m, nil
}

// Validate checks the manifest for structural correctness. known is the
// set of extension names compiled into the builder.
func Validate(m *Manifest, known map[string]bool) []error {
	var errs []error

	if m.Site.Name == "" {
		errs = append(errs, fmt.Errorf("%w: site.name", ErrMissingField))
	}
	for _, ext := range m.Site.Extensions {
		if ext == "" {
			errs = append(errs, fmt.Errorf("%w: site.extensions entries must be non-empty strings", ErrMissingField))
			continue
		}
		if !known[ext] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownExtension, ext))
		}
	}
	return errs
}
