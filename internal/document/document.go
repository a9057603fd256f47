// Package document loads authored pages and splits their bodies into
// markdown runs, directive blocks, and inline cross-reference roles.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoPages indicates the source directory contains no *.md pages.
var ErrNoPages = errors.New("no pages found in source directory")

// Meta is parsed from each page's TOML frontmatter.
type Meta struct {
	Title string `toml:"title"`
	ID    string `toml:"id"` // Defaults to the filename stem.
}

// Page is one fully loaded authored document.
type Page struct {
	Meta       Meta
	Body       string // Markdown body after the +++ block.
	SourceFile string // Relative path for error context.
	DocID      string // Identifier used for links and the output filename.
}

// LoadDir reads every *.md file in dir, in filename order, parsing the
// +++ TOML frontmatter of each. Subdirectories are not descended into.
func LoadDir(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}

	var pages []Page
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		page, err := parsePageFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		page.SourceFile = e.Name()
		if page.DocID == "" {
			page.DocID = strings.TrimSuffix(e.Name(), ".md")
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return pages, nil
}

// parsePageFile reads a markdown file with +++ TOML frontmatter.
func parsePageFile(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, err
	}

	frontmatter, body, err := splitFrontmatter(string(data))
	if err != nil {
		return Page{}, err
	}

	var meta Meta
	if err := toml.Unmarshal([]byte(frontmatter), &meta); err != nil {
		return Page{}, fmt.Errorf("parsing TOML frontmatter: %w", err)
	}

	return Page{
		Meta:  meta,
		Body:  strings.TrimSpace(body),
		DocID: meta.ID,
	}, nil
}

// splitFrontmatter splits content on +++ delimiters.
// Expected format:
//
//	+++
//	<TOML>
//	+++
//	<body>
func splitFrontmatter(content string) (string, string, error) {
	const delim = "+++"

	content = strings.TrimLeft(content, " \t\r\n")

	if !strings.HasPrefix(content, delim) {
		return "", "", fmt.Errorf("file does not start with +++ frontmatter delimiter")
	}

	rest := content[len(delim):]
	idx := strings.Index(rest, delim)
	if idx < 0 {
		return "", "", fmt.Errorf("missing closing +++ frontmatter delimiter")
	}

	return rest[:idx], rest[idx+len(delim):], nil
}
