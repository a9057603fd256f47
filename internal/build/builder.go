// Package build drives a full site build: load the manifest, parse pages
// and run directives to populate the domain registries, resolve
// cross-references, generate indices, and write the rendered site.
package build

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/steppi/scribe/internal/document"
	"github.com/steppi/scribe/internal/domain"
	"github.com/steppi/scribe/internal/inventory"
	"github.com/steppi/scribe/internal/log"
	"github.com/steppi/scribe/internal/site"
)

// Warning is a non-fatal problem found during a build: duplicate objects,
// unresolved cross-references, unknown directives, per-directive errors.
type Warning struct {
	Document string // Source file or page ID.
	Line     int    // 1-based, 0 when not tied to a line.
	Msg      string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.Document, w.Line, w.Msg)
	}
	if w.Document != "" {
		return fmt.Sprintf("%s: %s", w.Document, w.Msg)
	}
	return w.Msg
}

// Result summarizes a completed build or check.
type Result struct {
	SiteName string
	Pages    int
	Objects  int
	Warnings []Warning
}

// dispatch binds a directive name to its handler and owning domain.
// Domain-less directives have an empty domain and operate on no registry.
type dispatch struct {
	domain  string
	handler domain.Directive
}

// Builder owns the extension tables and per-build registries. A Builder
// is good for any number of sequential builds; each build reconstructs
// every registry from scratch.
type Builder struct {
	table      *domain.Table
	directives map[string]dispatch
	registries map[string]*domain.Registry
	enabled    map[string]bool
	renderer   *Renderer
	logger     *slog.Logger

	warnings []Warning
}

// New creates a Builder with no extensions enabled. Built-in extensions
// named by the site manifest are enabled on first build.
func New() *Builder {
	return &Builder{
		table:      domain.NewTable(),
		directives: make(map[string]dispatch),
		registries: make(map[string]*domain.Registry),
		enabled:    make(map[string]bool),
		renderer:   NewRenderer(),
		logger:     log.ForComponent("build"),
	}
}

// RegisterDomain enables a domain: its directives, roles, and indices.
// Directive names share one flat dispatch namespace; a collision with a
// previously registered directive is an error.
func (b *Builder) RegisterDomain(d domain.Domain) error {
	if err := b.table.Register(d); err != nil {
		return err
	}
	b.registries[d.Name()] = domain.NewRegistry(d.Name())
	for name, handler := range d.Directives() {
		if err := b.registerDispatch(name, dispatch{domain: d.Name(), handler: handler}); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDirective enables a domain-less directive such as helloworld.
func (b *Builder) RegisterDirective(name string, handler domain.Directive) error {
	return b.registerDispatch(name, dispatch{handler: handler})
}

func (b *Builder) registerDispatch(name string, d dispatch) error {
	if name == "" {
		return fmt.Errorf("directive name cannot be empty")
	}
	if _, exists := b.directives[name]; exists {
		return fmt.Errorf("directive %q already registered", name)
	}
	b.directives[name] = d
	return nil
}

// Registry returns the registry for a domain. It exists for index and
// inventory consumers; directive handlers receive their registry through
// the block context instead.
func (b *Builder) Registry(name string) (*domain.Registry, bool) {
	reg, ok := b.registries[name]
	return reg, ok
}

// Build compiles the site at srcDir and writes the rendered output to
// outDir atomically. Warnings are reported in the Result, not as errors;
// only structural problems (bad manifest, unparsable page, inconsistent
// registry) fail the build.
func (b *Builder) Build(srcDir, outDir string) (*Result, error) {
	c, err := b.compile(srcDir)
	if err != nil {
		return nil, err
	}

	staging, err := newStaging(outDir)
	if err != nil {
		return nil, err
	}
	defer staging.Discard()

	for _, page := range c.pages {
		data, err := b.renderer.RenderPage(PageData{
			SiteName: c.manifest.Site.Name,
			Version:  c.manifest.Site.Version,
			Title:    page.title,
			CSSFiles: c.manifest.HTML.CSSFiles,
			Nav:      c.nav,
			Body:     page.html,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", page.docID, err)
		}
		if err := staging.WriteFile(page.docID+".html", data); err != nil {
			return nil, err
		}
	}

	for _, idx := range c.indices {
		body, err := b.renderer.RenderIndexBody(idx.localName, idx.groups)
		if err != nil {
			return nil, fmt.Errorf("rendering %s index: %w", idx.name, err)
		}
		data, err := b.renderer.RenderPage(PageData{
			SiteName: c.manifest.Site.Name,
			Version:  c.manifest.Site.Version,
			Title:    idx.localName,
			CSSFiles: c.manifest.HTML.CSSFiles,
			Nav:      c.nav,
			Body:     body,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering %s index: %w", idx.name, err)
		}
		if err := staging.WriteFile(idx.name+"-index.html", data); err != nil {
			return nil, err
		}
	}

	if err := b.writeInventory(staging.Path(inventory.Filename)); err != nil {
		return nil, fmt.Errorf("writing object inventory: %w", err)
	}

	for _, dir := range c.manifest.HTML.StaticDirs {
		if err := staging.CopyDir(filepath.Join(srcDir, dir), dir); err != nil {
			return nil, fmt.Errorf("copying static dir %s: %w", dir, err)
		}
	}

	if err := staging.Commit(); err != nil {
		return nil, err
	}

	b.logger.Info("build complete", "pages", len(c.pages), "objects", c.objects, "warnings", len(b.warnings))
	return c.result(b.warnings), nil
}

// Check compiles the site without writing any output. It is the
// dry-run behind `scribe validate`.
func (b *Builder) Check(srcDir string) (*Result, error) {
	c, err := b.compile(srcDir)
	if err != nil {
		return nil, err
	}
	return c.result(b.warnings), nil
}

// compiledPage is one page after directive execution and role resolution.
type compiledPage struct {
	docID string
	title string
	html  string
}

// compiledIndex is one generated index, ready to render.
type compiledIndex struct {
	name      string
	localName string
	groups    []domain.IndexGroup
}

type compilation struct {
	manifest *site.Manifest
	pages    []compiledPage
	indices  []compiledIndex
	nav      []NavLink
	objects  int
}

func (c *compilation) result(warnings []Warning) *Result {
	return &Result{
		SiteName: c.manifest.Site.Name,
		Pages:    len(c.pages),
		Objects:  c.objects,
		Warnings: warnings,
	}
}

// compile runs the two build phases: a strictly sequential parse pass
// that executes directives and populates the registries, then a
// read-only pass that resolves roles and generates indices.
func (b *Builder) compile(srcDir string) (*compilation, error) {
	b.warnings = nil
	b.resetRegistries()

	manifest, err := site.Load(srcDir)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool)
	for _, name := range BuiltinNames() {
		known[name] = true
	}
	if errs := site.Validate(manifest, known); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := b.enableExtensions(manifest.Site.Extensions); err != nil {
		return nil, err
	}

	pages, err := document.LoadDir(srcDir)
	if err != nil {
		return nil, err
	}

	// Phase 1: sequential registration. One directive at a time, in page
	// filename order, so registration order is deterministic.
	rendered := make([]compiledPage, 0, len(pages))
	for _, page := range pages {
		html, err := b.runPage(page)
		if err != nil {
			return nil, fmt.Errorf("processing %s: %w", page.SourceFile, err)
		}
		rendered = append(rendered, compiledPage{docID: page.DocID, title: page.Meta.Title, html: html})
	}

	// Phase 2: read-only. Roles and indices never mutate the registries.
	for i := range rendered {
		rendered[i].html = b.resolveRoles(rendered[i].docID, rendered[i].html)
	}

	var indices []compiledIndex
	objects := 0
	for _, name := range b.table.Names() {
		d, _ := b.table.Get(name)
		reg := b.registries[name]
		objects += len(reg.Objects())
		for _, idx := range d.Indices() {
			groups, err := idx.Generate(reg)
			if err != nil {
				return nil, fmt.Errorf("generating %s index: %w", idx.Name(), err)
			}
			indices = append(indices, compiledIndex{name: idx.Name(), localName: idx.LocalName(), groups: groups})
		}
	}

	return &compilation{
		manifest: manifest,
		pages:    rendered,
		indices:  indices,
		nav:      navLinks(rendered, indices),
		objects:  objects,
	}, nil
}

// runPage executes every directive block in a page and assembles the
// page's HTML. Directive failures are downgraded to warnings: the block's
// registration is lost but the rest of the build proceeds.
func (b *Builder) runPage(page document.Page) (string, error) {
	segments, err := document.Split(page.Body)
	if err != nil {
		return "", err
	}

	var out []byte
	for _, seg := range segments {
		if seg.Block == nil {
			rendered, err := b.renderer.RenderMarkdown(seg.Text)
			if err != nil {
				return "", err
			}
			out = append(out, rendered...)
			continue
		}

		block := seg.Block
		d, ok := b.directives[block.Directive]
		if !ok {
			b.warn(page.SourceFile, block.Line, fmt.Sprintf("unknown directive %q", block.Directive))
			rendered, err := b.renderer.RenderMarkdown(block.Raw)
			if err != nil {
				return "", err
			}
			out = append(out, rendered...)
			continue
		}

		ctx := &domain.BlockContext{
			Document:       page.DocID,
			Line:           block.Line,
			Registry:       b.registries[d.domain],
			RenderMarkdown: b.renderer.RenderMarkdown,
		}
		fragment, err := d.handler.Run(ctx, block.Arg, block.Options, block.Body)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrDuplicateObject):
				b.warn(page.SourceFile, block.Line, fmt.Sprintf("%v; keeping first registration", err))
			default:
				b.warn(page.SourceFile, block.Line, err.Error())
			}
			out = append(out, "<!-- scribe: directive failed -->\n"...)
			continue
		}
		out = append(out, fragment...)
	}
	return string(out), nil
}

// codeSpanPattern matches rendered <code> elements, which keep their
// authored text verbatim: role syntax inside them is content, not a
// reference.
var codeSpanPattern = regexp.MustCompile(`(?s)<code[^>]*>.*?</code>`)

// resolveRoles rewrites inline {domain:role:target} references into
// links. The input is rendered HTML, so the captured target is unescaped
// back to the authored text before lookup. Every failure mode degrades
// to a warning plus an unresolved-link marker; a bad reference never
// fails the build.
func (b *Builder) resolveRoles(docID, page string) string {
	return replaceOutsideCode(page, func(chunk string) string {
		return document.ReplaceRoles(chunk, func(ref document.Ref) string {
			target := html.UnescapeString(ref.Target)
			d, ok := b.table.Get(ref.Domain)
			if !ok {
				b.warn(docID, 0, fmt.Sprintf("reference to unknown domain %q", ref.Domain))
				return unresolvedMarker(target)
			}
			role, ok := d.Roles()[ref.Role]
			if !ok {
				b.warn(docID, 0, fmt.Sprintf("unknown role %q in domain %q", ref.Role, ref.Domain))
				return unresolvedMarker(target)
			}
			link := role.Resolve(b.registries[ref.Domain], target)
			if link == nil {
				b.warn(docID, 0, fmt.Sprintf("unresolved reference %s:%s:%s", ref.Domain, ref.Role, target))
				return unresolvedMarker(target)
			}
			return b.renderer.RenderLink(link)
		})
	})
}

// replaceOutsideCode applies fn to the stretches of s between code
// spans, leaving the code spans themselves untouched.
func replaceOutsideCode(s string, fn func(string) string) string {
	var out strings.Builder
	last := 0
	for _, loc := range codeSpanPattern.FindAllStringIndex(s, -1) {
		out.WriteString(fn(s[last:loc[0]]))
		out.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	out.WriteString(fn(s[last:]))
	return out.String()
}

// writeInventory persists every registry into the build's object
// inventory database.
func (b *Builder) writeInventory(path string) error {
	store, err := inventory.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, name := range b.table.Names() {
		if err := store.Replace(b.registries[name]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) resetRegistries() {
	for name := range b.registries {
		b.registries[name] = domain.NewRegistry(name)
	}
}

func (b *Builder) warn(doc string, line int, msg string) {
	b.warnings = append(b.warnings, Warning{Document: doc, Line: line, Msg: msg})
	b.logger.Warn(msg, "document", doc, "line", line)
}

// navLinks builds the shared page navigation: every page by title, then
// every index.
func navLinks(pages []compiledPage, indices []compiledIndex) []NavLink {
	var nav []NavLink
	for _, p := range pages {
		title := p.title
		if title == "" {
			title = p.docID
		}
		nav = append(nav, NavLink{Title: title, Href: p.docID + ".html"})
	}
	sorted := make([]compiledIndex, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, idx := range sorted {
		nav = append(nav, NavLink{Title: idx.localName, Href: idx.name + "-index.html"})
	}
	return nav
}
