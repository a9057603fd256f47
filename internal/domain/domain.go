// Package domain defines the extension API for scribe: domains group
// directives, cross-reference roles, and index generators around a shared
// object registry that lives for exactly one build.
package domain

// Object is one entity declared by a directive during the parse pass.
// Objects are immutable once registered and are rebuilt wholesale on the
// next build.
type Object struct {
	Name     string // Unique identifier within the domain, author-supplied.
	DispName string // Display name used in indices and link text.
	TypeTag  string // Object kind, e.g. "recipe".
	Document string // Page ID of the declaring document.
	Anchor   string // Element ID within the declaring document.
	Priority int    // Ordering key for sort stability.
}

// IndexEntry is one row of a generated index listing.
// The field layout matches what the page renderer consumes:
// (dispname, subtype, document, anchor, extra, qualifier, typetag).
type IndexEntry struct {
	DispName  string
	Subtype   int // Always 0: no sub-type grouping is supported.
	Document  string
	Anchor    string
	Extra     string
	Qualifier string
	TypeTag   string
}

// IndexGroup is one bucket of a generated index, keyed by the grouping
// value (first letter, attribute name, ...).
type IndexGroup struct {
	Key     string
	Entries []IndexEntry
}

// Index is a read-only view over a Registry producing a grouped listing.
// Generate must be a pure function of registry state: calling it twice on
// an unchanged registry yields identical output.
type Index interface {
	// Name is the short identifier used in output filenames.
	Name() string
	// LocalName is the human-readable index title.
	LocalName() string
	// Generate produces the grouped listing with bucket keys in ascending
	// order. An inconsistent registry is the only error condition.
	Generate(reg *Registry) ([]IndexGroup, error)
}

// Link is a resolved cross-reference pointing at a registered object.
type Link struct {
	Text     string // Display name of the target object.
	Document string
	Anchor   string
}

// Role resolves an inline cross-reference target to a link.
// A nil result means the target is unknown; the caller reports an
// unresolved-reference warning rather than failing the build.
type Role interface {
	Resolve(reg *Registry, target string) *Link
}

// BlockContext carries the authored location and the registry a directive
// operates on. RenderMarkdown converts a markdown fragment (usually the
// directive body) to HTML using the builder's renderer.
type BlockContext struct {
	Document string
	Line     int
	Registry *Registry

	RenderMarkdown func(src string) (string, error)
}

// Directive handles one authored block: a required argument, optional
// key/value options, and a free-form body. It returns the HTML fragment
// that replaces the block in the rendered page.
type Directive interface {
	Run(ctx *BlockContext, arg string, opts map[string]string, body string) (string, error)
}

// Domain is a named collection of directives, roles, and indices with
// shared semantics over one registry. Implementations are registered in a
// Table at startup.
type Domain interface {
	// Name is the domain prefix used in directive and role invocations.
	Name() string
	// Label is the human-readable domain title.
	Label() string
	Directives() map[string]Directive
	Roles() map[string]Role
	Indices() []Index
}
