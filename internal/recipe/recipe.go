// Package recipe implements the sample "recipe" documentation domain: a
// directive that declares recipes with ingredient lists, two generated
// indices (by recipe name and by ingredient), and a cross-reference role.
package recipe

import (
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/steppi/scribe/internal/domain"
)

// TypeTag is the object kind registered for every recipe.
const TypeTag = "recipe"

// Domain is the recipe domain. It owns no state of its own; all per-build
// state lives in the registry the builder passes in.
type Domain struct{}

// New returns the recipe domain.
func New() *Domain { return &Domain{} }

func (*Domain) Name() string  { return "recipe" }
func (*Domain) Label() string { return "Recipe Sample" }

func (*Domain) Directives() map[string]domain.Directive {
	return map[string]domain.Directive{
		"recipe": directive{},
	}
}

func (*Domain) Roles() map[string]domain.Role {
	return map[string]domain.Role{
		"ref": refRole{},
	}
}

func (*Domain) Indices() []domain.Index {
	return []domain.Index{NameIndex{}, IngredientIndex{}}
}

// directive handles one ":::recipe <name>" block. The argument is the
// recipe's display name; the optional "contains" option is a
// comma-separated ingredient list.
type directive struct{}

func (directive) Run(ctx *domain.BlockContext, arg string, opts map[string]string, body string) (string, error) {
	name := strings.TrimSpace(arg)
	if name == "" {
		return "", fmt.Errorf("%w: recipe", domain.ErrMissingArgument)
	}

	obj := domain.Object{
		Name:     name,
		DispName: name,
		TypeTag:  TypeTag,
		Document: ctx.Document,
		Anchor:   Anchor(name),
		Priority: 0,
	}
	if err := ctx.Registry.Add(obj); err != nil {
		return "", err
	}

	if contains, ok := opts["contains"]; ok {
		ctx.Registry.SetAttributes(name, splitList(contains))
	}

	rendered, err := ctx.RenderMarkdown(body)
	if err != nil {
		return "", fmt.Errorf("rendering recipe body: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<section class=\"recipe\" id=%q>\n", obj.Anchor)
	fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(name))
	b.WriteString(rendered)
	b.WriteString("</section>\n")
	return b.String(), nil
}

// refRole resolves {recipe:ref:<target>} by exact match on the bare
// object name. Unknown targets yield nil so the caller can degrade to an
// unresolved-reference warning.
type refRole struct{}

func (refRole) Resolve(reg *domain.Registry, target string) *domain.Link {
	obj, ok := reg.Lookup(target)
	if !ok {
		return nil
	}
	return &domain.Link{
		Text:     obj.DispName,
		Document: obj.Document,
		Anchor:   obj.Anchor,
	}
}

// Anchor returns the element ID assigned to a recipe's declaration.
func Anchor(name string) string {
	var b strings.Builder
	b.WriteString("recipe-")
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// splitList splits a comma-separated option value, trimming surrounding
// whitespace from each token. Tokens are free text; no vocabulary is
// enforced.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
