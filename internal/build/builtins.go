package build

import (
	"fmt"
	"sort"

	"github.com/steppi/scribe/internal/hello"
	"github.com/steppi/scribe/internal/recipe"
)

// Builtins maps extension names, as they appear in site.toml, to the
// function that enables them on a builder.
func Builtins() map[string]func(*Builder) error {
	return map[string]func(*Builder) error{
		"recipe": func(b *Builder) error {
			return b.RegisterDomain(recipe.New())
		},
		"helloworld": func(b *Builder) error {
			return b.RegisterDirective("helloworld", hello.Directive{})
		},
	}
}

// enableExtensions turns on the named built-in extensions, skipping any
// already enabled so a builder can run repeated builds (watch mode).
func (b *Builder) enableExtensions(names []string) error {
	builtins := Builtins()
	for _, name := range names {
		if b.enabled[name] {
			continue
		}
		enable, ok := builtins[name]
		if !ok {
			return fmt.Errorf("unknown extension %q", name)
		}
		if err := enable(b); err != nil {
			return err
		}
		b.enabled[name] = true
	}
	return nil
}

// BuiltinNames returns the names of all compiled-in extensions, sorted.
func BuiltinNames() []string {
	builtins := Builtins()
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
