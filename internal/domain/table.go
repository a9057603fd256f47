package domain

import (
	"fmt"
	"sort"
)

// Table maps domain names to registered Domain implementations. Domains
// are registered once at startup; lookups happen throughout the build.
type Table struct {
	domains map[string]Domain
}

// NewTable creates an empty domain table.
func NewTable() *Table {
	return &Table{domains: make(map[string]Domain)}
}

// Register adds a domain to the table. A duplicate name is rejected.
func (t *Table) Register(d Domain) error {
	if d.Name() == "" {
		return fmt.Errorf("domain name cannot be empty")
	}
	if _, exists := t.domains[d.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDomain, d.Name())
	}
	t.domains[d.Name()] = d
	return nil
}

// Get returns the domain registered under name.
func (t *Table) Get(name string) (Domain, bool) {
	d, ok := t.domains[name]
	return d, ok
}

// Names returns the registered domain names in ascending order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.domains))
	for name := range t.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
