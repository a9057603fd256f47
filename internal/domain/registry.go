package domain

import "fmt"

// Registry holds the objects declared for one domain during a single
// build. It is owned by the build process and passed by reference to
// directive handlers (writers, during the parse pass) and index
// generators (readers, strictly after).
type Registry struct {
	domain string

	objects []Object       // registration order
	byName  map[string]int // name → position in objects

	attrNames []string            // insertion order of attribute keys
	attrs     map[string][]string // object name → ordered attribute list
}

// NewRegistry creates an empty registry for the named domain.
func NewRegistry(domain string) *Registry {
	return &Registry{
		domain: domain,
		byName: make(map[string]int),
		attrs:  make(map[string][]string),
	}
}

// Domain returns the name of the domain this registry belongs to.
func (r *Registry) Domain() string { return r.domain }

// Add registers an object. Names and display names must be non-empty;
// index generators rely on that. Object names are unique: a duplicate
// name returns ErrDuplicateObject and the first registration is kept.
func (r *Registry) Add(obj Object) error {
	if obj.Name == "" || obj.DispName == "" {
		return ErrEmptyName
	}
	if _, exists := r.byName[obj.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateObject, obj.Name)
	}
	r.byName[obj.Name] = len(r.objects)
	r.objects = append(r.objects, obj)
	return nil
}

// SetAttributes records the ordered attribute list for an object. The
// caller is responsible for registering the object first; consistency is
// checked at index-generation time, not here.
func (r *Registry) SetAttributes(name string, attrs []string) {
	if _, exists := r.attrs[name]; !exists {
		r.attrNames = append(r.attrNames, name)
	}
	r.attrs[name] = attrs
}

// Objects returns the registered objects in registration order. The
// returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Objects() []Object {
	out := make([]Object, len(r.objects))
	copy(out, r.objects)
	return out
}

// Lookup finds a registered object by its bare name.
func (r *Registry) Lookup(name string) (Object, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Object{}, false
	}
	return r.objects[i], true
}

// Attributes returns the attribute list recorded for an object, or nil if
// none was set.
func (r *Registry) Attributes(name string) []string {
	return r.attrs[name]
}

// AttributeOwners returns the object names that have attribute lists, in
// insertion order.
func (r *Registry) AttributeOwners() []string {
	out := make([]string, len(r.attrNames))
	copy(out, r.attrNames)
	return out
}

// QualifiedName returns the namespaced identifier used for
// cross-referencing: "<domain>.<display name>".
func (r *Registry) QualifiedName(obj Object) string {
	return r.domain + "." + obj.DispName
}
