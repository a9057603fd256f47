package recipe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/steppi/scribe/internal/domain"
)

// NameIndex lists all recipes alphabetically, bucketed by the lowercase
// first character of the display name.
type NameIndex struct{}

func (NameIndex) Name() string      { return "recipe" }
func (NameIndex) LocalName() string { return "Recipe Index" }

// Generate never fails; an empty registry yields an empty listing.
func (NameIndex) Generate(reg *domain.Registry) ([]domain.IndexGroup, error) {
	objs := reg.Objects()
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].DispName < objs[j].DispName
	})

	buckets := make(map[string][]domain.IndexEntry)
	for _, obj := range objs {
		key := strings.ToLower(string([]rune(obj.DispName)[0]))
		buckets[key] = append(buckets[key], entryFor(obj))
	}
	return sortedGroups(buckets), nil
}

// IngredientIndex lists recipes grouped by ingredient: the inversion of
// each recipe's "contains" list.
type IngredientIndex struct{}

func (IngredientIndex) Name() string      { return "ingredient" }
func (IngredientIndex) LocalName() string { return "Ingredient Index" }

// Generate inverts the registry's attribute lists. Within an ingredient
// bucket, recipes appear in registration order; a recipe listing the same
// ingredient twice appears twice. A recipe with no "contains" list is
// absent from every bucket. An attribute entry naming an unregistered
// object is an internal-invariant violation and fails generation.
func (IngredientIndex) Generate(reg *domain.Registry) ([]domain.IndexGroup, error) {
	// Flip object → ingredients into ingredient → objects, preserving
	// insertion order on both sides.
	inverted := make(map[string][]string)
	for _, name := range reg.AttributeOwners() {
		for _, ingredient := range reg.Attributes(name) {
			inverted[ingredient] = append(inverted[ingredient], name)
		}
	}

	buckets := make(map[string][]domain.IndexEntry)
	for ingredient, names := range inverted {
		for _, name := range names {
			obj, ok := reg.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q under ingredient %q", domain.ErrUnknownObject, name, ingredient)
			}
			buckets[ingredient] = append(buckets[ingredient], entryFor(obj))
		}
	}
	return sortedGroups(buckets), nil
}

// entryFor builds the index row for an object: the document ID doubles as
// the "extra" display column, and no qualifier or sub-type is used.
func entryFor(obj domain.Object) domain.IndexEntry {
	return domain.IndexEntry{
		DispName:  obj.DispName,
		Subtype:   0,
		Document:  obj.Document,
		Anchor:    obj.Anchor,
		Extra:     obj.Document,
		Qualifier: "",
		TypeTag:   obj.TypeTag,
	}
}

// sortedGroups converts a bucket map to the ordered group list the
// renderer expects, with keys ascending.
func sortedGroups(buckets map[string][]domain.IndexEntry) []domain.IndexGroup {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]domain.IndexGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, domain.IndexGroup{Key: key, Entries: buckets[key]})
	}
	return groups
}
