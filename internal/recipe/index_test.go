package recipe

import (
	"errors"
	"reflect"
	"testing"

	"github.com/steppi/scribe/internal/domain"
)

// register adds a recipe with optional ingredients to a registry the way
// the directive would.
func register(t *testing.T, reg *domain.Registry, name string, ingredients ...string) {
	t.Helper()
	err := reg.Add(domain.Object{
		Name:     name,
		DispName: name,
		TypeTag:  TypeTag,
		Document: "recipes",
		Anchor:   Anchor(name),
	})
	if err != nil {
		t.Fatalf("Add(%q): %v", name, err)
	}
	if len(ingredients) > 0 {
		reg.SetAttributes(name, ingredients)
	}
}

func groupKeys(groups []domain.IndexGroup) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

func entryNames(g domain.IndexGroup) []string {
	names := make([]string, len(g.Entries))
	for i, e := range g.Entries {
		names[i] = e.DispName
	}
	return names
}

func TestNameIndex(t *testing.T) {
	t.Parallel()

	t.Run("empty registry yields empty listing", func(t *testing.T) {
		t.Parallel()
		groups, err := NameIndex{}.Generate(domain.NewRegistry("recipe"))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(groups) != 0 {
			t.Errorf("got %d groups, want 0", len(groups))
		}
	})

	t.Run("buckets by lowercase first character", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "Bouillabaisse")
		register(t, reg, "Aioli")
		register(t, reg, "Bisque")

		groups, err := NameIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got, want := groupKeys(groups), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("bucket keys = %v, want %v", got, want)
		}
		if got, want := entryNames(groups[1]), []string{"Bisque", "Bouillabaisse"}; !reflect.DeepEqual(got, want) {
			t.Errorf("b bucket = %v, want alphabetical %v", got, want)
		}
	})

	t.Run("each object listed exactly once", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "Aioli")
		register(t, reg, "Arrabbiata")

		groups, err := NameIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		total := 0
		for _, g := range groups {
			total += len(g.Entries)
		}
		if total != 2 {
			t.Errorf("got %d entries, want 2", total)
		}
	})

	t.Run("entry carries document as extra and no qualifier", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "Aioli")

		groups, err := NameIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		e := groups[0].Entries[0]
		want := domain.IndexEntry{
			DispName:  "Aioli",
			Subtype:   0,
			Document:  "recipes",
			Anchor:    "recipe-aioli",
			Extra:     "recipes",
			Qualifier: "",
			TypeTag:   "recipe",
		}
		if e != want {
			t.Errorf("entry = %+v, want %+v", e, want)
		}
	})
}

func TestIngredientIndex(t *testing.T) {
	t.Parallel()

	t.Run("inverts contains lists", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "A", "salt", "pepper")
		register(t, reg, "B", "salt", "basil")

		groups, err := IngredientIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got, want := groupKeys(groups), []string{"basil", "pepper", "salt"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("bucket keys = %v, want %v", got, want)
		}
		if got, want := entryNames(groups[0]), []string{"B"}; !reflect.DeepEqual(got, want) {
			t.Errorf("basil bucket = %v, want %v", got, want)
		}
		if got, want := entryNames(groups[1]), []string{"A"}; !reflect.DeepEqual(got, want) {
			t.Errorf("pepper bucket = %v, want %v", got, want)
		}
		// Registration order within a shared bucket.
		if got, want := entryNames(groups[2]), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
			t.Errorf("salt bucket = %v, want registration order %v", got, want)
		}
	})

	t.Run("object without contains is unindexed", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "Plain")
		register(t, reg, "Salted", "salt")

		groups, err := IngredientIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, g := range groups {
			for _, e := range g.Entries {
				if e.DispName == "Plain" {
					t.Errorf("object without contains appeared in bucket %q", g.Key)
				}
			}
		}
	})

	t.Run("duplicate ingredient listed twice", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		register(t, reg, "Extra Salty", "salt", "salt")

		groups, err := IngredientIndex{}.Generate(reg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(groups) != 1 || len(groups[0].Entries) != 2 {
			t.Errorf("groups = %+v, want one salt bucket with two entries", groups)
		}
	})

	t.Run("unknown object is fatal", func(t *testing.T) {
		t.Parallel()
		reg := domain.NewRegistry("recipe")
		reg.SetAttributes("ghost", []string{"salt"})

		_, err := IngredientIndex{}.Generate(reg)
		if !errors.Is(err, domain.ErrUnknownObject) {
			t.Errorf("got err %v, want ErrUnknownObject", err)
		}
	})
}

func TestGenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	reg := domain.NewRegistry("recipe")
	register(t, reg, "A", "salt", "pepper")
	register(t, reg, "B", "salt", "basil")

	for _, idx := range []domain.Index{NameIndex{}, IngredientIndex{}} {
		first, err := idx.Generate(reg)
		if err != nil {
			t.Fatalf("%s Generate: %v", idx.Name(), err)
		}
		second, err := idx.Generate(reg)
		if err != nil {
			t.Fatalf("%s Generate: %v", idx.Name(), err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s index not idempotent:\nfirst  %+v\nsecond %+v", idx.Name(), first, second)
		}
	}
}
