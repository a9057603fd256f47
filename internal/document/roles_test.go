package document

import "testing"

func TestReplaceRoles(t *testing.T) {
	t.Parallel()

	t.Run("rewrites each occurrence", func(t *testing.T) {
		t.Parallel()
		text := "See {recipe:ref:Tomato Soup} and {recipe:ref:Aioli}."
		var seen []Ref
		got := ReplaceRoles(text, func(ref Ref) string {
			seen = append(seen, ref)
			return "[" + ref.Target + "]"
		})
		if got != "See [Tomato Soup] and [Aioli]." {
			t.Errorf("got %q", got)
		}
		if len(seen) != 2 {
			t.Fatalf("fn called %d times, want 2", len(seen))
		}
		if seen[0].Domain != "recipe" || seen[0].Role != "ref" || seen[0].Target != "Tomato Soup" {
			t.Errorf("first ref = %+v", seen[0])
		}
	})

	t.Run("plain braces untouched", func(t *testing.T) {
		t.Parallel()
		text := "a {map[string]int} literal and {notarole}"
		got := ReplaceRoles(text, func(Ref) string { return "X" })
		if got != text {
			t.Errorf("got %q, want unchanged", got)
		}
	})
}
