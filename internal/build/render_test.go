package build

import (
	"strings"
	"testing"

	"github.com/steppi/scribe/internal/domain"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	html, err := r.RenderMarkdown("# Hi\n\nsome *text*")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<em>text</em>") {
		t.Errorf("unexpected output: %s", html)
	}
}

func TestRenderLink(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	got := r.RenderLink(&domain.Link{Text: "Mac & Cheese", Document: "recipes", Anchor: "recipe-mac-cheese"})
	want := `<a href="recipes.html#recipe-mac-cheese">Mac &amp; Cheese</a>`
	if got != want {
		t.Errorf("RenderLink = %q, want %q", got, want)
	}
}

func TestUnresolvedMarker(t *testing.T) {
	t.Parallel()

	got := unresolvedMarker("<them>")
	if !strings.Contains(got, "unresolved-xref") || strings.Contains(got, "<them>") {
		t.Errorf("unresolvedMarker = %q", got)
	}
}

func TestRenderIndexBody(t *testing.T) {
	t.Parallel()

	groups := []domain.IndexGroup{
		{Key: "basil", Entries: []domain.IndexEntry{
			{DispName: "B", Document: "recipes", Anchor: "recipe-b", Extra: "recipes", TypeTag: "recipe"},
		}},
		{Key: "salt", Entries: []domain.IndexEntry{
			{DispName: "A", Document: "recipes", Anchor: "recipe-a", Extra: "recipes", TypeTag: "recipe"},
			{DispName: "B", Document: "recipes", Anchor: "recipe-b", Extra: "recipes", TypeTag: "recipe"},
		}},
	}

	body, err := NewRenderer().RenderIndexBody("Ingredient Index", groups)
	if err != nil {
		t.Fatalf("RenderIndexBody: %v", err)
	}
	if !strings.Contains(body, "<h1>Ingredient Index</h1>") {
		t.Error("title missing")
	}
	if strings.Index(body, "<h2>basil</h2>") > strings.Index(body, "<h2>salt</h2>") {
		t.Error("group order not preserved")
	}
	if !strings.Contains(body, `<a href="recipes.html#recipe-a">A</a>`) {
		t.Errorf("entry link missing:\n%s", body)
	}
}
