package hello

import "testing"

func TestDirective(t *testing.T) {
	t.Parallel()

	html, err := Directive{}.Run(nil, "ignored", map[string]string{"also": "ignored"}, "and this")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if html != "<p>Hello World!</p>\n" {
		t.Errorf("got %q", html)
	}
}
