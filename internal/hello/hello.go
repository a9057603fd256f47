// Package hello provides the minimal example directive: it renders a
// fixed paragraph and registers nothing.
package hello

import "github.com/steppi/scribe/internal/domain"

// Directive renders "Hello World!" regardless of argument, options, or
// body.
type Directive struct{}

func (Directive) Run(ctx *domain.BlockContext, arg string, opts map[string]string, body string) (string, error) {
	return "<p>Hello World!</p>\n", nil
}
