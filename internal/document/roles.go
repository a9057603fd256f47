package document

import "regexp"

// Ref is one inline cross-reference role occurrence:
// {<domain>:<role>:<target>}.
type Ref struct {
	Domain string
	Role   string
	Target string
}

// rolePattern matches inline role invocations. Targets may contain any
// character except the closing brace.
var rolePattern = regexp.MustCompile(`\{([a-zA-Z][\w-]*):([a-zA-Z][\w-]*):([^}]+)\}`)

// ReplaceRoles rewrites every role occurrence in text using fn. Warning
// collection for unresolved references happens in the caller's closure.
func ReplaceRoles(text string, fn func(Ref) string) string {
	return rolePattern.ReplaceAllStringFunc(text, func(match string) string {
		m := rolePattern.FindStringSubmatch(match)
		return fn(Ref{Domain: m[1], Role: m[2], Target: m[3]})
	})
}
