package document

import (
	"fmt"
	"regexp"
	"strings"
)

// Block is one directive invocation found in a page body.
type Block struct {
	Directive string            // Directive name after the ::: fence.
	Arg       string            // Everything after the name on the fence line.
	Options   map[string]string // key: value lines before the first blank line.
	Body      string            // Remaining block content.
	Line      int               // 1-based line of the opening fence.
	Raw       string            // Original block text, fences included.
}

// Segment is a span of a page body: either a markdown run (Block == nil)
// or a directive block.
type Segment struct {
	Text  string
	Block *Block
}

// openFence matches a directive opening line: ":::name optional argument".
var openFence = regexp.MustCompile(`^:::([a-zA-Z][\w-]*)\s*(.*)$`)

// optionLine matches a "key: value" option line inside a block.
var optionLine = regexp.MustCompile(`^([a-zA-Z][\w-]*):\s*(.*)$`)

// Split scans a page body into alternating markdown runs and directive
// blocks. Blocks open with ":::name arg" at column 0 and close with a
// bare ":::" line. Option lines run until the first blank or
// non-option line; the rest is the block body. An unclosed block is an
// error.
func Split(body string) ([]Segment, error) {
	lines := strings.Split(body, "\n")

	var segments []Segment
	var text []string
	flushText := func() {
		if len(text) > 0 {
			segments = append(segments, Segment{Text: strings.Join(text, "\n")})
			text = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		m := openFence.FindStringSubmatch(lines[i])
		if m == nil {
			text = append(text, lines[i])
			continue
		}
		flushText()

		block := &Block{
			Directive: m[1],
			Arg:       strings.TrimSpace(m[2]),
			Options:   make(map[string]string),
			Line:      i + 1,
		}

		// Collect option lines until the first blank or non-option line.
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" || lines[j] == ":::" {
				break
			}
			om := optionLine.FindStringSubmatch(lines[j])
			if om == nil {
				break
			}
			block.Options[om[1]] = strings.TrimSpace(om[2])
		}

		// Collect the body until the closing fence.
		var bodyLines []string
		closed := false
		for ; j < len(lines); j++ {
			if lines[j] == ":::" {
				closed = true
				break
			}
			bodyLines = append(bodyLines, lines[j])
		}
		if !closed {
			return nil, fmt.Errorf("line %d: unclosed :::%s block", block.Line, block.Directive)
		}
		block.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
		block.Raw = strings.Join(lines[block.Line-1:j+1], "\n")

		segments = append(segments, Segment{Block: block})
		i = j
	}
	flushText()

	return segments, nil
}
