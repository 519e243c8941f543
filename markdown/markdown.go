// Package markdown converts Markdown study documents into deliverables.
// The first level-1 heading becomes the title, later headings open sections,
// and a heading titled "References" collects the remaining paragraphs and
// list items as reference lines.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/studykit/docraft/types"
)

// Parse converts Markdown source into a deliverable
func Parse(src []byte) (types.Deliverable, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var d types.Deliverable
	var current *types.Section
	inReferences := false

	flush := func() {
		if current != nil {
			d.Sections = append(d.Sections, *current)
			current = nil
		}
	}

	appendBody := func(s string) {
		if current == nil {
			current = &types.Section{}
		}
		if current.Body != "" {
			current.Body += "\n\n"
		}
		current.Body += s
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(nodeText(node, src))
			if node.Level == 1 && d.Title == "" && len(d.Sections) == 0 && current == nil {
				d.Title = title
				continue
			}
			flush()
			if strings.EqualFold(title, "references") {
				inReferences = true
				continue
			}
			inReferences = false
			current = &types.Section{Heading: title}

		case *ast.Paragraph:
			body := strings.TrimSpace(nodeText(node, src))
			if body == "" {
				continue
			}
			if inReferences {
				d.References = append(d.References, body)
				continue
			}
			appendBody(body)

		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				line := strings.TrimSpace(nodeText(item, src))
				if line == "" {
					continue
				}
				if inReferences {
					d.References = append(d.References, line)
				} else {
					appendBody(line)
				}
			}

		case *ast.Blockquote:
			quote := strings.TrimSpace(nodeText(node, src))
			if quote != "" && !inReferences {
				appendBody(quote)
			}

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			code := blockLines(n, src)
			if code != "" && !inReferences {
				appendBody(code)
			}
		}
	}
	flush()

	if d.Title == "" && len(d.Sections) == 0 && len(d.References) == 0 {
		return types.Deliverable{}, types.NewArtifactError(types.ErrCodeInvalidInput,
			"markdown document has no content")
	}
	return d, nil
}

// nodeText extracts the plain text of a node, preserving soft and hard line
// breaks as newlines.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.AutoLink:
			b.Write(t.URL(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// blockLines joins the raw lines of a code block, keeping internal newlines
// so they render as line breaks.
func blockLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}
