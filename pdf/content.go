package pdf

import (
	"bytes"
	"fmt"
)

// buildContentStream emits the page-drawing operators: one text object with
// a Tj per line and a fixed vertical advance between lines.
func buildContentStream(lines []string) []byte {
	var b bytes.Buffer
	b.WriteString("BT\n")
	fmt.Fprintf(&b, "/F1 %d Tf\n", fontSize)
	fmt.Fprintf(&b, "%d %d Td\n", leftMargin, topStart)
	for i, line := range lines {
		if i > 0 {
			fmt.Fprintf(&b, "0 -%d Td\n", lineLeading)
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escapeString(line))
	}
	b.WriteString("ET")
	return b.Bytes()
}

// escapeString escapes characters that would terminate or corrupt a PDF
// literal string. Backslash must be handled like any other rune here, never
// re-scanned, or already-escaped output would be escaped twice.
func escapeString(s string) string {
	var out bytes.Buffer
	for _, c := range s {
		switch c {
		case '\\':
			out.WriteString(`\\`)
		case '(':
			out.WriteString(`\(`)
		case ')':
			out.WriteString(`\)`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}
