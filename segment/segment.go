// Package segment provides the shared line-block representation that both
// the OOXML and PDF encoders consume. Splitting a deliverable into blocks
// happens exactly once here, so the two format paths cannot drift on how
// paragraphs and line breaks are interpreted.
package segment

import (
	"strings"

	"github.com/studykit/docraft/types"
)

// BlockKind classifies a line block
type BlockKind int

const (
	// KindTitle is the deliverable title
	KindTitle BlockKind = iota
	// KindHeading is a section heading (including the generated References heading)
	KindHeading
	// KindParagraph is one body paragraph; its text may contain single
	// newlines that render as in-paragraph line breaks
	KindParagraph
	// KindReference is a single reference line
	KindReference
)

// LineBlock is one renderable unit of a deliverable
type LineBlock struct {
	Kind BlockKind
	Text string
}

// Blocks flattens a deliverable into its ordered line blocks: title, then
// each section's heading and body paragraphs in order, then the references
// preceded by a "References" heading. Empty titles and headings emit nothing.
func Blocks(d types.Deliverable) []LineBlock {
	var blocks []LineBlock
	if d.Title != "" {
		blocks = append(blocks, LineBlock{Kind: KindTitle, Text: d.Title})
	}
	for _, sec := range d.Sections {
		if sec.Heading != "" {
			blocks = append(blocks, LineBlock{Kind: KindHeading, Text: sec.Heading})
		}
		for _, para := range Paragraphs(sec.Body) {
			blocks = append(blocks, LineBlock{Kind: KindParagraph, Text: para})
		}
	}
	if len(d.References) > 0 {
		blocks = append(blocks, LineBlock{Kind: KindHeading, Text: "References"})
		for _, ref := range d.References {
			blocks = append(blocks, LineBlock{Kind: KindReference, Text: ref})
		}
	}
	return blocks
}

// Paragraphs splits body text on blank-line boundaries. Single newlines are
// retained inside each paragraph; they become line breaks on output, not new
// paragraphs. CRLF and lone CR are normalized to LF first.
func Paragraphs(body string) []string {
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var paras []string
	for _, chunk := range strings.Split(normalized, "\n\n") {
		chunk = strings.Trim(chunk, "\n")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		paras = append(paras, chunk)
	}
	return paras
}

// Lines splits one paragraph into its display lines
func Lines(paragraph string) []string {
	return strings.Split(paragraph, "\n")
}

// FlattenLines reduces a deliverable to the ordered plain-text lines the PDF
// content stream shows, one Tj operator per line.
func FlattenLines(d types.Deliverable) []string {
	var lines []string
	for _, blk := range Blocks(d) {
		lines = append(lines, Lines(blk.Text)...)
	}
	return lines
}
