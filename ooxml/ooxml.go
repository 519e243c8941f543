// Package ooxml builds the WordprocessingML XML parts of a minimal DOCX
// package. Parts are emitted as strings rather than through encoding/xml:
// the package format pins exact attribute order and self-closing element
// forms that the marshaller does not guarantee, and the only dynamic content
// is escaped text runs.
package ooxml

import (
	"strings"

	"github.com/studykit/docraft/segment"
	"github.com/studykit/docraft/types"
)

// Package holds the XML payloads of a minimal Word-compatible package
type Package struct {
	DocumentXML     string
	StylesXML       string
	ContentTypesXML string
	PackageRelsXML  string
	DocumentRelsXML string
}

// Style identifiers referenced from document.xml and defined in styles.xml
const (
	styleTitle   = "Heading1"
	styleHeading = "Heading2"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// BuildPackage produces the five XML payloads for a deliverable. The three
// boilerplate parts never vary with content.
func BuildPackage(d types.Deliverable) Package {
	return Package{
		DocumentXML:     buildDocumentXML(d),
		StylesXML:       stylesXML,
		ContentTypesXML: contentTypesXML,
		PackageRelsXML:  packageRelsXML,
		DocumentRelsXML: documentRelsXML,
	}
}

func buildDocumentXML(d types.Deliverable) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, blk := range segment.Blocks(d) {
		switch blk.Kind {
		case segment.KindTitle:
			writeStyledParagraph(&b, styleTitle, blk.Text)
		case segment.KindHeading:
			writeStyledParagraph(&b, styleHeading, blk.Text)
		default:
			writeBodyParagraph(&b, blk.Text)
		}
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// writeStyledParagraph emits one paragraph carrying a pStyle reference.
// Titles and headings are single-line by contract.
func writeStyledParagraph(b *strings.Builder, styleID, text string) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="`)
	b.WriteString(styleID)
	b.WriteString(`"/></w:pPr>`)
	writeRun(b, text)
	b.WriteString(`</w:p>`)
}

// writeBodyParagraph emits one paragraph, turning embedded single newlines
// into <w:br/> run breaks. Collapsing that distinction into separate
// paragraphs would lose the author's structure, so it is preserved here.
func writeBodyParagraph(b *strings.Builder, text string) {
	b.WriteString(`<w:p>`)
	for i, line := range segment.Lines(text) {
		if i > 0 {
			b.WriteString(`<w:r><w:br/></w:r>`)
		}
		writeRun(b, line)
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, text string) {
	b.WriteString(`<w:r><w:t xml:space="preserve">`)
	b.WriteString(EscapeText(text))
	b.WriteString(`</w:t></w:r>`)
}

// The replacer handles each input character once, so already-escaped
// ampersands are not double-escaped on repeat calls with fresh input.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes the five XML special characters in text content
func EscapeText(s string) string {
	return xmlEscaper.Replace(s)
}
