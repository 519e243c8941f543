package ooxml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/docraft/types"
)

func TestBuildDocumentXML_ParagraphFidelity(t *testing.T) {
	d := types.Deliverable{
		Sections: []types.Section{{Body: "A\nB\n\nC"}},
	}
	doc := BuildPackage(d).DocumentXML

	assert.Equal(t, 2, strings.Count(doc, "<w:p>"), "blank line must open a second paragraph")
	assert.Equal(t, 1, strings.Count(doc, "<w:br/>"), "single newline must stay a run break")

	// A, the break, and B share the first paragraph; C is alone in the second.
	first := doc[strings.Index(doc, "<w:p>"):strings.Index(doc, "</w:p>")]
	assert.Contains(t, first, `>A</w:t>`)
	assert.Contains(t, first, "<w:br/>")
	assert.Contains(t, first, `>B</w:t>`)
	assert.NotContains(t, first, `>C</w:t>`)
}

func TestBuildDocumentXML_Escaping(t *testing.T) {
	d := types.Deliverable{
		Sections: []types.Section{{Body: `a < b & c > "d" 'e'`}},
	}
	doc := BuildPackage(d).DocumentXML

	assert.Contains(t, doc, "a &lt; b &amp; c &gt; &quot;d&quot; &apos;e&apos;")
	assert.NotContains(t, doc, `& c`, "raw ampersand must not survive")
}

func TestBuildDocumentXML_HeadingStyles(t *testing.T) {
	d := types.Deliverable{
		Title: "Essay",
		Sections: []types.Section{
			{Heading: "Intro", Body: "Hello world."},
		},
		References: []string{"Source A"},
	}
	doc := BuildPackage(d).DocumentXML

	assert.Contains(t, doc, `<w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">Essay`)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t xml:space="preserve">Intro`)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t xml:space="preserve">References`)

	// Rendering order: title, heading, body, references heading, reference.
	order := []string{"Essay", "Intro", "Hello world.", "References", "Source A"}
	last := -1
	for _, want := range order {
		idx := strings.Index(doc, ">"+want+"<")
		require.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}
}

func TestBuildDocumentXML_NoTitle(t *testing.T) {
	d := types.Deliverable{
		Sections: []types.Section{{Body: "Body only."}},
	}
	doc := BuildPackage(d).DocumentXML

	assert.NotContains(t, doc, "Heading1")
	assert.Contains(t, doc, ">Body only.</w:t>")
}

func TestBuildPackage_PartsWellFormed(t *testing.T) {
	d := types.Deliverable{
		Title:      "T < & >",
		Sections:   []types.Section{{Heading: "H", Body: "line one\nline two\n\npara two"}},
		References: []string{`ref "quoted"`},
	}
	pkg := BuildPackage(d)

	for name, payload := range map[string]string{
		"document.xml":        pkg.DocumentXML,
		"styles.xml":          pkg.StylesXML,
		"[Content_Types].xml": pkg.ContentTypesXML,
		"package rels":        pkg.PackageRelsXML,
		"document rels":       pkg.DocumentRelsXML,
	} {
		decoder := xml.NewDecoder(strings.NewReader(payload))
		for {
			_, err := decoder.Token()
			if err != nil {
				require.Equal(t, "EOF", err.Error(), "%s must be well-formed XML", name)
				break
			}
		}
	}
}

func TestBuildPackage_FixedParts(t *testing.T) {
	pkg := BuildPackage(types.Deliverable{})

	assert.Contains(t, pkg.ContentTypesXML, `PartName="/word/document.xml"`)
	assert.Contains(t, pkg.ContentTypesXML, "wordprocessingml.document.main+xml")
	assert.Contains(t, pkg.PackageRelsXML, `Target="word/document.xml"`)
	assert.Contains(t, pkg.DocumentRelsXML, `Target="styles.xml"`)

	for _, styleID := range []string{"Normal", "Heading1", "Heading2"} {
		assert.Contains(t, pkg.StylesXML, `w:styleId="`+styleID+`"`)
	}
	assert.Contains(t, pkg.StylesXML, `<w:basedOn w:val="Normal"/>`)
	assert.Contains(t, pkg.StylesXML, `<w:next w:val="Normal"/>`)
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "&amp;lt;", EscapeText("&lt;"), "each input character is escaped exactly once")
	assert.Equal(t, "plain text", EscapeText("plain text"))
}
