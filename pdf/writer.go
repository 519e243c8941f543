// Package pdf encodes a deliverable as a minimal single-page PDF 1.4
// document: a fixed five-object graph (Catalog, Pages, Page, content stream,
// Font) followed by an xref table whose offsets must match the emitted bytes
// exactly. A drifting offset produces a file some viewers repair and others
// reject, with no error either way, so offsets are captured at write time
// from a single append-only buffer.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/studykit/docraft/segment"
	"github.com/studykit/docraft/types"
)

// PageSize represents page dimensions in points (1 point = 1/72 inch)
type PageSize struct {
	Width  float64
	Height float64
}

// PageSizeLetter is 8.5 x 11 inches; all output uses it
var PageSizeLetter = PageSize{612, 792}

// Text layout constants. The leading is fixed regardless of content length;
// long deliverables run off the single page rather than paginating.
const (
	fontSize    = 12
	leftMargin  = 72
	topStart    = 720
	lineLeading = 16
)

// objectCount is the size of the fixed object graph
const objectCount = 5

// docWriter assembles the PDF as an append-only buffer, recording the byte
// offset at which each numbered object begins.
type docWriter struct {
	buf     bytes.Buffer
	offsets [objectCount + 1]int // indexed by object number; 0 unused
}

func (w *docWriter) beginObject(num int) {
	w.offsets[num] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n", num)
}

func (w *docWriter) endObject() {
	w.buf.WriteString("\nendobj\n")
}

// Encode renders the deliverable as a single-page PDF and returns the final
// bytes with the PDF MIME type.
func Encode(d types.Deliverable) (types.EncodedArtifact, error) {
	var w docWriter
	w.buf.WriteString("%PDF-1.4\n")

	w.beginObject(1)
	w.buf.WriteString("<</Type/Catalog/Pages 2 0 R>>")
	w.endObject()

	w.beginObject(2)
	w.buf.WriteString("<</Type/Pages/Kids[3 0 R]/Count 1>>")
	w.endObject()

	w.beginObject(3)
	fmt.Fprintf(&w.buf, "<</Type/Page/Parent 2 0 R/MediaBox[0 0 %.0f %.0f]/Contents 4 0 R/Resources<</Font<</F1 5 0 R>>>>>>",
		PageSizeLetter.Width, PageSizeLetter.Height)
	w.endObject()

	// The /Length must equal the exact byte count between "stream\n" and
	// "\nendstream"; the content is built up front so the two agree.
	content := buildContentStream(segment.FlattenLines(d))
	w.beginObject(4)
	fmt.Fprintf(&w.buf, "<</Length %d>>\nstream\n", len(content))
	w.buf.Write(content)
	w.buf.WriteString("\nendstream")
	w.endObject()

	w.beginObject(5)
	w.buf.WriteString("<</Type/Font/Subtype/Type1/BaseFont/Helvetica>>")
	w.endObject()

	xrefOffset := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", objectCount+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for n := 1; n <= objectCount; n++ {
		fmt.Fprintf(&w.buf, "%010d %05d n \n", w.offsets[n], 0)
	}

	fmt.Fprintf(&w.buf, "trailer\n<</Size %d/Root 1 0 R>>\n", objectCount+1)
	fmt.Fprintf(&w.buf, "startxref\n%d\n%%%%EOF", xrefOffset)

	return types.EncodedArtifact{Bytes: w.buf.Bytes(), MIMEType: types.MIMETypePDF}, nil
}
