// Package docraft encodes structured study deliverables as minimal DOCX and
// PDF artifacts, built from first principles without compression or
// document-authoring libraries.
//
// A deliverable is a title, an ordered list of heading/body sections, and an
// optional reference list. Both encoders are pure functions of that input:
// the same deliverable always yields byte-identical output.
//
// # Quick Start
//
//	d := docraft.Deliverable{
//		Title: "Essay",
//		Sections: []docraft.Section{
//			{Heading: "Intro", Body: "Hello world."},
//		},
//		References: []string{"Source A"},
//	}
//	artifact, err := docraft.Encode(d, docraft.FormatDocx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("essay.docx", artifact.Bytes, 0644)
//
// # Packages
//
//   - types: common data structures and classified errors
//   - segment: shared line-block representation of a deliverable
//   - archive: CRC-32 and the stored-method ZIP container
//   - ooxml: WordprocessingML part builders
//   - docx: DOCX encoder
//   - pdf: single-page PDF encoder
//   - markdown: Markdown front end for the CLI
package docraft

import (
	"github.com/studykit/docraft/docx"
	"github.com/studykit/docraft/pdf"
	"github.com/studykit/docraft/types"
)

// Re-export common types for convenience.
// Users can import just "github.com/studykit/docraft" for basic usage.

// Deliverable is the structured text input to the encoder.
type Deliverable = types.Deliverable

// Section is one heading/body unit of a deliverable.
type Section = types.Section

// EncodedArtifact is the encoder output: bytes plus MIME type.
type EncodedArtifact = types.EncodedArtifact

// Format identifies a supported output format.
type Format = types.Format

// Supported output formats.
const (
	FormatDocx = types.FormatDocx
	FormatPDF  = types.FormatPDF
)

// Encode renders the deliverable in the requested format. An unrecognized
// format yields a classified UNSUPPORTED_FORMAT error and no partial output.
func Encode(d Deliverable, format Format) (EncodedArtifact, error) {
	switch format {
	case types.FormatDocx:
		return docx.Encode(d)
	case types.FormatPDF:
		return pdf.Encode(d)
	default:
		return EncodedArtifact{}, types.NewArtifactErrorf(types.ErrCodeUnsupportedFormat,
			"unsupported output format %q", string(format))
	}
}

// Version returns the library version.
func Version() string {
	return "0.2.0"
}
