// Package types provides the common data structures shared across docraft packages
package types

// Format identifies a supported output format
type Format string

const (
	// FormatDocx selects the OOXML (Word) encoder
	FormatDocx Format = "docx"
	// FormatPDF selects the PDF encoder
	FormatPDF Format = "pdf"
)

// MIME types of the encoded artifacts
const (
	MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypePDF  = "application/pdf"
)

// Section is one heading/body unit of a deliverable. The body may contain
// blank-line paragraph breaks and single-newline line breaks; both survive
// encoding.
type Section struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body" yaml:"body"`
}

// Deliverable is the structured text input to the encoder. Sections render
// in slice order. The encoder reads it and never mutates it.
type Deliverable struct {
	Title      string    `json:"title,omitempty" yaml:"title,omitempty"`
	Sections   []Section `json:"sections" yaml:"sections"`
	References []string  `json:"references,omitempty" yaml:"references,omitempty"`
}

// EncodedArtifact is the encoder output: the final byte buffer and its MIME
// type. Callers own writing the bytes to disk or a downstream transport.
type EncodedArtifact struct {
	Bytes    []byte
	MIMEType string
}
