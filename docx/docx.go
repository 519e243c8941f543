// Package docx encodes a deliverable as a minimal Word-compatible OOXML
// package: five XML parts in a stored-method ZIP container.
package docx

import (
	"github.com/studykit/docraft/archive"
	"github.com/studykit/docraft/ooxml"
	"github.com/studykit/docraft/types"
)

// Archive paths of the package parts
const (
	PathPackageRels  = "_rels/.rels"
	PathContentTypes = "[Content_Types].xml"
	PathDocument     = "word/document.xml"
	PathDocumentRels = "word/_rels/document.xml.rels"
	PathStyles       = "word/styles.xml"
)

// Encode builds the OOXML parts for the deliverable, packs them into a
// stored ZIP archive, and returns the final bytes with the DOCX MIME type.
func Encode(d types.Deliverable) (types.EncodedArtifact, error) {
	pkg := ooxml.BuildPackage(d)

	entries := []archive.Entry{
		{Name: PathPackageRels, Data: []byte(pkg.PackageRelsXML)},
		{Name: PathContentTypes, Data: []byte(pkg.ContentTypesXML)},
		{Name: PathDocument, Data: []byte(pkg.DocumentXML)},
		{Name: PathDocumentRels, Data: []byte(pkg.DocumentRelsXML)},
		{Name: PathStyles, Data: []byte(pkg.StylesXML)},
	}

	zipped, err := archive.BuildStored(entries)
	if err != nil {
		return types.EncodedArtifact{}, types.WrapError(types.ErrCodeEncodeError, "building docx container", err)
	}

	return types.EncodedArtifact{Bytes: zipped, MIMEType: types.MIMETypeDocx}, nil
}
