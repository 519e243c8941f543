package archive

import (
	"bytes"
	"encoding/binary"

	"github.com/studykit/docraft/types"
)

// Entry is one named file inside the archive. Entry order determines byte
// order in the output stream and the order of central directory records.
type Entry struct {
	Name string
	Data []byte
}

// ZIP record signatures
const (
	sigLocalFile      = 0x04034b50
	sigCentralDir     = 0x02014b50
	sigEndOfDirectory = 0x06054b50
)

// versionStored is the minimum feature version for stored (method 0) entries
const versionStored = 20

// BuildStored assembles a ZIP archive using method 0: one local file header
// plus raw data per entry, the central directory, then the end-of-central-
// directory record. Every multi-byte field is little-endian. Mod time and
// date are zero so identical input always yields identical bytes.
//
// Duplicate entry names are rejected: the resulting archive would not fail
// here but would be silently rejected or mis-read by consumers, so the
// invariant is enforced at build time.
func BuildStored(entries []Entry) ([]byte, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			return nil, types.NewArtifactErrorf(types.ErrCodeDuplicateEntry,
				"duplicate archive entry %q", e.Name).WithContext("entry", e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	var buf bytes.Buffer
	localOffsets := make([]uint32, len(entries))
	checksums := make([]uint32, len(entries))

	for i, e := range entries {
		localOffsets[i] = uint32(buf.Len())
		checksums[i] = Checksum(e.Data)
		name := []byte(e.Name)
		size := uint32(len(e.Data))

		writeUint32(&buf, sigLocalFile)
		writeUint16(&buf, versionStored) // version needed to extract
		writeUint16(&buf, 0)             // general purpose flags
		writeUint16(&buf, 0)             // method 0: stored
		writeUint16(&buf, 0)             // mod time
		writeUint16(&buf, 0)             // mod date
		writeUint32(&buf, checksums[i])
		writeUint32(&buf, size) // compressed size
		writeUint32(&buf, size) // uncompressed size
		writeUint16(&buf, uint16(len(name)))
		writeUint16(&buf, 0) // extra field length
		buf.Write(name)
		buf.Write(e.Data)
	}

	centralStart := uint32(buf.Len())
	for i, e := range entries {
		name := []byte(e.Name)
		size := uint32(len(e.Data))

		writeUint32(&buf, sigCentralDir)
		writeUint16(&buf, versionStored) // version made by
		writeUint16(&buf, versionStored) // version needed to extract
		writeUint16(&buf, 0)             // general purpose flags
		writeUint16(&buf, 0)             // method 0: stored
		writeUint16(&buf, 0)             // mod time
		writeUint16(&buf, 0)             // mod date
		writeUint32(&buf, checksums[i])
		writeUint32(&buf, size) // compressed size
		writeUint32(&buf, size) // uncompressed size
		writeUint16(&buf, uint16(len(name)))
		writeUint16(&buf, 0) // extra field length
		writeUint16(&buf, 0) // comment length
		writeUint16(&buf, 0) // disk number start
		writeUint16(&buf, 0) // internal attributes
		writeUint32(&buf, 0) // external attributes
		writeUint32(&buf, localOffsets[i])
		buf.Write(name)
	}
	centralSize := uint32(buf.Len()) - centralStart

	writeUint32(&buf, sigEndOfDirectory)
	writeUint16(&buf, 0)                    // this disk number
	writeUint16(&buf, 0)                    // central directory disk
	writeUint16(&buf, uint16(len(entries))) // entries on this disk
	writeUint16(&buf, uint16(len(entries))) // total entries
	writeUint32(&buf, centralSize)
	writeUint32(&buf, centralStart)
	writeUint16(&buf, 0) // comment length

	return buf.Bytes(), nil
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
