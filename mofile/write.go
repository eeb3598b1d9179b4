package mofile

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/minios-linux/gocat"
)

// compiledString pairs an original key with its rendered translation
// bytes, in the order the MO writer emits them.
type compiledString struct {
	original    []byte
	translation []byte
}

// WriteTo compiles the catalog to MO bytes per spec.md §4.5: entries
// sorted by the UTF-8 bytes of their original key, little-endian
// header, no hash table.
func (f *MOFile) WriteTo(w io.Writer) error {
	strs := compile(f.Catalog)

	sort.Slice(strs, func(i, j int) bool {
		return bytes.Compare(strs[i].original, strs[j].original) < 0
	})

	count := uint32(len(strs))
	origTableOffset := uint32(headerSize)
	transTableOffset := origTableOffset + count*8

	var origBlob, transBlob bytes.Buffer
	origEntries := make([]tableEntry, count)
	transEntries := make([]tableEntry, count)

	dataStart := transTableOffset + count*8
	origCursor := dataStart
	for i, s := range strs {
		origEntries[i] = tableEntry{Length: uint32(len(s.original)), Offset: origCursor}
		origBlob.Write(s.original)
		origBlob.WriteByte(0)
		origCursor += uint32(len(s.original)) + 1
	}
	transCursor := origCursor
	for i, s := range strs {
		transEntries[i] = tableEntry{Length: uint32(len(s.translation)), Offset: transCursor}
		transBlob.Write(s.translation)
		transBlob.WriteByte(0)
		transCursor += uint32(len(s.translation)) + 1
	}

	order := binary.LittleEndian

	var buf bytes.Buffer
	writeUint32(&buf, order, magicLittleEndian)
	writeUint32(&buf, order, 0) // version 0, no hash table
	writeUint32(&buf, order, count)
	writeUint32(&buf, order, origTableOffset)
	writeUint32(&buf, order, transTableOffset)
	writeUint32(&buf, order, 0)         // hash size
	writeUint32(&buf, order, transCursor) // hash offset: end of translation table

	for _, e := range origEntries {
		writeUint32(&buf, order, e.Length)
		writeUint32(&buf, order, e.Offset)
	}
	for _, e := range transEntries {
		writeUint32(&buf, order, e.Length)
		writeUint32(&buf, order, e.Offset)
	}
	buf.Write(origBlob.Bytes())
	buf.Write(transBlob.Bytes())

	_, err := w.Write(buf.Bytes())
	return err
}

func writeUint32(buf *bytes.Buffer, order binary.ByteOrder, v uint32) {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

// compile renders every catalog entry (plus the synthetic header
// entry) into (original, translation) byte pairs, skipping obsolete
// entries: obsolete entries never participate in MO writing per
// spec.md §3.
func compile(cat *gettext.Catalog) []compiledString {
	strs := make([]compiledString, 0, len(cat.Entries)+1)

	strs = append(strs, compiledString{
		original:    nil,
		translation: []byte(cat.HeaderMsgStr()),
	})

	for _, e := range cat.Entries {
		if e.Obsolete {
			continue
		}
		strs = append(strs, compileEntry(e))
	}
	return strs
}

func compileEntry(e *gettext.Entry) compiledString {
	var orig bytes.Buffer
	if e.MsgCtxt != "" {
		orig.WriteString(e.MsgCtxt)
		orig.WriteByte(ctxSeparator)
	}
	orig.WriteString(e.MsgID)

	var trans bytes.Buffer
	if e.MsgIDPlural != "" {
		orig.WriteByte(pluralSeparator)
		orig.WriteString(e.MsgIDPlural)

		indices := make([]int, 0, len(e.MsgStrPlural))
		for idx := range e.MsgStrPlural {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		for i, idx := range indices {
			if i > 0 {
				trans.WriteByte(pluralSeparator)
			}
			trans.WriteString(e.MsgStrPlural[idx])
		}
	} else {
		trans.WriteString(e.MsgStr)
	}

	return compiledString{original: orig.Bytes(), translation: trans.Bytes()}
}

// String renders the catalog to MO bytes.
func (f *MOFile) String() string {
	var buf bytes.Buffer
	_ = f.WriteTo(&buf)
	return buf.String()
}
