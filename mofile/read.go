package mofile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/minios-linux/gocat"
	"github.com/minios-linux/gocat/encoding"
)

const (
	magicLittleEndian uint32 = 0x950412de
	magicBigEndian    uint32 = 0xde120495

	ctxSeparator    = '\x04'
	pluralSeparator = '\x00'

	headerSize = 28
)

type tableEntry struct {
	Length uint32
	Offset uint32
}

// Read parses a compiled MO catalog from an in-memory buffer.
func Read(data []byte) (*MOFile, error) {
	if len(data) == 0 {
		return &MOFile{Catalog: emptyCatalog()}, nil
	}
	if len(data) < headerSize {
		return nil, &gettext.MOParseError{Message: "truncated MO header"}
	}

	order, err := byteOrder(data[0:4])
	if err != nil {
		return nil, err
	}

	version := order.Uint32(data[4:8])
	major := version >> 16
	if major != 0 && major != 1 {
		return nil, &gettext.MOParseError{Message: fmt.Sprintf("unsupported MO major revision %d", major)}
	}

	count := order.Uint32(data[8:12])
	origOffset := order.Uint32(data[12:16])
	transOffset := order.Uint32(data[16:20])

	cat := emptyCatalog()

	for i := uint32(0); i < count; i++ {
		orig, err := readTableEntry(data, order, origOffset, i)
		if err != nil {
			return nil, err
		}
		trans, err := readTableEntry(data, order, transOffset, i)
		if err != nil {
			return nil, err
		}

		if len(orig) == 0 {
			cat.ParseHeaderMsgStr(string(trans))
			continue
		}

		e := decodeEntry(orig, trans)
		cat.Entries = append(cat.Entries, e)
	}

	cat.Encoding = encoding.DetectMO(data, cat.Encoding)

	return &MOFile{Catalog: cat}, nil
}

func emptyCatalog() *gettext.Catalog {
	c := gettext.NewCatalog()
	return c
}

func byteOrder(magic []byte) (binary.ByteOrder, error) {
	le := binary.LittleEndian.Uint32(magic)
	switch le {
	case magicLittleEndian:
		return binary.LittleEndian, nil
	case magicBigEndian:
		return binary.BigEndian, nil
	}
	if binary.BigEndian.Uint32(magic) == magicBigEndian {
		return binary.BigEndian, nil
	}
	return nil, &gettext.MOParseError{Message: "bad MO magic number"}
}

func readTableEntry(data []byte, order binary.ByteOrder, tableOffset uint32, i uint32) ([]byte, error) {
	entryAt := int64(tableOffset) + int64(i)*8
	if entryAt < 0 || entryAt+8 > int64(len(data)) {
		return nil, &gettext.MOParseError{Message: "truncated string table"}
	}
	length := order.Uint32(data[entryAt : entryAt+4])
	offset := order.Uint32(data[entryAt+4 : entryAt+8])
	start := int64(offset)
	end := start + int64(length)
	if start < 0 || end > int64(len(data)) {
		return nil, &gettext.MOParseError{Message: "truncated string data"}
	}
	return data[start:end], nil
}

// decodeEntry splits the raw original/translation byte strings into a
// catalog Entry per spec.md §4.4: optional \x04 context prefix,
// optional \x00 plural split.
func decodeEntry(orig, trans []byte) *gettext.Entry {
	e := gettext.NewEntry()

	if idx := bytes.IndexByte(orig, ctxSeparator); idx >= 0 {
		e.MsgCtxt = string(orig[:idx])
		orig = orig[idx+1:]
	}

	if idx := bytes.IndexByte(orig, pluralSeparator); idx >= 0 {
		e.MsgID = string(orig[:idx])
		e.MsgIDPlural = string(orig[idx+1:])
		e.MsgStrPlural = make(map[int]string)
		for i, part := range bytes.Split(trans, []byte{pluralSeparator}) {
			e.MsgStrPlural[i] = string(part)
		}
	} else {
		e.MsgID = string(orig)
		e.MsgStr = string(trans)
	}

	return e
}

// ReadFile opens and parses a compiled MO catalog from disk.
func ReadFile(path string) (*MOFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Read(data)
	if err != nil {
		return nil, err
	}
	f.FPath = path
	return f, nil
}

// ReadFrom reads a compiled MO catalog from an already-open reader.
func ReadFrom(r io.Reader) (*MOFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading MO source: %w", err)
	}
	return Read(data)
}
