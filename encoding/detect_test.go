package encoding

import (
	"encoding/binary"
	"testing"
)

func TestDetectPOFindsCharset(t *testing.T) {
	data := []byte("msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=ISO-8859-15\\n\"\n")
	if got := DetectPO(data, ""); got != "ISO-8859-15" {
		t.Fatalf("DetectPO = %q, want ISO-8859-15", got)
	}
}

func TestDetectPOFallsBackToDefault(t *testing.T) {
	data := []byte("msgid \"\"\nmsgstr \"\"\n")
	if got := DetectPO(data, ""); got != DefaultCharset {
		t.Fatalf("DetectPO = %q, want %q", got, DefaultCharset)
	}
	if got := DetectPO(data, "latin1"); got != "latin1" {
		t.Fatalf("DetectPO with explicit default = %q, want latin1", got)
	}
}

func buildHeaderOnlyMO(t *testing.T, order binary.ByteOrder, translation string) []byte {
	t.Helper()
	write32 := func(buf *[]byte, v uint32) {
		var tmp [4]byte
		order.PutUint32(tmp[:], v)
		*buf = append(*buf, tmp[:]...)
	}

	// The magic number is 0x950412de written in the file's own byte
	// order; a big-endian file's first four bytes read back as
	// moMagicBE when decoded little-endian.
	var buf []byte
	write32(&buf, moMagicLE)
	write32(&buf, 0)
	write32(&buf, 1)  // count
	write32(&buf, 28) // orig table offset
	write32(&buf, 36) // trans table offset (28 + 1*8)
	write32(&buf, 0)
	write32(&buf, 0)

	dataStart := uint32(44) // 28 + 8 + 8
	write32(&buf, 0)         // orig length 0
	write32(&buf, dataStart) // orig offset (empty string, just NUL)

	transBytes := []byte(translation)
	write32(&buf, uint32(len(transBytes)))
	write32(&buf, dataStart+1)

	buf = append(buf, 0) // empty original, NUL terminated
	buf = append(buf, transBytes...)
	buf = append(buf, 0)

	return buf
}

func TestDetectMOFindsCharset(t *testing.T) {
	data := buildHeaderOnlyMO(t, binary.LittleEndian, "Content-Type: text/plain; charset=KOI8-R\n")
	if got := DetectMO(data, ""); got != "KOI8-R" {
		t.Fatalf("DetectMO = %q, want KOI8-R", got)
	}
}

func TestDetectMOBigEndian(t *testing.T) {
	data := buildHeaderOnlyMO(t, binary.BigEndian, "Content-Type: text/plain; charset=UTF-8\n")
	if got := DetectMO(data, ""); got != "UTF-8" {
		t.Fatalf("DetectMO(BE) = %q, want UTF-8", got)
	}
}

func TestDetectMOFallsBackOnGarbage(t *testing.T) {
	if got := DetectMO([]byte{0, 1, 2, 3}, "utf-8"); got != "utf-8" {
		t.Fatalf("DetectMO(garbage) = %q, want utf-8", got)
	}
}
