package encoding

import "encoding/binary"

const (
	moMagicLE uint32 = 0x950412de
	moMagicBE uint32 = 0xde120495
)

// headerTranslation reads just enough of an MO binary to return the
// translation bytes of the empty-msgid header entry, without
// decoding the rest of the catalog.
func headerTranslation(data []byte) ([]byte, bool) {
	if len(data) < 28 {
		return nil, false
	}

	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[0:4]) {
	case moMagicLE:
		order = binary.LittleEndian
	case moMagicBE:
		order = binary.BigEndian
	default:
		return nil, false
	}

	count := order.Uint32(data[8:12])
	origOffset := order.Uint32(data[12:16])
	transOffset := order.Uint32(data[16:20])
	if count == 0 {
		return nil, false
	}

	for i := uint32(0); i < count; i++ {
		origEntryAt := int64(origOffset) + int64(i)*8
		if origEntryAt+8 > int64(len(data)) {
			return nil, false
		}
		length := order.Uint32(data[origEntryAt : origEntryAt+4])
		offset := order.Uint32(data[origEntryAt+4 : origEntryAt+8])
		if length != 0 {
			continue
		}
		if int64(offset) > int64(len(data)) {
			return nil, false
		}

		transEntryAt := int64(transOffset) + int64(i)*8
		if transEntryAt+8 > int64(len(data)) {
			return nil, false
		}
		tLength := order.Uint32(data[transEntryAt : transEntryAt+4])
		tOffset := order.Uint32(data[transEntryAt+4 : transEntryAt+8])
		start := int64(tOffset)
		end := start + int64(tLength)
		if start < 0 || end > int64(len(data)) {
			return nil, false
		}
		return data[start:end], true
	}
	return nil, false
}
