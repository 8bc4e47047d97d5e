package blockfile

import (
	"encoding/binary"
	"fmt"
)

// ReadVarInt decodes the compact-size integer starting at offset and returns its value together
// with the offset of the first byte after it. Unlike wire.ReadVarInt it does not reject
// non-canonical encodings: a block file is read as stored.
func ReadVarInt(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, offset, fmt.Errorf("varint prefix at offset %d: %w", offset, ErrTruncatedInput)
	}

	var width int
	switch prefix := buf[offset]; prefix {
	case 0xfd:
		width = 2
	case 0xfe:
		width = 4
	case 0xff:
		width = 8
	default:
		return uint64(prefix), offset + 1, nil
	}

	start := offset + 1
	if len(buf)-start < width {
		return 0, offset, fmt.Errorf("%d byte varint at offset %d: %w", width, offset, ErrTruncatedInput)
	}

	b := buf[start : start+width]
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), start + width, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), start + width, nil
	default:
		return binary.LittleEndian.Uint64(b), start + width, nil
	}
}
