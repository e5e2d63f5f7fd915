// internal/store/codec.go
package store

import (
	"encoding/binary"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// encodeCode packs c into its persisted form.
// Byte order is little-endian: the lowest address holds the least significant byte.
func encodeCode(c layout.RawCode) [layout.CodeSize]byte {
	var b [layout.CodeSize]byte
	binary.LittleEndian.PutUint32(b[:], uint32(c))
	return b
}

// decodeCode is the inverse of encodeCode.
func decodeCode(b [layout.CodeSize]byte) layout.RawCode {
	return layout.RawCode(binary.LittleEndian.Uint32(b[:]))
}
