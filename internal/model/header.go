package model

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// HeaderSize is the serialized size of a block header.
const HeaderSize = 80

const (
	auxPowVersionFlag = 0x100
	baseVersionMask   = 0xff
	chainIDShift      = 16
)

// Header is an 80 byte block header together with its decoded fields.
// Raw holds the bytes exactly as they were read; identity is always derived from Raw.
type Header struct {
	wire.BlockHeader
	Raw [HeaderSize]byte
}

// NewHeader decodes raw into a Header. raw must be exactly HeaderSize bytes long.
func NewHeader(raw []byte) (Header, error) {
	if len(raw) != HeaderSize {
		return Header{}, fmt.Errorf("header must be %d bytes, got %d", HeaderSize, len(raw))
	}

	var h Header
	copy(h.Raw[:], raw)
	if err := h.BlockHeader.Deserialize(bytes.NewReader(raw)); err != nil {
		return Header{}, fmt.Errorf("deserialize header: %w", err)
	}
	return h, nil
}

// Hash returns the double SHA-256 of the raw header bytes.
func (h Header) Hash() chainhash.Hash {
	return chainhash.DoubleHashH(h.Raw[:])
}

// VersionBits returns the version field as the unsigned value stored on disk.
func (h Header) VersionBits() uint32 {
	return uint32(h.Version)
}

// HasAuxPow reports whether the version carries the auxpow flag.
func (h Header) HasAuxPow() bool {
	return h.VersionBits()&auxPowVersionFlag != 0
}

// BaseVersion strips the auxpow flag and chain id from the version.
func (h Header) BaseVersion() uint32 {
	return h.VersionBits() & baseVersionMask
}

// ChainID returns the merged-mining chain id encoded in the upper version bits.
func (h Header) ChainID() uint32 {
	return h.VersionBits() >> chainIDShift
}
