// Package blockfile carves block headers and auxpow records out of raw blk*.dat contents.
package blockfile

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrTruncatedInput reports that a fixed or variable-length field runs past the end of the buffer.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedAuxPow reports that an auxpow envelope could not be walked to its end.
	ErrMalformedAuxPow = errors.New("malformed auxpow")
)

// AuxPowError names the auxpow field that could not be read.
type AuxPowError struct {
	Field  string
	Offset int
	Err    error
}

func (e *AuxPowError) Error() string {
	return fmt.Sprintf("malformed auxpow: read %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

// Unwrap exposes both ErrMalformedAuxPow and the underlying cause to errors.Is.
func (e *AuxPowError) Unwrap() []error {
	return []error{ErrMalformedAuxPow, e.Err}
}

// BlockError ties a decoding failure to the block and file it happened in.
type BlockError struct {
	Source string
	Hash   chainhash.Hash
	Offset int
	Err    error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %s in %s at offset %d: %v", e.Hash, e.Source, e.Offset, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
