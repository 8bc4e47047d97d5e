package blockfile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headers/pkg/safe"
)

const (
	auxPowVersionFlag = 0x100

	outPointSize = chainhash.HashSize + 4
	sequenceSize = 4
	valueSize    = 8
	lockTimeSize = 4
	indexSize    = 4
	txVersionLen = 4
)

// HasAuxPow reports whether a header version announces a trailing auxpow record.
func HasAuxPow(version uint32) bool {
	return version&auxPowVersionFlag != 0
}

// DecodeAuxPow decodes the auxpow record that follows the header at the start of block.
// It returns the record and the offset in block just past it. When version has no auxpow
// flag the record is nil and end is model.HeaderSize, whatever bytes follow the header.
func DecodeAuxPow(block []byte, version uint32) (*model.AuxPow, int, error) {
	if len(block) < model.HeaderSize {
		return nil, 0, fmt.Errorf("block of %d bytes has no header: %w", len(block), ErrTruncatedInput)
	}
	if !HasAuxPow(version) {
		return nil, model.HeaderSize, nil
	}

	c := &cursor{buf: block, off: model.HeaderSize}
	aux := &model.AuxPow{}

	txStart := c.off
	if err := c.skip(txVersionLen, "coinbase version"); err != nil {
		return nil, 0, err
	}
	inputs, err := c.count("coinbase input count")
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < inputs; i++ {
		if err := c.skip(outPointSize, "coinbase input outpoint"); err != nil {
			return nil, 0, err
		}
		if err := c.skipScript("coinbase input script"); err != nil {
			return nil, 0, err
		}
		if err := c.skip(sequenceSize, "coinbase input sequence"); err != nil {
			return nil, 0, err
		}
	}
	outputs, err := c.count("coinbase output count")
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < outputs; i++ {
		if err := c.skip(valueSize, "coinbase output value"); err != nil {
			return nil, 0, err
		}
		if err := c.skipScript("coinbase output script"); err != nil {
			return nil, 0, err
		}
	}
	if err := c.skip(lockTimeSize, "coinbase lock time"); err != nil {
		return nil, 0, err
	}
	aux.CoinbaseTx = bytes.Clone(block[txStart:c.off])

	parent, err := c.take(chainhash.HashSize, "parent hash")
	if err != nil {
		return nil, 0, err
	}
	copy(aux.ParentHash[:], parent)

	if aux.CoinbaseBranch, err = c.branch("coinbase branch"); err != nil {
		return nil, 0, err
	}
	if aux.CoinbaseIndex, err = c.index("coinbase index"); err != nil {
		return nil, 0, err
	}
	if aux.BlockchainBranch, err = c.branch("blockchain branch"); err != nil {
		return nil, 0, err
	}
	if aux.BlockchainIndex, err = c.index("blockchain index"); err != nil {
		return nil, 0, err
	}

	rawParent, err := c.take(model.HeaderSize, "parent block header")
	if err != nil {
		return nil, 0, err
	}
	if aux.ParentHeader, err = model.NewHeader(rawParent); err != nil {
		return nil, 0, c.fail("parent block header", err)
	}

	aux.Raw = bytes.Clone(block[model.HeaderSize:c.off])
	return aux, c.off, nil
}

// cursor walks a buffer forward, checking every read against the remaining length.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) fail(field string, err error) error {
	return &AuxPowError{Field: field, Offset: c.off, Err: err}
}

func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || len(c.buf)-c.off < n {
		return nil, c.fail(field, fmt.Errorf("need %d bytes, %d left: %w", n, len(c.buf)-c.off, ErrTruncatedInput))
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) skip(n int, field string) error {
	_, err := c.take(n, field)
	return err
}

func (c *cursor) varint(field string) (uint64, error) {
	v, next, err := ReadVarInt(c.buf, c.off)
	if err != nil {
		return 0, c.fail(field, err)
	}
	c.off = next
	return v, nil
}

// count reads a varint element count. Counts that cannot fit in the remaining bytes are
// still accepted here; the element reads that follow run out of input and fail.
func (c *cursor) count(field string) (int, error) {
	v, err := c.varint(field)
	if err != nil {
		return 0, err
	}
	n, err := safe.Int(v)
	if err != nil {
		return 0, c.fail(field, err)
	}
	return n, nil
}

func (c *cursor) skipScript(field string) error {
	n, err := c.count(field + " length")
	if err != nil {
		return err
	}
	return c.skip(n, field)
}

func (c *cursor) branch(field string) ([]chainhash.Hash, error) {
	n, err := c.count(field + " length")
	if err != nil {
		return nil, err
	}
	size, err := safe.MulInt(n, chainhash.HashSize)
	if err != nil {
		return nil, c.fail(field, err)
	}
	raw, err := c.take(size, field)
	if err != nil {
		return nil, err
	}

	hashes := make([]chainhash.Hash, n)
	for i := range hashes {
		copy(hashes[i][:], raw[i*chainhash.HashSize:])
	}
	return hashes, nil
}

func (c *cursor) index(field string) (int32, error) {
	b, err := c.take(indexSize, field)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}
