package model

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// AuxPow is the auxiliary proof-of-work record carried after a merge-mined header.
type AuxPow struct {
	// Raw is the whole envelope as stored, from the coinbase version to the end of the parent header.
	Raw              []byte
	CoinbaseTx       []byte
	ParentHash       chainhash.Hash
	CoinbaseBranch   []chainhash.Hash
	CoinbaseIndex    int32
	BlockchainBranch []chainhash.Hash
	BlockchainIndex  int32
	ParentHeader     Header
}

// CoinbaseMsgTx decodes the parent coinbase transaction.
func (a *AuxPow) CoinbaseMsgTx() (*wire.MsgTx, error) {
	tx := &wire.MsgTx{}
	if err := tx.DeserializeNoWitness(bytes.NewReader(a.CoinbaseTx)); err != nil {
		return nil, fmt.Errorf("deserialize coinbase tx: %w", err)
	}
	return tx, nil
}

// CoinbaseTxHash returns the id of the parent coinbase transaction, the leaf the coinbase
// branch commits to.
func (a *AuxPow) CoinbaseTxHash() (chainhash.Hash, error) {
	tx, err := btcutil.NewTxFromBytes(a.CoinbaseTx)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("parse coinbase tx: %w", err)
	}
	return *tx.Hash(), nil
}

// Block is a header carved out of a block file, plus its auxpow record when present.
type Block struct {
	Hash   chainhash.Hash
	Header Header
	AuxPow *AuxPow
	Source string
	Offset int
}

// ChainHeader is a block placed at its height in a reconstructed chain.
type ChainHeader struct {
	Height uint64
	Block  Block
}
