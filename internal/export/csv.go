package export

import (
	"context"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

var (
	headerColumns = []string{"version", "prev_block", "merkle_root", "timestamp", "bits", "nonce"}
	auxPowColumns = []string{
		"coinbase_tx",
		"parent_hash",
		"coinbase_branch",
		"coinbase_index",
		"blockchain_branch",
		"blockchain_index",
		"parent_block_header",
	}
)

// CSVWriter writes parsed header fields, one record per block, under a column header row.
// Hashes are in display order and 32-bit fields are big-endian hex. The auxpow columns are
// added when at least one block of the chain carries an auxpow; blocks without one leave them
// empty.
type CSVWriter struct {
	w io.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

func (c *CSVWriter) WriteHeaders(ctx context.Context, headers []model.ChainHeader) error {
	withAuxPow := false
	for _, ch := range headers {
		if ch.Block.AuxPow != nil {
			withAuxPow = true
			break
		}
	}

	cw := csv.NewWriter(c.w)
	columns := headerColumns
	if withAuxPow {
		columns = append(append([]string(nil), headerColumns...), auxPowColumns...)
	}
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv columns: %w", err)
	}

	for _, ch := range headers {
		if err := ctx.Err(); err != nil {
			return err
		}
		record := headerRecord(ch.Block.Header)
		if withAuxPow {
			record = append(record, auxPowRecord(ch.Block.AuxPow)...)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write header %d: %w", ch.Height, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

func headerRecord(h model.Header) []string {
	return []string{
		hex32(h.VersionBits()),
		h.PrevBlock.String(),
		h.MerkleRoot.String(),
		hex32(uint32(h.Timestamp.Unix())),
		hex32(h.Bits),
		hex32(h.Nonce),
	}
}

func auxPowRecord(a *model.AuxPow) []string {
	if a == nil {
		return make([]string, len(auxPowColumns))
	}
	return []string{
		hex.EncodeToString(a.CoinbaseTx),
		a.ParentHash.String(),
		joinHashes(a.CoinbaseBranch),
		strconv.FormatInt(int64(a.CoinbaseIndex), 10),
		joinHashes(a.BlockchainBranch),
		strconv.FormatInt(int64(a.BlockchainIndex), 10),
		hex.EncodeToString(a.ParentHeader.Raw[:]),
	}
}

func hex32(v uint32) string {
	return fmt.Sprintf("%08x", v)
}

func joinHashes(hashes []chainhash.Hash) string {
	parts := make([]string, len(hashes))
	for i, h := range hashes {
		parts[i] = h.String()
	}
	return strings.Join(parts, ";")
}
