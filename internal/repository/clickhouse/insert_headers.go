package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

const insertHeadersQuery = `
INSERT INTO chain_headers (
	coin,
	network,
	height,
	hash,
	prev_hash,
	merkle_root,
	version,
	timestamp,
	bits,
	nonce,
	header,
	auxpow,
	parent_hash,
	coinbase_txid,
	source
) VALUES`

// InsertHeaders stores chain header rows in ClickHouse.
func (r *Repository) InsertHeaders(ctx context.Context, coin model.Coin, network model.Network, headers []model.ChainHeader) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_headers", coin, network, err, start)
	}()

	if len(headers) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertHeadersQuery)
	if err != nil {
		return fmt.Errorf("prepare headers batch: %w", err)
	}

	for _, h := range headers {
		var row []any
		if row, err = headerRow(coin, network, h); err != nil {
			return fmt.Errorf("encode header %d: %w", h.Height, err)
		}
		if err = batch.Append(row...); err != nil {
			return fmt.Errorf("append header %d: %w", h.Height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert headers: %w", err)
	}
	return nil
}

func headerRow(coin model.Coin, network model.Network, h model.ChainHeader) ([]any, error) {
	b := h.Block
	var auxPow, parentHash, coinbaseTxID string
	if b.AuxPow != nil {
		txid, err := b.AuxPow.CoinbaseTxHash()
		if err != nil {
			return nil, err
		}
		auxPow = hex.EncodeToString(b.AuxPow.Raw)
		parentHash = b.AuxPow.ParentHash.String()
		coinbaseTxID = txid.String()
	}
	return []any{
		string(coin),
		string(network),
		h.Height,
		b.Hash.String(),
		b.Header.PrevBlock.String(),
		b.Header.MerkleRoot.String(),
		b.Header.VersionBits(),
		b.Header.Timestamp.UTC(),
		b.Header.Bits,
		b.Header.Nonce,
		hex.EncodeToString(b.Header.Raw[:]),
		auxPow,
		parentHash,
		coinbaseTxID,
		b.Source,
	}, nil
}
