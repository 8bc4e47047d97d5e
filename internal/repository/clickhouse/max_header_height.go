package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

const maxHeaderHeightQuery = `
SELECT count() AS headers, coalesce(max(height), toUInt64(0)) AS max_height
FROM chain_headers FINAL
WHERE coin = ? AND network = ?`

// MaxHeaderHeight returns the highest stored height for a coin/network and whether any header
// is stored at all.
func (r *Repository) MaxHeaderHeight(ctx context.Context, coin model.Coin, network model.Network) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_header_height", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxHeaderHeightQuery, string(coin), string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max header height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = fmt.Errorf("max header height not found")
		return 0, false, err
	}

	var count, height uint64
	if err = rows.Scan(&count, &height); err != nil {
		return 0, false, fmt.Errorf("scan max header height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max header height: %w", err)
	}

	return height, count > 0, nil
}
