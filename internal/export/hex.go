// Package export writes reconstructed header chains to files and storage.
package export

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

// HexWriter writes one line per block: the raw header followed by the raw auxpow, hex encoded.
type HexWriter struct {
	w io.Writer
}

func NewHexWriter(w io.Writer) *HexWriter {
	return &HexWriter{w: w}
}

func (h *HexWriter) WriteHeaders(ctx context.Context, headers []model.ChainHeader) error {
	bw := bufio.NewWriter(h.w)
	for _, ch := range headers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bw.WriteString(HexLine(ch.Block)); err != nil {
			return fmt.Errorf("write header %d: %w", ch.Height, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write header %d: %w", ch.Height, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush hex output: %w", err)
	}
	return nil
}

// HexLine is the hex encoding of the header bytes and, when present, the auxpow bytes.
func HexLine(b model.Block) string {
	line := hex.EncodeToString(b.Header.Raw[:])
	if b.AuxPow != nil {
		line += hex.EncodeToString(b.AuxPow.Raw)
	}
	return line
}
