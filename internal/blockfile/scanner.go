package blockfile

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/network"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	magicSize  = 4
	lengthSize = 4
)

type (
	Metrics interface {
		ObserveScan(stats ScanStats, err error, started time.Time)
	}
)

// ScanStats summarises one scanned buffer.
type ScanStats struct {
	Bytes        int
	Blocks       int
	AuxPowBlocks int
	// Skipped counts bytes between records that did not start with the magic marker.
	Skipped int
	// Truncated is set when the last record announced more bytes than the buffer holds.
	Truncated bool
}

// Scanner extracts headers from buffers laid out as repeated magic | length | block records.
type Scanner struct {
	magic   [magicSize]byte
	auxPow  bool
	metrics Metrics
	logger  *zap.Logger
}

// NewScanner builds a Scanner for the block file layout of profile.
func NewScanner(profile network.Profile, metrics Metrics, logger *zap.Logger) *Scanner {
	return &Scanner{
		magic:   profile.Magic,
		auxPow:  profile.AuxPow,
		metrics: metrics,
		logger:  logger,
	}
}

// Scan extracts every complete block record from data. source names the buffer in errors and logs.
// Scanning stops quietly at the first position where no further complete record can start; an
// auxpow that cannot be decoded aborts the whole buffer with a *BlockError.
func (s *Scanner) Scan(source string, data []byte) (graph *chain.Graph, stats ScanStats, err error) {
	started := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveScan(stats, err, started)
		}
	}()

	graph = chain.NewGraph()
	stats.Bytes = len(data)

	cursor := 0
	for cursor < len(data) {
		idx := bytes.Index(data[cursor:], s.magic[:])
		if idx < 0 {
			stats.Skipped += len(data) - cursor
			break
		}
		stats.Skipped += idx
		pos := cursor + idx

		if len(data)-pos < magicSize+lengthSize {
			stats.Truncated = true
			break
		}
		length := binary.LittleEndian.Uint32(data[pos+magicSize:])
		blockStart := pos + magicSize + lengthSize
		if uint64(length) > uint64(len(data)-blockStart) {
			stats.Truncated = true
			break
		}
		blockEnd := blockStart + int(length)

		block := data[blockStart:blockEnd]
		if len(block) < model.HeaderSize {
			s.logger.Debug("record too short for a header",
				zap.String("source", source),
				zap.Int("offset", pos),
				zap.Uint32("length", length))
			break
		}

		b, err := s.decodeBlock(source, blockStart, block)
		if err != nil {
			return nil, stats, err
		}
		graph.Add(b)
		stats.Blocks++
		if b.AuxPow != nil {
			stats.AuxPowBlocks++
		}

		cursor = blockEnd
	}

	s.logger.Debug("scanned block file",
		zap.String("source", source),
		zap.Int("bytes", stats.Bytes),
		zap.Int("blocks", stats.Blocks),
		zap.Int("auxpow_blocks", stats.AuxPowBlocks),
		zap.Int("skipped", stats.Skipped),
		zap.Bool("truncated", stats.Truncated))
	return graph, stats, nil
}

func (s *Scanner) decodeBlock(source string, offset int, block []byte) (model.Block, error) {
	header, err := model.NewHeader(block[:model.HeaderSize])
	if err != nil {
		return model.Block{}, err
	}
	b := model.Block{
		Hash:   header.Hash(),
		Header: header,
		Source: source,
		Offset: offset,
	}
	if !s.auxPow {
		return b, nil
	}

	aux, _, err := DecodeAuxPow(block, header.VersionBits())
	if err != nil {
		return model.Block{}, &BlockError{Source: source, Hash: b.Hash, Offset: offset, Err: err}
	}
	b.AuxPow = aux
	return b, nil
}
