package chain

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrChainCycle is returned when the walk from genesis revisits a block.
	ErrChainCycle = errors.New("chain links form a cycle")
	// ErrInvalidRange is returned for a bounded range that ends before it starts.
	ErrInvalidRange = errors.New("invalid block range")
)

// Range selects block numbers counted from genesis (0). End is inclusive and only applies when Bounded.
type Range struct {
	Start   uint64
	End     uint64
	Bounded bool
}

// From returns a range without an upper bound.
func From(start uint64) Range {
	return Range{Start: start}
}

// Between returns the inclusive range [start, end].
func Between(start, end uint64) Range {
	return Range{Start: start, End: end, Bounded: true}
}

// Contains reports whether height is selected.
func (r Range) Contains(height uint64) bool {
	return height >= r.Start && (!r.Bounded || height <= r.End)
}

func (r Range) validate() error {
	if r.Bounded && r.End < r.Start {
		return fmt.Errorf("end %d before start %d: %w", r.End, r.Start, ErrInvalidRange)
	}
	return nil
}

// GapReason tells why a walk stopped short.
type GapReason string

var (
	// GapMissingGenesis means the genesis block is not in the data.
	GapMissingGenesis GapReason = "missing_genesis"
	// GapMissingSuccessor means no block in the data names the last reached block as its parent.
	GapMissingSuccessor GapReason = "missing_successor"
)

// Gap describes where the available data ran out before the requested range was covered.
// Height is the number of the last block reached, or 0 with GapMissingGenesis.
type Gap struct {
	Height uint64
	Hash   chainhash.Hash
	Reason GapReason
}

// Result is the part of the requested range that could be reconstructed.
type Result struct {
	Headers []model.ChainHeader
	Gap     *Gap
}

// Reconstructor walks a Graph forward from genesis.
type Reconstructor struct {
	logger *zap.Logger
}

// NewReconstructor returns a Reconstructor that reports gaps on logger.
func NewReconstructor(logger *zap.Logger) *Reconstructor {
	return &Reconstructor{logger: logger}
}

// Reconstruct follows child links from genesis and returns the blocks whose numbers fall in rng.
// Running out of data is not an error: the partial chain is returned with a Gap when the missing
// blocks fall inside rng. The walk visits
// each stored block at most once and fails with ErrChainCycle if the links loop back.
func (r *Reconstructor) Reconstruct(g *Graph, genesis chainhash.Hash, rng Range) (Result, error) {
	if err := rng.validate(); err != nil {
		return Result{}, err
	}

	var res Result
	next := g.NextOf()
	limit := g.Len()
	current := genesis
	var height uint64
	visited := 0

	for {
		block, ok := g.Block(current)
		if !ok {
			if rng.Start > 0 || rng.Bounded {
				res.Gap = &Gap{Height: 0, Hash: current, Reason: GapMissingGenesis}
				r.warn(*res.Gap, rng)
			}
			return res, nil
		}
		visited++

		if rng.Contains(height) {
			res.Headers = append(res.Headers, model.ChainHeader{Height: height, Block: block})
		}
		if rng.Bounded && height >= rng.End {
			return res, nil
		}

		child, ok := next[current]
		if !ok {
			if height < rng.Start || rng.Bounded {
				res.Gap = &Gap{Height: height, Hash: current, Reason: GapMissingSuccessor}
				r.warn(*res.Gap, rng)
			}
			return res, nil
		}
		if visited >= limit {
			return Result{}, fmt.Errorf("block %s at height %d links back into the chain: %w", child, height+1, ErrChainCycle)
		}

		current = child
		height++
	}
}

func (r *Reconstructor) warn(gap Gap, rng Range) {
	fields := []zap.Field{
		zap.String("reason", string(gap.Reason)),
		zap.Uint64("height", gap.Height),
		zap.Stringer("hash", gap.Hash),
		zap.Uint64("start_block", rng.Start),
	}
	if rng.Bounded {
		fields = append(fields, zap.Uint64("end_block", rng.End))
	}
	r.logger.Warn("chain ends before the requested range; more block files may be needed", fields...)
}
