// Package chain rebuilds an ordered header chain from hash-linked blocks.
package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

// Graph holds blocks keyed by hash and the previous-hash link of each.
//
// Writes follow an ordered-overwrite policy: adding a hash that is already present replaces
// its block and link but keeps the position of the first insertion. NextOf walks that order,
// so when two blocks share a parent the one inserted later wins.
type Graph struct {
	blocks map[chainhash.Hash]model.Block
	prevOf map[chainhash.Hash]chainhash.Hash
	order  []chainhash.Hash
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		blocks: make(map[chainhash.Hash]model.Block),
		prevOf: make(map[chainhash.Hash]chainhash.Hash),
	}
}

// Add inserts or replaces b.
func (g *Graph) Add(b model.Block) {
	if _, ok := g.blocks[b.Hash]; !ok {
		g.order = append(g.order, b.Hash)
	}
	g.blocks[b.Hash] = b
	g.prevOf[b.Hash] = b.Header.PrevBlock
}

// Merge adds every block of other in other's insertion order.
func (g *Graph) Merge(other *Graph) {
	if other == nil {
		return
	}
	for _, h := range other.order {
		g.Add(other.blocks[h])
	}
}

// Len returns the number of distinct blocks.
func (g *Graph) Len() int {
	return len(g.order)
}

// Block returns the block stored under hash.
func (g *Graph) Block(hash chainhash.Hash) (model.Block, bool) {
	b, ok := g.blocks[hash]
	return b, ok
}

// PrevOf returns the previous-block hash declared by the block stored under hash.
func (g *Graph) PrevOf(hash chainhash.Hash) (chainhash.Hash, bool) {
	prev, ok := g.prevOf[hash]
	return prev, ok
}

// Hashes returns block hashes in insertion order.
func (g *Graph) Hashes() []chainhash.Hash {
	return append([]chainhash.Hash(nil), g.order...)
}

// NextOf inverts the previous-hash links into a parent -> child map. Forks are not tracked:
// of several children sharing a parent only the last one in insertion order survives.
func (g *Graph) NextOf() map[chainhash.Hash]chainhash.Hash {
	next := make(map[chainhash.Hash]chainhash.Hash, len(g.order))
	for _, h := range g.order {
		next[g.prevOf[h]] = h
	}
	return next
}
