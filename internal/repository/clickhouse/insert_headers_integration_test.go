//go:build integration

package clickhouse

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

func (s *RepositorySuite) TestInsertHeaders() {
	genesis := testChainHeader(s.T(), 0, chainhash.Hash{})
	next := testChainHeader(s.T(), 1, genesis.Block.Hash)

	s.metrics.EXPECT().Observe("insert_headers", model.DOGE, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("max_header_height", model.DOGE, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertHeaders(s.testCtx, model.DOGE, model.Mainnet, []model.ChainHeader{genesis, next}))
	s.Equal(uint64(2), s.countRows("chain_headers"))

	height, exists, err := s.repo.MaxHeaderHeight(s.testCtx, model.DOGE, model.Mainnet)
	s.Require().NoError(err)
	s.True(exists)
	s.Equal(uint64(1), height)
}

func (s *RepositorySuite) TestInsertHeadersReplacesHeight() {
	first := testChainHeader(s.T(), 0, chainhash.Hash{})
	replacement := first
	replacement.Block.Source = "blk00001.dat"

	s.metrics.EXPECT().Observe("insert_headers", model.DOGE, model.Testnet, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertHeaders(s.testCtx, model.DOGE, model.Testnet, []model.ChainHeader{first}))
	s.Require().NoError(s.repo.InsertHeaders(s.testCtx, model.DOGE, model.Testnet, []model.ChainHeader{replacement}))

	s.Equal(uint64(1), s.countRows("chain_headers"))
}

func (s *RepositorySuite) TestMaxHeaderHeightEmpty() {
	s.metrics.EXPECT().Observe("max_header_height", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	height, exists, err := s.repo.MaxHeaderHeight(s.testCtx, model.BTC, model.Mainnet)
	s.Require().NoError(err)
	s.False(exists)
	s.Zero(height)
}
