package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FileReader interface {
		ReadFile(ctx context.Context, path string) ([]byte, error)
	}
	BlockScanner interface {
		Scan(source string, data []byte) (*chain.Graph, blockfile.ScanStats, error)
	}
	ChainReconstructor interface {
		Reconstruct(g *chain.Graph, genesis chainhash.Hash, rng chain.Range) (chain.Result, error)
	}
	HeaderSink interface {
		WriteHeaders(ctx context.Context, headers []model.ChainHeader) error
	}
	ExtractorMetrics interface {
		ObserveLoad(files int, err error, started time.Time)
		ObserveChain(length int, gap bool, err error)
	}
)
