package export

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderRepository interface {
		InsertHeaders(ctx context.Context, coin model.Coin, network model.Network, headers []model.ChainHeader) error
	}
)
