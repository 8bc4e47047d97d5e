// Package network holds the static per-network parameters needed to read block files.
package network

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
)

// ErrUnknownProfile is returned when no profile matches a coin/network pair.
var ErrUnknownProfile = errors.New("unknown network profile")

// Profile identifies where block records start in a block file and which block the chain starts from.
type Profile struct {
	Coin    model.Coin
	Network model.Network
	Magic   [4]byte
	Genesis chainhash.Hash
	// AuxPow enables auxpow decoding for headers carrying the version flag.
	AuxPow bool
}

var profiles = []Profile{
	{
		Coin:    model.DOGE,
		Network: model.Mainnet,
		Magic:   [4]byte{0xc0, 0xc0, 0xc0, 0xc0},
		Genesis: mustHash("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"),
		AuxPow:  true,
	},
	{
		Coin:    model.DOGE,
		Network: model.Testnet,
		Magic:   [4]byte{0xfc, 0xc1, 0xb7, 0xdc},
		Genesis: mustHash("bb0a78264637406b6360aad926284d544d7049f45189db5664f3c4d07350559e"),
		AuxPow:  true,
	},
	{
		Coin:    model.DOGE,
		Network: model.Regtest,
		Magic:   [4]byte{0xfa, 0xbf, 0xb5, 0xda},
		Genesis: mustHash("3d2160a3b5dc4a9d62e7e66a295f70313ac808440ef7400d6c0772171ce973a5"),
		AuxPow:  true,
	},
	fromParams(model.Mainnet, &chaincfg.MainNetParams),
	fromParams(model.Testnet, &chaincfg.TestNet3Params),
	fromParams(model.Regtest, &chaincfg.RegressionNetParams),
	fromParams(model.Signet, &chaincfg.SigNetParams),
}

// Lookup returns the profile for coin and network. Matching is case-insensitive and accepts
// the usual short network aliases.
func Lookup(coin model.Coin, network model.Network) (Profile, error) {
	c := model.Coin(strings.ToUpper(string(coin)))
	n, err := normalizeNetwork(network)
	if err != nil {
		return Profile{}, err
	}
	for _, p := range profiles {
		if p.Coin == c && p.Network == n {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%s/%s: %w", coin, network, ErrUnknownProfile)
}

// Profiles returns a copy of every known profile.
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

func normalizeNetwork(network model.Network) (model.Network, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return model.Mainnet, nil
	case "test", "testnet", "testnet3":
		return model.Testnet, nil
	case "regtest":
		return model.Regtest, nil
	case "signet":
		return model.Signet, nil
	default:
		return "", fmt.Errorf("network %q: %w", network, ErrUnknownProfile)
	}
}

func fromParams(network model.Network, params *chaincfg.Params) Profile {
	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], uint32(params.Net))
	return Profile{
		Coin:    model.BTC,
		Network: network,
		Magic:   magic,
		Genesis: *params.GenesisHash,
	}
}

// mustHash parses a hash in its reversed display form.
func mustHash(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(fmt.Sprintf("invalid genesis hash %q: %v", s, err))
	}
	return *h
}
