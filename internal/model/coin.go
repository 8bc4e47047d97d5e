// Package model defines domain models for block header extraction.
package model

// Coin names the chain a profile or record belongs to.
type Coin string

// Network names a deployment of a coin (mainnet, testnet and so on).
type Network string

var (
	DOGE Coin = "DOGE"
	BTC  Coin = "BTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
