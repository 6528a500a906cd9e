// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// CreatorEvent is implemented by the token-creation events the dev-address
// registry (C8) records against: PumpFun's CreateToken/CreateV2Token and
// Bonk's PoolCreate.
type CreatorEvent interface {
	DexEvent
	CreatorAddress() common.Address
}

// DevTradeEvent is implemented by trade events that can be flagged as a dev
// trading their own just-created token (§4.8) or as originating from a
// configured bot wallet (§D).
type DevTradeEvent interface {
	DexEvent
	Trader() common.Address
	SetIsDevCreateTokenTrade(bool)
	SetIsBot(bool)
}
