// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// DexEvent is the tagged sum of every concrete event payload. Every variant
// owns an EventMetadata and is a plain struct; there is no dynamic dispatch
// beyond this one-method interface.
type DexEvent interface {
	Meta() *EventMetadata
}

// SwapEndpoints names the token-account and mint fields a swap event
// carries. Any field may be the zero Address when the concrete protocol
// does not expose it on the instruction itself (e.g. CLMM/CPMM only expose
// vaults; PumpFun exposes a single mint against an implicit SOL leg).
type SwapEndpoints struct {
	UserFromToken common.Address
	UserToToken   common.Address
	FromVault     common.Address
	ToVault       common.Address
	FromMint      common.Address
	ToMint        common.Address
}

// SwapLegEvent is implemented by every event variant that can appear as a
// leg of a trade. The swap-data enricher (C5) and the arbitrage-leg marker
// (§4.4.2) both operate purely against this interface.
type SwapLegEvent interface {
	DexEvent
	Endpoints() SwapEndpoints
}
