// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package whirlpool decodes Orca Whirlpool swap instructions, enriched by
// the base64 "Program data:" Traded-event log line the program emits
// alongside a swap, grounded on
// original_source/streaming/event_parser/protocols/whirlpool.
package whirlpool

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

// ProgramID is the Orca Whirlpool concentrated-liquidity program.
var ProgramID = common.StrToAddress("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")

// SwapEvent covers the SWAP-decoded outer instruction. The Traded fields
// are populated by MergeTradedLog once the program-data line is matched.
type SwapEvent struct {
	Metadata dex.EventMetadata

	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         encodbin.Uint128
	AmountSpecifiedIsInput bool
	AToB                   bool

	TokenProgram       common.Address
	TokenAuthority     common.Address
	Whirlpool          common.Address
	TokenOwnerAccountA common.Address
	TokenVaultA        common.Address
	TokenOwnerAccountB common.Address
	TokenVaultB        common.Address
	TickArray0         common.Address
	TickArray1         common.Address
	TickArray2         common.Address
	Oracle             common.Address
	RemainingAccounts  []common.Address

	// Populated from the Traded program-data log.
	PreSqrtPrice      encodbin.Uint128
	PostSqrtPrice     encodbin.Uint128
	InputAmount       uint64
	OutputAmount      uint64
	InputTransferFee  uint64
	OutputTransferFee uint64
	LpFee             uint64
	ProtocolFee       uint64
}

func (e *SwapEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapEvent) Endpoints() dex.SwapEndpoints {
	if e.AToB {
		return dex.SwapEndpoints{
			UserFromToken: e.TokenOwnerAccountA,
			UserToToken:   e.TokenOwnerAccountB,
			FromVault:     e.TokenVaultA,
			ToVault:       e.TokenVaultB,
		}
	}
	return dex.SwapEndpoints{
		UserFromToken: e.TokenOwnerAccountB,
		UserToToken:   e.TokenOwnerAccountA,
		FromVault:     e.TokenVaultB,
		ToVault:       e.TokenVaultA,
	}
}

// SwapV2Event is the Token-2022-aware sibling of SwapEvent.
type SwapV2Event struct {
	Metadata dex.EventMetadata

	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimit         encodbin.Uint128
	AmountSpecifiedIsInput bool
	AToB                   bool

	TokenProgramA      common.Address
	TokenProgramB      common.Address
	MemoProgram        common.Address
	TokenAuthority     common.Address
	Whirlpool          common.Address
	TokenMintA         common.Address
	TokenMintB         common.Address
	TokenOwnerAccountA common.Address
	TokenVaultA        common.Address
	TokenOwnerAccountB common.Address
	TokenVaultB        common.Address
	TickArray0         common.Address
	TickArray1         common.Address
	TickArray2         common.Address
	Oracle             common.Address
	RemainingAccounts  []common.Address

	PreSqrtPrice      encodbin.Uint128
	PostSqrtPrice     encodbin.Uint128
	InputAmount       uint64
	OutputAmount      uint64
	InputTransferFee  uint64
	OutputTransferFee uint64
	LpFee             uint64
	ProtocolFee       uint64
}

func (e *SwapV2Event) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapV2Event) Endpoints() dex.SwapEndpoints {
	if e.AToB {
		return dex.SwapEndpoints{
			UserFromToken: e.TokenOwnerAccountA,
			UserToToken:   e.TokenOwnerAccountB,
			FromVault:     e.TokenVaultA,
			ToVault:       e.TokenVaultB,
			FromMint:      e.TokenMintA,
			ToMint:        e.TokenMintB,
		}
	}
	return dex.SwapEndpoints{
		UserFromToken: e.TokenOwnerAccountB,
		UserToToken:   e.TokenOwnerAccountA,
		FromVault:     e.TokenVaultB,
		ToVault:       e.TokenVaultA,
		FromMint:      e.TokenMintB,
		ToMint:        e.TokenMintA,
	}
}
