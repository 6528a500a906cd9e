// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package raydiumclmm decodes Raydium CLMM swap and pool-creation
// instructions, enriched by the base64 "Program data:" log line the
// program emits alongside a swap, grounded on
// original_source/streaming/event_parser/protocols/raydium_clmm.
package raydiumclmm

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

// ProgramID is the Raydium Concentrated Liquidity Market Maker program.
var ProgramID = common.StrToAddress("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

// SwapEvent covers the SWAP-decoded outer instruction. The log-only fields
// stay zero until a matching program-data line merges in via MergeSwapLog.
type SwapEvent struct {
	Metadata dex.EventMetadata

	Amount                 uint64
	OtherAmountThreshold   uint64
	SqrtPriceLimitX64      encodbin.Uint128
	IsBaseInput            bool

	Payer             common.Address
	AmmConfig         common.Address
	PoolState         common.Address
	InputTokenAccount common.Address
	OutputTokenAccount common.Address
	InputVault        common.Address
	OutputVault       common.Address
	ObservationState  common.Address
	TokenProgram      common.Address
	TickArray         common.Address
	RemainingAccounts []common.Address

	// Populated from the program-data log, once matched by pool state.
	Sender         common.Address
	TokenAccount0  common.Address
	TokenAccount1  common.Address
	Amount0        uint64
	TransferFee0   uint64
	Amount1        uint64
	TransferFee1   uint64
	ZeroForOne     bool
	SqrtPriceX64   encodbin.Uint128
	Liquidity      encodbin.Uint128
	Tick           int32
}

func (e *SwapEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.InputTokenAccount,
		UserToToken:   e.OutputTokenAccount,
		FromVault:     e.InputVault,
		ToVault:       e.OutputVault,
	}
}

// SwapV2Event is the Token-2022-aware sibling of SwapEvent, carrying two
// token program accounts and the input/output vault mints.
type SwapV2Event struct {
	Metadata dex.EventMetadata

	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    encodbin.Uint128
	IsBaseInput          bool

	Payer              common.Address
	AmmConfig          common.Address
	PoolState          common.Address
	InputTokenAccount  common.Address
	OutputTokenAccount common.Address
	InputVault         common.Address
	OutputVault        common.Address
	ObservationState   common.Address
	TokenProgram       common.Address
	TokenProgram2022   common.Address
	MemoProgram        common.Address
	InputVaultMint     common.Address
	OutputVaultMint    common.Address
	RemainingAccounts  []common.Address

	Sender        common.Address
	TokenAccount0 common.Address
	TokenAccount1 common.Address
	Amount0       uint64
	TransferFee0  uint64
	Amount1       uint64
	TransferFee1  uint64
	ZeroForOne    bool
	SqrtPriceX64  encodbin.Uint128
	Liquidity     encodbin.Uint128
	Tick          int32
}

func (e *SwapV2Event) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapV2Event) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.InputTokenAccount,
		UserToToken:   e.OutputTokenAccount,
		FromVault:     e.InputVault,
		ToVault:       e.OutputVault,
		FromMint:      e.InputVaultMint,
		ToMint:        e.OutputVaultMint,
	}
}

// CreatePoolEvent records a new CLMM pool.
type CreatePoolEvent struct {
	Metadata dex.EventMetadata

	SqrtPriceX64 encodbin.Uint128
	OpenTime     uint64

	PoolCreator       common.Address
	AmmConfig         common.Address
	PoolState         common.Address
	TokenMint0        common.Address
	TokenMint1        common.Address
	TokenVault0       common.Address
	TokenVault1       common.Address
	ObservationState  common.Address
	TickArrayBitmap   common.Address
	TokenProgram0     common.Address
	TokenProgram1     common.Address
	SystemProgram     common.Address
	Rent              common.Address
}

func (e *CreatePoolEvent) Meta() *dex.EventMetadata { return &e.Metadata }
