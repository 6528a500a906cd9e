// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package raydiumcpmm decodes Raydium CPMM (constant-product) swap, deposit,
// withdraw and pool-creation instructions, enriched by the base64
// "Program data:" log line the program emits alongside a swap, grounded on
// original_source/streaming/event_parser/protocols/raydium_cpmm.
package raydiumcpmm

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the Raydium constant-product AMM program.
var ProgramID = common.StrToAddress("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

// SwapEvent covers SWAP_BASE_IN and SWAP_BASE_OUT; the log-only fields are
// populated by MergeSwapLog once the program-data line is matched.
type SwapEvent struct {
	Metadata dex.EventMetadata

	AmountIn         uint64
	MinimumAmountOut uint64
	MaxAmountIn      uint64
	AmountOut        uint64

	InputVaultBefore  uint64
	OutputVaultBefore uint64
	InputAmount       uint64
	OutputAmount      uint64
	InputTransferFee  uint64
	OutputTransferFee uint64
	BaseInput         bool
	TradeFee          uint64
	CreatorFee        uint64
	CreatorFeeOnInput bool

	Payer               common.Address
	Authority           common.Address
	AmmConfig           common.Address
	PoolState           common.Address
	InputTokenAccount   common.Address
	OutputTokenAccount  common.Address
	InputVault          common.Address
	OutputVault         common.Address
	InputTokenProgram   common.Address
	OutputTokenProgram  common.Address
	InputTokenMint      common.Address
	OutputTokenMint     common.Address
	ObservationState    common.Address
}

func (e *SwapEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.InputTokenAccount,
		UserToToken:   e.OutputTokenAccount,
		FromVault:     e.InputVault,
		ToVault:       e.OutputVault,
		FromMint:      e.InputTokenMint,
		ToMint:        e.OutputTokenMint,
	}
}

// DepositEvent adds liquidity to a pool.
type DepositEvent struct {
	Metadata dex.EventMetadata

	LpTokenAmount      uint64
	MaximumToken0Amount uint64
	MaximumToken1Amount uint64

	Owner            common.Address
	Authority        common.Address
	PoolState        common.Address
	OwnerLpToken     common.Address
	Token0Account    common.Address
	Token1Account    common.Address
	Token0Vault      common.Address
	Token1Vault      common.Address
	TokenProgram     common.Address
	TokenProgram2022 common.Address
	Vault0Mint       common.Address
	Vault1Mint       common.Address
	LpMint           common.Address
}

func (e *DepositEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// WithdrawEvent removes liquidity from a pool.
type WithdrawEvent struct {
	Metadata dex.EventMetadata

	LpTokenAmount       uint64
	MinimumToken0Amount uint64
	MinimumToken1Amount uint64

	Owner            common.Address
	Authority        common.Address
	PoolState        common.Address
	OwnerLpToken     common.Address
	Token0Account    common.Address
	Token1Account    common.Address
	Token0Vault      common.Address
	Token1Vault      common.Address
	TokenProgram     common.Address
	TokenProgram2022 common.Address
	Vault0Mint       common.Address
	Vault1Mint       common.Address
	LpMint           common.Address
	MemoProgram      common.Address
}

func (e *WithdrawEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// InitializeEvent creates a new CPMM pool.
type InitializeEvent struct {
	Metadata dex.EventMetadata

	InitAmount0 uint64
	InitAmount1 uint64
	OpenTime    uint64

	Creator                 common.Address
	AmmConfig               common.Address
	Authority               common.Address
	PoolState               common.Address
	Token0Mint              common.Address
	Token1Mint              common.Address
	LpMint                  common.Address
	CreatorToken0           common.Address
	CreatorToken1           common.Address
	CreatorLpToken          common.Address
	Token0Vault             common.Address
	Token1Vault             common.Address
	CreatePoolFee           common.Address
	ObservationState        common.Address
	TokenProgram            common.Address
	Token0Program           common.Address
	Token1Program           common.Address
	AssociatedTokenProgram  common.Address
	SystemProgram           common.Address
	Rent                    common.Address
}

func (e *InitializeEvent) Meta() *dex.EventMetadata { return &e.Metadata }
