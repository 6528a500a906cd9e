// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package raydiumammv4 decodes the legacy (pre-Anchor, single-byte
// discriminator) Raydium AMM V4 instructions, grounded on
// original_source/streaming/event_parser/protocols/raydium_amm_v4.
package raydiumammv4

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the legacy Raydium Liquidity Pool V4 program.
var ProgramID = common.StrToAddress("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")

// SwapEvent covers both SWAP_BASE_IN and SWAP_BASE_OUT; exactly one of the
// two amount pairs is populated depending on which instruction decoded it.
// AmmTargetOrders is occasionally elided from the account list by newer
// pool configurations; HasTargetOrders reports whether a real account was
// present rather than the zero-value placeholder.
type SwapEvent struct {
	Metadata dex.EventMetadata

	AmountIn          uint64
	MinimumAmountOut  uint64
	MaxAmountIn       uint64
	AmountOut         uint64

	TokenProgram                 common.Address
	Amm                          common.Address
	AmmAuthority                 common.Address
	AmmOpenOrders                common.Address
	AmmTargetOrders              common.Address
	HasTargetOrders              bool
	PoolCoinTokenAccount         common.Address
	PoolPcTokenAccount           common.Address
	SerumProgram                 common.Address
	SerumMarket                  common.Address
	SerumBids                    common.Address
	SerumAsks                    common.Address
	SerumEventQueue              common.Address
	SerumCoinVaultAccount        common.Address
	SerumPcVaultAccount          common.Address
	SerumVaultSigner             common.Address
	UserSourceTokenAccount       common.Address
	UserDestinationTokenAccount  common.Address
	UserSourceOwner              common.Address
}

func (e *SwapEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.UserSourceTokenAccount,
		UserToToken:   e.UserDestinationTokenAccount,
		FromVault:     e.PoolPcTokenAccount,
		ToVault:       e.PoolCoinTokenAccount,
	}
}

// DepositEvent adds liquidity to a pool.
type DepositEvent struct {
	Metadata dex.EventMetadata

	MaxCoinAmount uint64
	MaxPcAmount   uint64
	BaseSide      uint64

	TokenProgram          common.Address
	Amm                   common.Address
	AmmAuthority          common.Address
	AmmOpenOrders         common.Address
	AmmTargetOrders       common.Address
	LpMintAddress         common.Address
	PoolCoinTokenAccount  common.Address
	PoolPcTokenAccount    common.Address
	SerumMarket           common.Address
	UserCoinTokenAccount  common.Address
	UserPcTokenAccount    common.Address
	UserLpTokenAccount    common.Address
	UserOwner             common.Address
	SerumEventQueue       common.Address
}

func (e *DepositEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// Initialize2Event creates a new pool.
type Initialize2Event struct {
	Metadata dex.EventMetadata

	Nonce          byte
	OpenTime       uint64
	InitPcAmount   uint64
	InitCoinAmount uint64

	TokenProgram                common.Address
	SplAssociatedTokenAccount   common.Address
	SystemProgram               common.Address
	Rent                        common.Address
	Amm                         common.Address
	AmmAuthority                common.Address
	AmmOpenOrders               common.Address
	LpMint                      common.Address
	CoinMint                    common.Address
	PcMint                      common.Address
	PoolCoinTokenAccount        common.Address
	PoolPcTokenAccount          common.Address
	PoolWithdrawQueue           common.Address
	AmmTargetOrders             common.Address
	PoolTempLp                  common.Address
	SerumProgram                common.Address
	SerumMarket                 common.Address
	UserWallet                  common.Address
	UserTokenCoin               common.Address
	UserTokenPc                 common.Address
	UserLpTokenAccount          common.Address
}

func (e *Initialize2Event) Meta() *dex.EventMetadata { return &e.Metadata }

// WithdrawEvent removes liquidity from a pool.
type WithdrawEvent struct {
	Metadata dex.EventMetadata

	Amount uint64

	TokenProgram               common.Address
	Amm                        common.Address
	AmmAuthority               common.Address
	AmmOpenOrders              common.Address
	AmmTargetOrders            common.Address
	LpMintAddress              common.Address
	PoolCoinTokenAccount       common.Address
	PoolPcTokenAccount         common.Address
	PoolWithdrawQueue          common.Address
	PoolTempLpTokenAccount     common.Address
	SerumProgram               common.Address
	SerumMarket                common.Address
	SerumCoinVaultAccount      common.Address
	SerumPcVaultAccount        common.Address
	SerumVaultSigner           common.Address
	UserLpTokenAccount         common.Address
	UserCoinTokenAccount       common.Address
	UserPcTokenAccount         common.Address
	UserOwner                  common.Address
	SerumEventQueue            common.Address
	SerumBids                  common.Address
	SerumAsks                  common.Address
}

func (e *WithdrawEvent) Meta() *dex.EventMetadata { return &e.Metadata }
