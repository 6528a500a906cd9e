// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package bonk decodes LetsBonk (Bonk) launchpad instructions, inner event
// logs, and account snapshots (C1), grounded on
// original_source/streaming/event_parser/protocols/bonk.
package bonk

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the Bonk launchpad program.
var ProgramID = common.StrToAddress("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")

type TradeDirection uint8

const (
	TradeDirectionBuy TradeDirection = iota
	TradeDirectionSell
)

type PoolStatus uint8

const (
	PoolStatusFund PoolStatus = iota
	PoolStatusMigrate
	PoolStatusTrade
)

// TradeEvent covers all four BuyExactIn/BuyExactOut/SellExactIn/SellExactOut
// instruction variants; ExactIn is true for the ExactIn pair.
type TradeEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	PoolState       common.Address
	TotalBaseSell   uint64
	VirtualBase     uint64
	VirtualQuote    uint64
	RealBaseBefore  uint64
	RealQuoteBefore uint64
	RealBaseAfter   uint64
	RealQuoteAfter  uint64
	AmountIn        uint64
	AmountOut       uint64
	ProtocolFee     uint64
	PlatformFee     uint64
	CreatorFee      uint64
	ShareFee        uint64
	TradeDirection  TradeDirection
	PoolStatus      PoolStatus
	ExactIn         bool

	MinimumAmountOut          uint64         `bin:"-"`
	MaximumAmountIn           uint64         `bin:"-"`
	ShareFeeRate              uint64         `bin:"-"`
	Payer                     common.Address `bin:"-"`
	GlobalConfig              common.Address `bin:"-"`
	PlatformConfig            common.Address `bin:"-"`
	UserBaseToken             common.Address `bin:"-"`
	UserQuoteToken            common.Address `bin:"-"`
	BaseVault                 common.Address `bin:"-"`
	QuoteVault                common.Address `bin:"-"`
	BaseTokenMint             common.Address `bin:"-"`
	QuoteTokenMint            common.Address `bin:"-"`
	BaseTokenProgram          common.Address `bin:"-"`
	QuoteTokenProgram         common.Address `bin:"-"`
	IsDevCreateTokenTrade     bool           `bin:"-"`
	IsBot                     bool           `bin:"-"`
	SystemProgram             common.Address `bin:"-"`
	PlatformAssociatedAccount common.Address `bin:"-"`
	CreatorAssociatedAccount  common.Address `bin:"-"`
}

func (e *TradeEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *TradeEvent) Trader() common.Address          { return e.Payer }
func (e *TradeEvent) SetIsDevCreateTokenTrade(v bool) { e.IsDevCreateTokenTrade = v }
func (e *TradeEvent) SetIsBot(v bool)                 { e.IsBot = v }
func (e *TradeEvent) Endpoints() dex.SwapEndpoints {
	if e.TradeDirection == TradeDirectionBuy {
		return dex.SwapEndpoints{
			UserFromToken: e.UserQuoteToken,
			UserToToken:   e.UserBaseToken,
			FromVault:     e.QuoteVault,
			ToVault:       e.BaseVault,
			FromMint:      e.QuoteTokenMint,
			ToMint:        e.BaseTokenMint,
		}
	}
	return dex.SwapEndpoints{
		UserFromToken: e.UserBaseToken,
		UserToToken:   e.UserQuoteToken,
		FromVault:     e.BaseVault,
		ToVault:       e.QuoteVault,
		FromMint:      e.BaseTokenMint,
		ToMint:        e.QuoteTokenMint,
	}
}

// MintParams describes the token minted by a new pool.
type MintParams struct {
	Decimals uint8
	Name     string
	Symbol   string
	Uri      string
}

// CurveParams is a tagged union over Bonk's three bonding-curve shapes.
type CurveParams struct {
	Kind                 string // "constant" | "fixed" | "linear"
	Supply               uint64
	TotalBaseSell        uint64 // constant curve only
	TotalQuoteFundRaising uint64
	MigrateType          uint8
}

type VestingParams struct {
	TotalLockedAmount uint64
	CliffPeriod       uint64
	UnlockPeriod      uint64
}

// AmmFeeOn mirrors the Rust enum selected by InitializeV2/WithToken2022's
// trailing byte.
type AmmFeeOn uint8

const (
	AmmFeeOnQuoteToken AmmFeeOn = iota
	AmmFeeOnBothToken
)

// PoolCreateEvent covers Initialize, InitializeV2, and
// InitializeWithToken2022; AmmFeeOn is nil for the original Initialize
// variant, which carries no fee-distribution selector.
type PoolCreateEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	PoolState    common.Address
	Creator      common.Address
	Config       common.Address
	BaseMintParam MintParams
	CurveParam    CurveParams
	VestingParam  VestingParams
	AmmFeeOn      *AmmFeeOn

	Payer          common.Address `bin:"-"`
	BaseMint       common.Address `bin:"-"`
	QuoteMint      common.Address `bin:"-"`
	BaseVault      common.Address `bin:"-"`
	QuoteVault     common.Address `bin:"-"`
	GlobalConfig   common.Address `bin:"-"`
	PlatformConfig common.Address `bin:"-"`
}

func (e *PoolCreateEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *PoolCreateEvent) CreatorAddress() common.Address { return e.Creator }

// MigrateToAmmEvent records a pool's migration into the legacy Raydium AMM.
type MigrateToAmmEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	BaseLotSize            uint64
	QuoteLotSize           uint64
	MarketVaultSignerNonce uint8

	Payer                    common.Address `bin:"-"`
	BaseMint                 common.Address `bin:"-"`
	QuoteMint                common.Address `bin:"-"`
	OpenbookProgram          common.Address `bin:"-"`
	Market                   common.Address `bin:"-"`
	AmmPool                  common.Address `bin:"-"`
	AmmConfig                common.Address `bin:"-"`
	PoolState                common.Address `bin:"-"`
	GlobalConfig             common.Address `bin:"-"`
	BaseVault                common.Address `bin:"-"`
	QuoteVault               common.Address `bin:"-"`
}

func (e *MigrateToAmmEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// MigrateToCpswapEvent records a pool's migration into Raydium CPMM.
type MigrateToCpswapEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Payer          common.Address `bin:"-"`
	BaseMint       common.Address `bin:"-"`
	QuoteMint      common.Address `bin:"-"`
	PlatformConfig common.Address `bin:"-"`
	CpswapProgram  common.Address `bin:"-"`
	CpswapPool     common.Address `bin:"-"`
	PoolState      common.Address `bin:"-"`
	GlobalConfig   common.Address `bin:"-"`
	BaseVault      common.Address `bin:"-"`
	QuoteVault     common.Address `bin:"-"`
}

func (e *MigrateToCpswapEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// VestingSchedule mirrors the PoolState-embedded vesting schedule.
type VestingSchedule struct {
	TotalLockedAmount    uint64
	CliffPeriod          uint64
	UnlockPeriod         uint64
	StartTime            uint64
	AllocatedShareAmount uint64
}

// PoolState mirrors a Bonk launchpad pool account's on-chain layout.
type PoolState struct {
	Epoch                 uint64
	AuthBump              uint8
	Status                uint8
	BaseDecimals          uint8
	QuoteDecimals         uint8
	MigrateType           uint8
	Supply                uint64
	TotalBaseSell         uint64
	VirtualBase           uint64
	VirtualQuote          uint64
	RealBase              uint64
	RealQuote             uint64
	TotalQuoteFundRaising uint64
	QuoteProtocolFee      uint64
	PlatformFee           uint64
	MigrateFee            uint64
	VestingSchedule       VestingSchedule
	GlobalConfig          common.Address
	PlatformConfig        common.Address
	BaseMint              common.Address
	QuoteMint             common.Address
	BaseVault             common.Address
	QuoteVault            common.Address
	Creator               common.Address
	Padding               [8]uint64
}

// PoolStateAccountEvent wraps a decoded pool-state account snapshot.
type PoolStateAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	PoolState  PoolState
}

func (e *PoolStateAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// GlobalConfigAccount mirrors Bonk's singleton global-config account layout.
type GlobalConfigAccount struct {
	Epoch                uint64
	CurveType             uint8
	Index                 uint16
	MigrateFee            uint64
	TradeFeeRate          uint64
	MaxShareFeeRate       uint64
	MinBaseSupply         uint64
	MaxLockRate           uint64
	MinBaseSellRate       uint64
	MinBaseMigrateRate    uint64
	MinQuoteFundRaising   uint64
	QuoteMint             common.Address
	ProtocolFeeOwner      common.Address
	MigrateFeeOwner       common.Address
	MigrateToAmmWallet    common.Address
	MigrateToCpswapWallet common.Address
	Padding               [16]uint64
}

// GlobalConfigAccountEvent wraps a decoded global-config account snapshot.
type GlobalConfigAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey       common.Address
	Executable   bool
	Lamports     uint64
	Owner        common.Address
	RentEpoch    uint64
	GlobalConfig GlobalConfigAccount
}

func (e *GlobalConfigAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// PlatformConfigAccount mirrors Bonk's per-platform configuration account.
type PlatformConfigAccount struct {
	Epoch             uint64
	PlatformFeeWallet common.Address
	PlatformNftWallet common.Address
	PlatformScale     uint64
	CreatorScale      uint64
	BurnScale         uint64
	FeeRate           uint64
	Name              []byte
	Web               []byte
	Img               []byte
	Padding           []byte
}

// PlatformConfigAccountEvent wraps a decoded platform-config account snapshot.
type PlatformConfigAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey         common.Address
	Executable     bool
	Lamports       uint64
	Owner          common.Address
	RentEpoch      uint64
	PlatformConfig PlatformConfigAccount
}

func (e *PlatformConfigAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }
