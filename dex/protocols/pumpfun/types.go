// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package pumpfun decodes PumpFun bonding-curve instructions, inner "event"
// CPI logs, and account snapshots (C1), grounded on
// original_source/streaming/event_parser/protocols/pumpfun.
package pumpfun

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the PumpFun bonding-curve program.
var ProgramID = common.StrToAddress("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

// CreateTokenEvent is the legacy (pre-Token-2022) token creation event.
type CreateTokenEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Name                  string
	Symbol                string
	Uri                   string
	Mint                  common.Address
	BondingCurve          common.Address
	User                  common.Address
	Creator               common.Address
	Timestamp             int64
	VirtualTokenReserves  uint64
	VirtualSolReserves    uint64
	RealTokenReserves     uint64
	TokenTotalSupply      uint64

	TokenProgram           common.Address `bin:"-"`
	IsMayhemMode           bool           `bin:"-"`
	MintAuthority          common.Address `bin:"-"`
	AssociatedBondingCurve common.Address `bin:"-"`
}

func (e *CreateTokenEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *CreateTokenEvent) CreatorAddress() common.Address { return e.Creator }

// CreateV2TokenEvent adds the Token-2022 program reference and mayhem-mode
// flag over CreateTokenEvent; both are real (non-skip) borsh fields here.
type CreateV2TokenEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Name                 string
	Symbol               string
	Uri                  string
	Mint                 common.Address
	BondingCurve         common.Address
	User                 common.Address
	Creator              common.Address
	Timestamp            int64
	VirtualTokenReserves uint64
	VirtualSolReserves   uint64
	RealTokenReserves    uint64
	TokenTotalSupply     uint64
	TokenProgram         common.Address
	IsMayhemMode         bool

	MintAuthority          common.Address `bin:"-"`
	AssociatedBondingCurve common.Address `bin:"-"`
}

func (e *CreateV2TokenEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *CreateV2TokenEvent) CreatorAddress() common.Address { return e.Creator }

// TradeEvent covers both Buy and Sell; IsBuy/Metadata.EventType disambiguate.
type TradeEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Mint                 common.Address
	SolAmount            uint64
	TokenAmount          uint64
	IsBuy                bool
	User                 common.Address
	Timestamp            int64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
	FeeRecipient         common.Address
	FeeBasisPoints       uint64
	Fee                  uint64
	Creator              common.Address
	CreatorFeeBasisPoints uint64
	CreatorFee            uint64
	TrackVolume           bool
	TotalUnclaimedTokens  uint64
	TotalClaimedTokens    uint64
	CurrentSolVolume      uint64
	LastUpdateTimestamp   int64

	MaxSolCost             uint64         `bin:"-"`
	MinSolOutput           uint64         `bin:"-"`
	Amount                 uint64         `bin:"-"`
	IsBot                  bool           `bin:"-"`
	IsDevCreateTokenTrade  bool           `bin:"-"`
	Global                 common.Address `bin:"-"`
	BondingCurve           common.Address `bin:"-"`
	AssociatedBondingCurve common.Address `bin:"-"`
	AssociatedUser         common.Address `bin:"-"`
	SystemProgram          common.Address `bin:"-"`
	TokenProgram           common.Address `bin:"-"`
	CreatorVault           common.Address `bin:"-"`
	EventAuthority         common.Address `bin:"-"`
	Program                common.Address `bin:"-"`
	GlobalVolumeAccumulator common.Address `bin:"-"`
	UserVolumeAccumulator   common.Address `bin:"-"`
	FeeConfig               common.Address `bin:"-"`
	FeeProgram              common.Address `bin:"-"`
}

func (e *TradeEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *TradeEvent) Endpoints() dex.SwapEndpoints {
	if e.IsBuy {
		return dex.SwapEndpoints{
			UserFromToken: e.AssociatedUser,
			UserToToken:   e.AssociatedUser,
			FromVault:     e.CreatorVault,
			ToVault:       e.BondingCurve,
			FromMint:      common.WSOLMint,
			ToMint:        e.Mint,
		}
	}
	return dex.SwapEndpoints{
		UserFromToken: e.AssociatedUser,
		UserToToken:   e.AssociatedUser,
		FromVault:     e.BondingCurve,
		ToVault:       e.CreatorVault,
		FromMint:      e.Mint,
		ToMint:        common.WSOLMint,
	}
}

func (e *TradeEvent) Trader() common.Address          { return e.User }
func (e *TradeEvent) SetIsDevCreateTokenTrade(v bool) { e.IsDevCreateTokenTrade = v }
func (e *TradeEvent) SetIsBot(v bool)                 { e.IsBot = v }

// MigrateEvent records a bonding curve's migration into PumpSwap.
type MigrateEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	User             common.Address
	Mint             common.Address
	MintAmount       uint64
	SolAmount        uint64
	PoolMigrationFee uint64
	BondingCurve     common.Address
	Timestamp        int64
	Pool             common.Address

	Global                   common.Address `bin:"-"`
	WithdrawAuthority        common.Address `bin:"-"`
	AssociatedBondingCurve   common.Address `bin:"-"`
	SystemProgram            common.Address `bin:"-"`
	TokenProgram             common.Address `bin:"-"`
	PumpAmm                  common.Address `bin:"-"`
	PoolAuthority            common.Address `bin:"-"`
	PoolAuthorityMintAccount common.Address `bin:"-"`
	PoolAuthorityWsolAccount common.Address `bin:"-"`
	AmmGlobalConfig          common.Address `bin:"-"`
	WsolMint                 common.Address `bin:"-"`
	LpMint                   common.Address `bin:"-"`
	UserPoolTokenAccount     common.Address `bin:"-"`
	PoolBaseTokenAccount     common.Address `bin:"-"`
	PoolQuoteTokenAccount    common.Address `bin:"-"`
	Token2022Program         common.Address `bin:"-"`
	AssociatedTokenProgram   common.Address `bin:"-"`
	PumpAmmEventAuthority    common.Address `bin:"-"`
	EventAuthority           common.Address `bin:"-"`
	Program                  common.Address `bin:"-"`
}

func (e *MigrateEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// BondingCurve mirrors a PumpFun bonding-curve account's on-chain layout.
type BondingCurve struct {
	VirtualTokenReserves uint64
	VirtualSolReserves   uint64
	RealTokenReserves    uint64
	RealSolReserves      uint64
	TokenTotalSupply     uint64
	Complete             bool
	Creator              common.Address
	IsMayhemMode         bool
}

// BondingCurveAccountEvent wraps a decoded bonding-curve account snapshot.
type BondingCurveAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey       common.Address
	Executable   bool
	Lamports     uint64
	Owner        common.Address
	RentEpoch    uint64
	BondingCurve BondingCurve
}

func (e *BondingCurveAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// Global mirrors PumpFun's singleton global-config account layout.
type Global struct {
	Initialized                  bool
	Authority                    common.Address
	FeeRecipient                 common.Address
	InitialVirtualTokenReserves  uint64
	InitialVirtualSolReserves    uint64
	InitialRealTokenReserves     uint64
	TokenTotalSupply             uint64
	FeeBasisPoints               uint64
	WithdrawAuthority            common.Address
	EnableMigrate                bool
	PoolMigrationFee             uint64
	CreatorFeeBasisPoints        uint64
	FeeRecipients                [7]common.Address
	SetCreatorAuthority          common.Address
	AdminSetCreatorAuthority     common.Address
	CreateV2Enabled              bool
	WhitelistPda                 common.Address
	ReservedFeeRecipient         common.Address
	MayhemModeEnabled            bool
}

// GlobalAccountEvent wraps a decoded global account snapshot.
type GlobalAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	Global     Global
}

func (e *GlobalAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }
