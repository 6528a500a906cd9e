// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package pumpswap decodes PumpSwap AMM instructions, inner "event"
// CPI logs, and account snapshots (C1), grounded on
// original_source/streaming/event_parser/protocols/pumpswap.
package pumpswap

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the PumpSwap AMM program.
var ProgramID = common.StrToAddress("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")

// BuyEvent covers both the BUY_IX-decoded outer instruction and, once
// merged, the BUY_EVENT inner CPI log payload. Fields tagged `bin:"-"` are
// never populated from the log payload; they come only from the outer
// instruction's account list and must survive a merge untouched.
type BuyEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Timestamp                 int64
	BaseAmountOut             uint64
	MaxQuoteAmountIn          uint64
	UserBaseTokenReserves     uint64
	UserQuoteTokenReserves    uint64
	PoolBaseTokenReserves     uint64
	PoolQuoteTokenReserves    uint64
	QuoteAmountIn             uint64
	LpFeeBasisPoints          uint64
	LpFee                     uint64
	ProtocolFeeBasisPoints    uint64
	ProtocolFee               uint64
	QuoteAmountInWithLpFee    uint64
	UserQuoteAmountIn         uint64
	Pool                      common.Address
	User                      common.Address
	UserBaseTokenAccount      common.Address
	UserQuoteTokenAccount     common.Address
	ProtocolFeeRecipient      common.Address
	ProtocolFeeRecipientTokenAccount common.Address
	CoinCreator               common.Address
	CoinCreatorFeeBasisPoints uint64
	CoinCreatorFee            uint64
	TrackVolume               bool
	TotalUnclaimedTokens      uint64
	TotalClaimedTokens        uint64
	CurrentSolVolume          uint64
	LastUpdateTimestamp       int64

	BaseMint                 common.Address `bin:"-"`
	QuoteMint                common.Address `bin:"-"`
	PoolBaseTokenAccount     common.Address `bin:"-"`
	PoolQuoteTokenAccount    common.Address `bin:"-"`
	CoinCreatorVaultAta      common.Address `bin:"-"`
	CoinCreatorVaultAuthority common.Address `bin:"-"`
	BaseTokenProgram         common.Address `bin:"-"`
	QuoteTokenProgram        common.Address `bin:"-"`
}

func (e *BuyEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *BuyEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.UserQuoteTokenAccount,
		UserToToken:   e.UserBaseTokenAccount,
		FromVault:     e.PoolQuoteTokenAccount,
		ToVault:       e.PoolBaseTokenAccount,
		FromMint:      e.QuoteMint,
		ToMint:        e.BaseMint,
	}
}

// SellEvent mirrors BuyEvent for the opposite trade direction.
type SellEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Timestamp                    int64
	BaseAmountIn                 uint64
	MinQuoteAmountOut            uint64
	UserBaseTokenReserves        uint64
	UserQuoteTokenReserves       uint64
	PoolBaseTokenReserves        uint64
	PoolQuoteTokenReserves       uint64
	QuoteAmountOut               uint64
	LpFeeBasisPoints             uint64
	LpFee                        uint64
	ProtocolFeeBasisPoints       uint64
	ProtocolFee                  uint64
	QuoteAmountOutWithoutLpFee   uint64
	UserQuoteAmountOut           uint64
	Pool                         common.Address
	User                         common.Address
	UserBaseTokenAccount         common.Address
	UserQuoteTokenAccount        common.Address
	ProtocolFeeRecipient         common.Address
	ProtocolFeeRecipientTokenAccount common.Address
	CoinCreator                  common.Address
	CoinCreatorFeeBasisPoints    uint64
	CoinCreatorFee               uint64

	BaseMint                 common.Address `bin:"-"`
	QuoteMint                common.Address `bin:"-"`
	PoolBaseTokenAccount     common.Address `bin:"-"`
	PoolQuoteTokenAccount    common.Address `bin:"-"`
	CoinCreatorVaultAta      common.Address `bin:"-"`
	CoinCreatorVaultAuthority common.Address `bin:"-"`
	BaseTokenProgram         common.Address `bin:"-"`
	QuoteTokenProgram        common.Address `bin:"-"`
}

func (e *SellEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SellEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.UserBaseTokenAccount,
		UserToToken:   e.UserQuoteTokenAccount,
		FromVault:     e.PoolBaseTokenAccount,
		ToVault:       e.PoolQuoteTokenAccount,
		FromMint:      e.BaseMint,
		ToMint:        e.QuoteMint,
	}
}

// CreatePoolEvent records a new PumpSwap pool.
type CreatePoolEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Timestamp         int64
	Index             uint16
	Creator           common.Address
	BaseMint          common.Address
	QuoteMint         common.Address
	BaseMintDecimals  uint8
	QuoteMintDecimals uint8
	BaseAmountIn      uint64
	QuoteAmountIn     uint64
	PoolBaseAmount    uint64
	PoolQuoteAmount   uint64
	MinimumLiquidity  uint64
	InitialLiquidity  uint64
	LpTokenAmountOut  uint64
	PoolBump          uint8
	Pool              common.Address
	LpMint            common.Address
	UserBaseTokenAccount  common.Address
	UserQuoteTokenAccount common.Address
	CoinCreator       common.Address

	UserPoolTokenAccount  common.Address `bin:"-"`
	PoolBaseTokenAccount  common.Address `bin:"-"`
	PoolQuoteTokenAccount common.Address `bin:"-"`
}

func (e *CreatePoolEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// DepositEvent and WithdrawEvent share the same layout.
type DepositEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Timestamp              int64
	LpTokenAmountOut       uint64
	MaxBaseAmountIn        uint64
	MaxQuoteAmountIn       uint64
	UserBaseTokenReserves  uint64
	UserQuoteTokenReserves uint64
	PoolBaseTokenReserves  uint64
	PoolQuoteTokenReserves uint64
	BaseAmountIn           uint64
	QuoteAmountIn          uint64
	LpMintSupply           uint64
	Pool                   common.Address
	User                   common.Address
	UserBaseTokenAccount   common.Address
	UserQuoteTokenAccount  common.Address
	UserPoolTokenAccount   common.Address

	BaseMint              common.Address `bin:"-"`
	QuoteMint             common.Address `bin:"-"`
	PoolBaseTokenAccount  common.Address `bin:"-"`
	PoolQuoteTokenAccount common.Address `bin:"-"`
}

func (e *DepositEvent) Meta() *dex.EventMetadata { return &e.Metadata }

type WithdrawEvent struct {
	Metadata dex.EventMetadata `bin:"-"`

	Timestamp              int64
	LpTokenAmountIn        uint64
	MinBaseAmountOut       uint64
	MinQuoteAmountOut      uint64
	UserBaseTokenReserves  uint64
	UserQuoteTokenReserves uint64
	PoolBaseTokenReserves  uint64
	PoolQuoteTokenReserves uint64
	BaseAmountOut          uint64
	QuoteAmountOut         uint64
	LpMintSupply           uint64
	Pool                   common.Address
	User                   common.Address
	UserBaseTokenAccount   common.Address
	UserQuoteTokenAccount  common.Address
	UserPoolTokenAccount   common.Address

	BaseMint              common.Address `bin:"-"`
	QuoteMint             common.Address `bin:"-"`
	PoolBaseTokenAccount  common.Address `bin:"-"`
	PoolQuoteTokenAccount common.Address `bin:"-"`
}

func (e *WithdrawEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// GlobalConfig mirrors the PumpSwap AMM's global_config account layout,
// decoded field-by-field in account-struct order.
type GlobalConfig struct {
	Admin                         common.Address
	LpFeeBasisPoints              uint64
	ProtocolFeeBasisPoints        uint64
	DisableFlags                  uint8
	ProtocolFeeRecipients         [8]common.Address
	CoinCreatorFeeBasisPoints     uint64
	AdminSetCoinCreatorAuthority  common.Address
	WhitelistPda                  common.Address
	ReservedFeeRecipient           common.Address
	MayhemModeEnabled              bool
}

// GlobalConfigAccountEvent wraps a decoded global_config account snapshot.
type GlobalConfigAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey       common.Address
	Executable   bool
	Lamports     uint64
	Owner        common.Address
	RentEpoch    uint64
	GlobalConfig GlobalConfig
}

func (e *GlobalConfigAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// Pool mirrors the PumpSwap AMM's pool account layout.
type Pool struct {
	PoolBump              uint8
	Index                 uint16
	Creator               common.Address
	BaseMint              common.Address
	QuoteMint             common.Address
	LpMint                common.Address
	PoolBaseTokenAccount  common.Address
	PoolQuoteTokenAccount common.Address
	LpSupply              uint64
	CoinCreator           common.Address
	IsMayhemMode          bool
}

// PoolAccountEvent wraps a decoded pool account snapshot.
type PoolAccountEvent struct {
	Metadata dex.EventMetadata

	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	Pool       Pool
}

func (e *PoolAccountEvent) Meta() *dex.EventMetadata { return &e.Metadata }
