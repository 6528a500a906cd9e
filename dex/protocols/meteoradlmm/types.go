// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package meteoradlmm decodes Meteora DLMM (dynamic liquidity market maker)
// swap instructions, enriched by the inner self-CPI event Meteora logs
// alongside each swap, grounded on
// original_source/streaming/event_parser/protocols/meteora_dlmm.
package meteoradlmm

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ProgramID is the Meteora DLMM program.
var ProgramID = common.StrToAddress("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

// SwapEvent covers the SWAP-decoded outer instruction, enriched in place by
// the inner self-CPI event once ParseInnerInstruction matches SwapEventDisc.
type SwapEvent struct {
	Metadata dex.EventMetadata

	AmountIn     uint64
	MinAmountOut uint64

	LbPair                   common.Address
	BinArrayBitmapExtension  common.Address
	ReserveX                 common.Address
	ReserveY                 common.Address
	UserTokenIn              common.Address
	UserTokenOut             common.Address
	TokenXMint               common.Address
	TokenYMint               common.Address
	Oracle                   common.Address
	HostFeeIn                common.Address
	User                     common.Address
	TokenXProgram            common.Address
	TokenYProgram            common.Address
	EventAuthority           common.Address
	Program                  common.Address
	RemainingAccounts        []common.Address

	// Populated from the inner self-CPI "Swap" event.
	AmountOut    uint64
	SwapForY     bool
	Fee          uint64
	ProtocolFee  uint64
	FeeBps       uint64
	HostFee      uint64
	StartBinID   int32
	EndBinID     int32
}

func (e *SwapEvent) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *SwapEvent) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.UserTokenIn,
		UserToToken:   e.UserTokenOut,
		FromVault:     e.ReserveX,
		ToVault:       e.ReserveY,
		FromMint:      e.TokenXMint,
		ToMint:        e.TokenYMint,
	}
}

// Swap2Event is the Token-2022-aware sibling of SwapEvent, carrying an
// explicit memo program account.
type Swap2Event struct {
	Metadata dex.EventMetadata

	AmountIn     uint64
	MinAmountOut uint64

	LbPair                  common.Address
	BinArrayBitmapExtension common.Address
	ReserveX                common.Address
	ReserveY                common.Address
	UserTokenIn             common.Address
	UserTokenOut            common.Address
	TokenXMint              common.Address
	TokenYMint              common.Address
	Oracle                  common.Address
	HostFeeIn               common.Address
	User                    common.Address
	TokenXProgram           common.Address
	TokenYProgram           common.Address
	MemoProgram             common.Address
	EventAuthority          common.Address
	Program                 common.Address
	RemainingAccounts       []common.Address

	// Populated from the inner self-CPI "Swap2" event.
	AmountOut   uint64
	SwapForY    bool
	Fee         uint64
	ProtocolFee uint64
	FeeBps      uint64
	HostFee     uint64
	StartBinID  int32
	EndBinID    int32
}

func (e *Swap2Event) Meta() *dex.EventMetadata { return &e.Metadata }
func (e *Swap2Event) Endpoints() dex.SwapEndpoints {
	return dex.SwapEndpoints{
		UserFromToken: e.UserTokenIn,
		UserToToken:   e.UserTokenOut,
		FromVault:     e.ReserveX,
		ToVault:       e.ReserveY,
		FromMint:      e.TokenXMint,
		ToMint:        e.TokenYMint,
	}
}
