// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// Protocol is the closed enumeration of DEX protocols the dispatcher (C2)
// routes between. Each value maps 1:1 to a program identifier.
type Protocol uint8

const (
	ProtocolUnknown Protocol = iota
	// Common covers compute-budget and other infrastructure instructions
	// that are not tied to a specific DEX.
	ProtocolCommon
	ProtocolPumpFun
	ProtocolPumpSwap
	ProtocolBonk
	ProtocolRaydiumAmmV4
	ProtocolRaydiumCLMM
	ProtocolRaydiumCPMM
	ProtocolWhirlpool
	ProtocolMeteoraDlmm
)

func (p Protocol) String() string {
	switch p {
	case ProtocolCommon:
		return "Common"
	case ProtocolPumpFun:
		return "PumpFun"
	case ProtocolPumpSwap:
		return "PumpSwap"
	case ProtocolBonk:
		return "Bonk"
	case ProtocolRaydiumAmmV4:
		return "RaydiumAmmV4"
	case ProtocolRaydiumCLMM:
		return "RaydiumCLMM"
	case ProtocolRaydiumCPMM:
		return "RaydiumCPMM"
	case ProtocolWhirlpool:
		return "Whirlpool"
	case ProtocolMeteoraDlmm:
		return "MeteoraDlmm"
	default:
		return "Unknown"
	}
}

// ProgramIDs returns every program id this build of the dispatcher
// recognizes, keyed by protocol. Order is insignificant; callers that need a
// stable allow-list should build a set from the values.
func ProgramIDs() map[Protocol]common.Address {
	return map[Protocol]common.Address{
		ProtocolPumpFun:      common.PumpFunProgramID,
		ProtocolPumpSwap:     common.PumpSwapProgramID,
		ProtocolBonk:         common.BonkProgramID,
		ProtocolRaydiumAmmV4: common.RaydiumAmmV4ProgramID,
		ProtocolRaydiumCLMM:  common.RaydiumCLMMProgramID,
		ProtocolRaydiumCPMM:  common.RaydiumCPMMProgramID,
		ProtocolWhirlpool:    common.WhirlpoolProgramID,
		ProtocolMeteoraDlmm:  common.MeteoraDlmmProgramID,
	}
}
