// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
)

// deduceSwapData is the swap-data enricher (C5, §4.5): it scans the
// inner-instruction group starting at startJ for SPL Token/Token-2022/System
// transfers whose (source, destination) pair matches one of leg's known
// endpoint pairs, filling EventMetadata.SwapData as it goes. It stops once
// both sides are filled or an instruction outside the three known programs
// is encountered.
func deduceSwapData(leg SwapLegEvent, accountKeys []common.Address, group []CompiledInstruction, startJ int) {
	ep := leg.Endpoints()
	meta := leg.Meta()

	type pair struct {
		source, dest common.Address
		isFrom       bool
	}
	// The six endpoint-pair arms, matched in the same order the original
	// scans them: user-side transfers into/out of either vault can appear
	// in either direction depending on instruction ordering, and which side
	// (from/to) a pair fills is independent of which account initiates it.
	pairs := []pair{
		{ep.UserToToken, ep.ToVault, true},      // to_token -> to_vault fills the FROM side
		{ep.FromVault, ep.UserFromToken, false}, // from_vault -> user fills the TO side
		{ep.UserFromToken, ep.FromVault, true},  // user -> from_vault fills the FROM side
		{ep.ToVault, ep.UserToToken, false},     // to_vault -> user fills the TO side
		{ep.UserFromToken, ep.ToVault, true},    // user's from-token -> to_vault fills the FROM side
		{ep.FromVault, ep.UserToToken, false},   // from_vault -> user's to-token fills the TO side
	}

	var fromAmount, toAmount uint64
	var fromFilled, toFilled bool

	for j := startJ; j < len(group); j++ {
		source, dest, amount, ok := parseTransfer(accountKeys, group[j])
		if !ok {
			break
		}
		for _, p := range pairs {
			if p.source != source || p.dest != dest {
				continue
			}
			if p.isFrom && !fromFilled {
				fromAmount = amount
				fromFilled = true
			} else if !p.isFrom && !toFilled {
				toAmount = amount
				toFilled = true
			}
			break
		}
		if fromFilled && toFilled {
			break
		}
	}

	if fromFilled || toFilled {
		meta.SwapData = &SwapData{FromMint: ep.FromMint, ToMint: ep.ToMint, FromAmount: fromAmount, ToAmount: toAmount}
	}
}

const (
	splTransferTag        = 3
	splTransferCheckedTag = 12
	systemTransferTag     = 2
)

// parseTransfer recognizes SPL Token Transfer, SPL Token-2022
// TransferChecked, and System Program Transfer, returning the resolved
// source/destination accounts and amount. ok is false for any other
// instruction or program (terminating the scan), or one whose account/data
// layout is too short for its own shape.
func parseTransfer(accountKeys []common.Address, instr CompiledInstruction) (source, dest common.Address, amount uint64, ok bool) {
	if int(instr.ProgramIDIndex) >= len(accountKeys) {
		return common.Address{}, common.Address{}, 0, false
	}
	programID := accountKeys[instr.ProgramIDIndex]
	resolve := func(i int) (common.Address, bool) {
		if i < 0 || i >= len(instr.Accounts) {
			return common.Address{}, false
		}
		idx := instr.Accounts[i]
		if int(idx) >= len(accountKeys) {
			return common.Address{}, false
		}
		return accountKeys[idx], true
	}

	switch programID {
	case common.TokenProgramID, common.Token2022ProgramID:
		if len(instr.Data) < 1 {
			return common.Address{}, common.Address{}, 0, false
		}
		switch instr.Data[0] {
		case splTransferTag:
			if len(instr.Accounts) < 3 || len(instr.Data) < 9 {
				return common.Address{}, common.Address{}, 0, false
			}
			src, _ := resolve(0)
			dst, _ := resolve(1)
			return src, dst, binary.LittleEndian.Uint64(instr.Data[1:9]), true
		case splTransferCheckedTag:
			if len(instr.Accounts) < 4 || len(instr.Data) < 9 {
				return common.Address{}, common.Address{}, 0, false
			}
			src, _ := resolve(0)
			dst, _ := resolve(2)
			return src, dst, binary.LittleEndian.Uint64(instr.Data[1:9]), true
		}
		return common.Address{}, common.Address{}, 0, false
	case common.SystemProgramID:
		if len(instr.Data) < 1 || instr.Data[0] != systemTransferTag {
			return common.Address{}, common.Address{}, 0, false
		}
		if len(instr.Accounts) < 2 || len(instr.Data) < 12 {
			return common.Address{}, common.Address{}, 0, false
		}
		src, _ := resolve(0)
		dst, _ := resolve(1)
		return src, dst, binary.LittleEndian.Uint64(instr.Data[4:12]), true
	default:
		return common.Address{}, common.Address{}, 0, false
	}
}
