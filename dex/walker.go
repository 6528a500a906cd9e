// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex/programdata"
	mapset "github.com/deckarep/golang-set/v2"
)

// CompiledInstruction is one instruction as it appears on the wire: account
// and program references are indices into the transaction's resolved
// account-key list, grounded on original_source's compiled-instruction shape
// (§6).
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// InnerInstructionGroup is one outer instruction's CPI call list.
type InnerInstructionGroup struct {
	Index        uint32
	Instructions []CompiledInstruction
}

// TransactionInput is everything the walker (C4) needs to process one
// transaction frame.
type TransactionInput struct {
	Signature        common.Signature
	Slot             uint64
	TransactionIndex *uint64
	BlockTime        *int64
	BlockTimeMs      *int64
	RecvUs           int64

	AccountKeys  []common.Address
	Instructions []CompiledInstruction
	InnerGroups  []InnerInstructionGroup
	LogMessages  []string

	// BotWallet flags trades where the user/payer account matches it
	// (§D Bot-wallet flag). Zero value disables the check.
	BotWallet common.Address

	// AllowList restricts which program ids are dispatched at all; nil
	// means allow every protocol this build has registered.
	AllowList mapset.Set[common.Address]
	// EventFilter drops events whose EventType is not a member, applied
	// after enrichment (§4.4.4). Nil means no filtering.
	EventFilter mapset.Set[EventType]
	// LegacyPath enables the swap-data enricher (§4.5); the gRPC path
	// relies on program-data-log enrichment instead (§4.4.1c).
	LegacyPath bool
}

// WalkTransaction decodes one transaction into a stream of events, delivered
// to emit in outer/inner order (§5 ordering guarantees). It never panics on
// malformed input; an instruction it cannot make sense of is simply skipped.
func WalkTransaction(in TransactionInput, emit func(DexEvent)) {
	innerByOuter := make(map[int][]CompiledInstruction, len(in.InnerGroups))
	for _, g := range in.InnerGroups {
		innerByOuter[int(g.Index)] = g.Instructions
	}

	var pdIndex *programdata.Index
	pdBuilt := false
	ensurePDIndex := func() *programdata.Index {
		if !pdBuilt {
			pdIndex = programdata.Build(in.LogMessages)
			pdBuilt = true
		}
		return pdIndex
	}

	resolveAccounts := func(idxs []uint8) []common.Address {
		out := make([]common.Address, 0, len(idxs))
		for _, i := range idxs {
			if int(i) < len(in.AccountKeys) {
				out = append(out, in.AccountKeys[i])
			} else {
				out = append(out, common.Address{})
			}
		}
		return out
	}

	baseMeta := func(outerIdx int64, innerIdx *int64, programID common.Address) EventMetadata {
		return NewEventMetadata(in.Signature, in.Slot, in.TransactionIndex, in.BlockTime, in.BlockTimeMs, in.RecvUs, programID, outerIdx, innerIdx)
	}

	passesFilter := func(ev DexEvent) bool {
		if ev == nil {
			return false
		}
		if in.EventFilter == nil {
			return true
		}
		return in.EventFilter.Contains(ev.Meta().EventType)
	}

	for k, instr := range in.Instructions {
		if int(instr.ProgramIDIndex) >= len(in.AccountKeys) {
			continue
		}
		programID := in.AccountKeys[instr.ProgramIDIndex]
		isComputeBudget := IsComputeBudgetProgram(programID)
		allowed := in.AllowList == nil || in.AllowList.Contains(programID)
		if !allowed && !isComputeBudget {
			continue
		}

		meta := baseMeta(int64(k), nil, programID)

		if isComputeBudget {
			if ev := DispatchComputeBudgetInstruction(instr.Data, meta); passesFilter(ev) {
				emit(ev)
			}
			continue
		}

		protocol, matched := MatchProtocolByProgramID(programID)
		if !matched {
			continue
		}
		discLen := DiscLen(protocol)
		if discLen == 0 {
			discLen = 8
		}
		if len(instr.Data) < discLen {
			continue
		}
		disc := instr.Data[:discLen]
		payload := instr.Data[discLen:]
		accounts := resolveAccounts(instr.Accounts)

		group := innerByOuter[k]

		outerEvent := DispatchInstruction(protocol, disc, payload, accounts, meta)
		var migrateMerged bool
		if outerEvent != nil {
			outerEvent, migrateMerged = enrichOuter(outerEvent, protocol, in.AccountKeys, group, 0, ensurePDIndex, k, nil, in.LegacyPath)
		}

		if outerEvent != nil && outerEvent.Meta().EventType == EventPumpFunMigrate && !migrateMerged {
			outerEvent = nil
		}

		if outerEvent != nil {
			recordCreator(outerEvent, in.Signature)
			flagDevAndBot(outerEvent, in.Signature, in.BotWallet)
		}

		if passesFilter(outerEvent) {
			emit(outerEvent)
		}

		if len(group) == 0 {
			continue
		}

		innerEvents := make([]DexEvent, 0, len(group))
		for j, innerInstr := range group {
			if int(innerInstr.ProgramIDIndex) >= len(in.AccountKeys) {
				continue
			}
			innerProgramID := in.AccountKeys[innerInstr.ProgramIDIndex]
			innerProtocol, ok := MatchProtocolByProgramID(innerProgramID)
			if !ok {
				continue
			}
			innerDiscLen := DiscLen(innerProtocol)
			if innerDiscLen == 0 {
				innerDiscLen = 8
			}
			if len(innerInstr.Data) < innerDiscLen {
				continue
			}
			jj := j
			innerMeta := baseMeta(int64(k), int64Ptr(int64(jj)), innerProgramID)
			innerDisc := innerInstr.Data[:innerDiscLen]
			innerPayload := innerInstr.Data[innerDiscLen:]
			innerAccounts := resolveAccounts(innerInstr.Accounts)

			ev := DispatchInstruction(innerProtocol, innerDisc, innerPayload, innerAccounts, innerMeta)
			if ev == nil {
				continue
			}
			ev, _ = enrichOuter(ev, innerProtocol, in.AccountKeys, group, jj+1, ensurePDIndex, k, &jj, in.LegacyPath)
			recordCreator(ev, in.Signature)
			flagDevAndBot(ev, in.Signature, in.BotWallet)
			innerEvents = append(innerEvents, ev)
		}

		markArbLegs(innerEvents)

		for _, ev := range innerEvents {
			if passesFilter(ev) {
				emit(ev)
			}
		}
	}
}

func int64Ptr(v int64) *int64 { return &v }
