// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex/programdata"
)

// enrichOuter applies §4.4.1's three enrichment sources to ev, an event
// that originated at instruction outerIdx (and, if innerIdx != nil, at that
// position within outerIdx's inner-instruction group). group is the
// inner-instruction list belonging to outerIdx (ev's own CPI callees, not
// its siblings); startJ is where the inner-CPI-event scan (a) begins. The
// returned bool reports whether source (a)'s merge actually matched a
// recognized disc, used by the PumpFun MIGRATE special case.
func enrichOuter(ev DexEvent, protocol Protocol, accountKeys []common.Address, group []CompiledInstruction, startJ int, ensurePDIndex func() *programdata.Index, outerIdx int, innerIdx *int, legacyPath bool) (DexEvent, bool) {
	merged := false

	// (a) inner-instruction CPI event payload.
	for j := startJ; j < len(group); j++ {
		data := group[j].Data
		if len(data) < 16 {
			continue
		}
		disc := data[:16]
		tail := data[16:]
		next, ok := DispatchInnerInstruction(protocol, disc, tail, ev)
		if ok {
			ev = next
			merged = true
			break
		}
	}

	// (b) program-data log payload, AMM/CLMM/Whirlpool family only.
	if HasProgramDataLog(protocol) && ev.Meta().EventType.IsSwap() {
		if idx := ensurePDIndex(); idx != nil {
			var item programdata.ProgramDataItem
			var found bool
			if innerIdx == nil {
				item, found = idx.GetOuter(outerIdx)
			} else {
				item, found = idx.GetInner(outerIdx, int(*innerIdx))
			}
			if found && item.ProgramID == ev.Meta().ProgramID {
				ev = DispatchProgramDataLog(protocol, ev, item.Data)
			}
		}
	}

	// (c) swap-data deduction, legacy path only, skipped if already filled.
	if legacyPath {
		if leg, ok := ev.(SwapLegEvent); ok {
			if !ev.Meta().SwapData.Filled() {
				deduceSwapData(leg, accountKeys, group, startJ)
			}
		}
	}

	return ev, merged
}

// flagDevAndBot applies the dev-create-token-trade and bot-wallet flags
// (§4.8, §D) to ev if it implements DevTradeEvent.
func flagDevAndBot(ev DexEvent, sig common.Signature, botWallet common.Address) {
	dt, ok := ev.(DevTradeEvent)
	if !ok {
		return
	}
	trader := dt.Trader()
	protocol := ev.Meta().Protocol
	if DefaultDevAddressRegistry().IsDevAddressInSignature(sig, protocol, trader) {
		dt.SetIsDevCreateTokenTrade(true)
	}
	if botWallet != (common.Address{}) && trader == botWallet {
		dt.SetIsBot(true)
	}
}

// recordCreator registers a token-creation event's creator address in the
// dev-address registry (§4.8) so later trades in the same signature can be
// flagged.
func recordCreator(ev DexEvent, sig common.Signature) {
	ce, ok := ev.(CreatorEvent)
	if !ok {
		return
	}
	DefaultDevAddressRegistry().AddDevAddress(sig, ev.Meta().Protocol, ce.CreatorAddress())
}
