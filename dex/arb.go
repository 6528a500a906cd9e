// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

// markArbLegs implements the arbitrage-leg marking pass (§4.4.2). events is
// one outer instruction's inner-event list, in emission order. A maximal run
// of consecutive swap events with resolved mints (broken by any non-swap
// event, or a swap whose mints are not yet known) is further partitioned
// into maximal chains where leg[i].ToMint == leg[i+1].FromMint; a chain of
// length >= 2 whose first FromMint equals its last ToMint is an arbitrage
// round trip, and every event in it gets IsArbLeg set.
func markArbLegs(events []DexEvent) {
	runStart := 0
	for i := 0; i <= len(events); i++ {
		if i < len(events) && resolvedSwap(events[i]) {
			continue
		}
		if i-runStart >= 2 {
			markArbChains(events[runStart:i])
		}
		runStart = i + 1
	}
}

func resolvedSwap(ev DexEvent) bool {
	meta := ev.Meta()
	return meta.EventType.IsSwap() && meta.SwapData.Filled()
}

func markArbChains(run []DexEvent) {
	chainStart := 0
	for i := 1; i <= len(run); i++ {
		if i < len(run) && run[i-1].Meta().SwapData.ToMint == run[i].Meta().SwapData.FromMint {
			continue
		}
		markArbChain(run[chainStart:i])
		chainStart = i
	}
}

func markArbChain(chain []DexEvent) {
	if len(chain) < 2 {
		return
	}
	first := chain[0].Meta().SwapData
	last := chain[len(chain)-1].Meta().SwapData
	if first.FromMint != last.ToMint {
		return
	}
	for _, ev := range chain {
		ev.Meta().IsArbLeg = true
	}
}
