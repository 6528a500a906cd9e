// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/davecgh/go-spew/spew"
)

// withComputeBudgetParser temporarily installs parse as the registered
// compute-budget decoder, restoring whatever was there before.
func withComputeBudgetParser(t *testing.T, parse func(data []byte, meta EventMetadata) DexEvent) {
	t.Helper()
	computeBudgetMu.Lock()
	prev := computeBudgetParser
	computeBudgetMu.Unlock()

	RegisterComputeBudgetParser(parse)
	t.Cleanup(func() {
		computeBudgetMu.Lock()
		computeBudgetParser = prev
		computeBudgetMu.Unlock()
	})
}

func TestWalkTransaction_OuterEventMergesInnerCPILog(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta, Tag: "outer"}
		},
		ParseInner: func(disc, data []byte, outer DexEvent) (DexEvent, bool) {
			ev := outer.(*stubEvent)
			ev.Tag = "merged"
			return ev, true
		},
	})

	keys := []common.Address{common.PumpFunProgramID, mintAddr(0xAA)}
	in := TransactionInput{
		Signature:   common.Signature{1},
		AccountKeys: keys,
		Instructions: []CompiledInstruction{
			{ProgramIDIndex: 0, Data: append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, 1)},
		},
		InnerGroups: []InnerInstructionGroup{
			{Index: 0, Instructions: []CompiledInstruction{
				{ProgramIDIndex: 1, Data: make([]byte, 20)}, // 16-byte disc + tail, unmatched program id
			}},
		},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 1 {
		t.Fatalf("expected 1 emitted event, got %d", len(emitted))
	}
	se := emitted[0].(*stubEvent)
	if se.Tag != "merged" {
		t.Errorf("Tag = %q, want merged (inner CPI log should have merged onto the outer event)", se.Tag)
	}
	if se.Meta().Protocol != ProtocolPumpFun {
		t.Errorf("Protocol = %v, want PumpFun", se.Meta().Protocol)
	}
	if se.Meta().OuterIndex != 0 || se.Meta().InnerIndex != nil {
		t.Errorf("expected an outer-level event (OuterIndex=0, InnerIndex=nil)")
	}
}

func TestWalkTransaction_InnerInstructionEmittedIndependently(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta, Tag: "outer"}
		},
	})
	withStubProtocol(t, ProtocolBonk, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta, Tag: "inner"}
		},
	})

	keys := []common.Address{common.PumpFunProgramID, common.BonkProgramID}
	in := TransactionInput{
		Signature:   common.Signature{2},
		AccountKeys: keys,
		Instructions: []CompiledInstruction{
			{ProgramIDIndex: 0, Data: make([]byte, 8)},
		},
		InnerGroups: []InnerInstructionGroup{
			{Index: 0, Instructions: []CompiledInstruction{
				{ProgramIDIndex: 1, Data: make([]byte, 8)},
			}},
		},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 2 {
		t.Fatalf("expected outer + inner events, got %d\n%s", len(emitted), spew.Sdump(emitted))
	}
	outer := emitted[0].(*stubEvent)
	inner := emitted[1].(*stubEvent)
	if outer.Tag != "outer" || inner.Tag != "inner" {
		t.Errorf("outer.Tag=%q inner.Tag=%q, want outer/inner", outer.Tag, inner.Tag)
	}
	if inner.Meta().OuterIndex != 0 || inner.Meta().InnerIndex == nil || *inner.Meta().InnerIndex != 0 {
		t.Errorf("expected inner event at OuterIndex=0 InnerIndex=0, got OuterIndex=%d InnerIndex=%v",
			inner.Meta().OuterIndex, inner.Meta().InnerIndex)
	}
}

func TestWalkTransaction_MigrateDroppedWithoutInnerMerge(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			meta.EventType = EventPumpFunMigrate
			return &stubEvent{Metadata: meta, Tag: "migrate"}
		},
	})

	keys := []common.Address{common.PumpFunProgramID}
	in := TransactionInput{
		Signature:    common.Signature{3},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 0 {
		t.Errorf("expected the MIGRATE event to be dropped when no inner merge occurred, got %d events", len(emitted))
	}
}

func TestWalkTransaction_MigrateKeptWhenInnerMerges(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			meta.EventType = EventPumpFunMigrate
			return &stubEvent{Metadata: meta, Tag: "migrate"}
		},
		ParseInner: func(disc, data []byte, outer DexEvent) (DexEvent, bool) {
			ev := outer.(*stubEvent)
			ev.Tag = "migrated"
			return ev, true
		},
	})

	keys := []common.Address{common.PumpFunProgramID, mintAddr(0x01)}
	in := TransactionInput{
		Signature:    common.Signature{4},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
		InnerGroups: []InnerInstructionGroup{
			{Index: 0, Instructions: []CompiledInstruction{
				{ProgramIDIndex: 1, Data: make([]byte, 16)},
			}},
		},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 1 {
		t.Fatalf("expected the MIGRATE event to survive once an inner event merged, got %d events", len(emitted))
	}
	if emitted[0].(*stubEvent).Tag != "migrated" {
		t.Errorf("Tag = %q, want migrated", emitted[0].(*stubEvent).Tag)
	}
}

func TestWalkTransaction_AllowListExcludesProgram(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta}
		},
	})

	keys := []common.Address{common.PumpFunProgramID}
	in := TransactionInput{
		Signature:    common.Signature{5},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
		AllowList:    NewProtocolAllowList(ProtocolBonk), // excludes PumpFun
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 0 {
		t.Errorf("expected the allow-list to exclude PumpFun, got %d events", len(emitted))
	}
}

func TestWalkTransaction_EventFilterDropsUnwantedType(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			meta.EventType = EventPumpFunBuy
			return &stubEvent{Metadata: meta}
		},
	})

	keys := []common.Address{common.PumpFunProgramID}
	in := TransactionInput{
		Signature:    common.Signature{6},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
		EventFilter:  NewEventTypeFilter(EventPumpFunSell), // excludes Buy
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 0 {
		t.Errorf("expected the event filter to drop PumpFunBuy, got %d events", len(emitted))
	}
}

func TestWalkTransaction_ComputeBudgetBypassesAllowList(t *testing.T) {
	withComputeBudgetParser(t, func(data []byte, meta EventMetadata) DexEvent {
		meta.EventType = EventSetComputeUnitLimit
		return &stubEvent{Metadata: meta, Tag: "cb"}
	})

	keys := []common.Address{common.ComputeBudgetProgramID}
	in := TransactionInput{
		Signature:    common.Signature{7},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: []byte{2, 0, 0, 0}}},
		AllowList:    NewProtocolAllowList(ProtocolBonk), // would exclude everything but compute-budget
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 1 {
		t.Fatalf("expected the compute-budget instruction to bypass the allow-list, got %d events", len(emitted))
	}
	if emitted[0].Meta().Protocol != ProtocolCommon {
		t.Errorf("Protocol = %v, want Common", emitted[0].Meta().Protocol)
	}
}

func TestWalkTransaction_EmptyInnerGroupIsFine(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta}
		},
	})

	keys := []common.Address{common.PumpFunProgramID}
	in := TransactionInput{
		Signature:    common.Signature{8},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
		InnerGroups:  []InnerInstructionGroup{{Index: 0, Instructions: nil}},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 1 {
		t.Errorf("expected exactly the outer event with an empty inner group, got %d", len(emitted))
	}
}

func TestWalkTransaction_PayloadShorterThanDiscriminatorIsSkipped(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta}
		},
	})

	keys := []common.Address{common.PumpFunProgramID}
	in := TransactionInput{
		Signature:    common.Signature{9},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: []byte{1, 2, 3}}}, // shorter than DiscLen=8
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 0 {
		t.Errorf("expected a too-short payload to be skipped entirely, got %d events", len(emitted))
	}
}

func TestWalkTransaction_ArbLegsMarkedAcrossInnerEvents(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta, Tag: "outer"}
		},
	})

	fromMint, toMint := mintAddr(0xA1), mintAddr(0xA2)
	leg1 := EventPumpFunBuy
	leg2 := EventPumpFunSell
	calls := 0
	withStubProtocol(t, ProtocolBonk, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			ev := &stubEvent{Metadata: meta}
			if calls == 0 {
				ev.Metadata.EventType = leg1
				ev.Metadata.SwapData = &SwapData{FromMint: fromMint, ToMint: toMint, FromAmount: 1, ToAmount: 1}
			} else {
				ev.Metadata.EventType = leg2
				ev.Metadata.SwapData = &SwapData{FromMint: toMint, ToMint: fromMint, FromAmount: 1, ToAmount: 1}
			}
			calls++
			return ev
		},
	})

	keys := []common.Address{common.PumpFunProgramID, common.BonkProgramID}
	in := TransactionInput{
		Signature:    common.Signature{10},
		AccountKeys:  keys,
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
		InnerGroups: []InnerInstructionGroup{
			{Index: 0, Instructions: []CompiledInstruction{
				{ProgramIDIndex: 1, Data: make([]byte, 8)},
				{ProgramIDIndex: 1, Data: make([]byte, 8)},
			}},
		},
	}

	var emitted []DexEvent
	WalkTransaction(in, func(ev DexEvent) { emitted = append(emitted, ev) })

	if len(emitted) != 3 {
		t.Fatalf("expected outer + 2 inner swap legs, got %d", len(emitted))
	}
	if !emitted[1].Meta().IsArbLeg || !emitted[2].Meta().IsArbLeg {
		t.Errorf("expected both inner legs to be marked as an arbitrage cycle")
	}
	if emitted[0].Meta().IsArbLeg {
		t.Errorf("expected the outer event to not be considered part of the inner arb run")
	}
}
