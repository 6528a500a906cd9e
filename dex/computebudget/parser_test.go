// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package computebudget

import (
	"testing"

	"github.com/cielu/solana-dex-streamer/dex"
)

func TestParseInstruction_SetComputeUnitLimit(t *testing.T) {
	data := []byte{SetComputeUnitLimitIx, 0x40, 0x42, 0x0f, 0x00} // 1_000_000
	ev := ParseInstruction(data, dex.EventMetadata{})
	limit, ok := ev.(*SetComputeUnitLimitEvent)
	if !ok {
		t.Fatalf("expected *SetComputeUnitLimitEvent, got %T", ev)
	}
	if limit.Units != 1_000_000 {
		t.Errorf("Units = %d, want 1000000", limit.Units)
	}
	if limit.Meta().Protocol != dex.ProtocolCommon {
		t.Errorf("Protocol = %v, want Common", limit.Meta().Protocol)
	}
}

func TestParseInstruction_SetComputeUnitPrice(t *testing.T) {
	data := []byte{SetComputeUnitPriceIx, 1, 0, 0, 0, 0, 0, 0, 0}
	ev := ParseInstruction(data, dex.EventMetadata{})
	price, ok := ev.(*SetComputeUnitPriceEvent)
	if !ok {
		t.Fatalf("expected *SetComputeUnitPriceEvent, got %T", ev)
	}
	if price.MicroLamports != 1 {
		t.Errorf("MicroLamports = %d, want 1", price.MicroLamports)
	}
}

func TestParseInstruction_UnrecognizedOpIsNil(t *testing.T) {
	if ev := ParseInstruction([]byte{0x00}, dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil for an unrecognized op (e.g. RequestUnits), got %+v", ev)
	}
}

func TestParseInstruction_ShortPayloadIsNil(t *testing.T) {
	if ev := ParseInstruction(nil, dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil for an empty payload")
	}
	if ev := ParseInstruction([]byte{SetComputeUnitLimitIx, 1, 2}, dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil for a SetComputeUnitLimit payload too short to hold a uint32")
	}
	if ev := ParseInstruction([]byte{SetComputeUnitPriceIx, 1, 2}, dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil for a SetComputeUnitPrice payload too short to hold a uint64")
	}
}

func TestDispatchComputeBudgetInstruction_WiredByInit(t *testing.T) {
	// computebudget's init() registers ParseInstruction with dex's dispatcher;
	// this exercises that registration end-to-end through the public API.
	ev := dex.DispatchComputeBudgetInstruction([]byte{SetComputeUnitLimitIx, 5, 0, 0, 0}, dex.EventMetadata{})
	limit, ok := ev.(*SetComputeUnitLimitEvent)
	if !ok {
		t.Fatalf("expected *SetComputeUnitLimitEvent via the dispatcher, got %T", ev)
	}
	if limit.Units != 5 {
		t.Errorf("Units = %d, want 5", limit.Units)
	}
}
