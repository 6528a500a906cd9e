// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "testing"

func TestNewBlockMetaEvent(t *testing.T) {
	ev := NewBlockMetaEvent(123456, "deadbeef", 1_700_000_000_000, 42)

	if ev.Slot != 123456 || ev.BlockHash != "deadbeef" {
		t.Errorf("Slot/BlockHash = %d/%q, want 123456/deadbeef", ev.Slot, ev.BlockHash)
	}
	meta := ev.Meta()
	if meta.Protocol != ProtocolCommon {
		t.Errorf("Protocol = %v, want Common", meta.Protocol)
	}
	if meta.EventType != EventBlockMeta {
		t.Errorf("EventType = %v, want EventBlockMeta", meta.EventType)
	}
	if meta.BlockTimeMs == nil || *meta.BlockTimeMs != 1_700_000_000_000 {
		t.Errorf("BlockTimeMs mismatch")
	}
	if meta.BlockTime == nil || *meta.BlockTime != 1_700_000_000 {
		t.Errorf("BlockTime = %v, want 1700000000 (BlockTimeMs/1000)", meta.BlockTime)
	}
	if meta.RecvUs != 42 {
		t.Errorf("RecvUs = %d, want 42", meta.RecvUs)
	}
	if !meta.IsOuter() {
		t.Errorf("expected a block-meta event to report IsOuter() true")
	}
}
