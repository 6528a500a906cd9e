// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
)

type stubEvent struct {
	Metadata EventMetadata
	Tag      string
}

func (e *stubEvent) Meta() *EventMetadata { return &e.Metadata }

// withStubProtocol registers h under p for the duration of the test,
// restoring whatever was registered there before (or clearing the slot if
// nothing was).
func withStubProtocol(t *testing.T, p Protocol, h ProtocolHandlers) {
	t.Helper()
	registryMu.Lock()
	prev, had := registry[p]
	registryMu.Unlock()

	RegisterProtocol(p, h)
	t.Cleanup(func() {
		registryMu.Lock()
		defer registryMu.Unlock()
		if had {
			registry[p] = prev
		} else {
			delete(registry, p)
		}
	})
}

func TestDispatchInstruction(t *testing.T) {
	withStubProtocol(t, ProtocolPumpSwap, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			if len(data) == 0 {
				return nil
			}
			return &stubEvent{Metadata: meta, Tag: "outer"}
		},
		IsSwap: func(disc []byte) bool { return disc[0] == 1 },
	})

	meta := NewEventMetadata(common.Signature{1}, 10, nil, nil, nil, 0, common.Address{}, 0, nil)

	t.Run("routes and stamps protocol", func(t *testing.T) {
		ev := DispatchInstruction(ProtocolPumpSwap, []byte{1}, []byte{9, 9}, nil, meta)
		if ev == nil {
			t.Fatalf("expected event, got nil")
		}
		if ev.Meta().Protocol != ProtocolPumpSwap {
			t.Errorf("Protocol = %v, want %v", ev.Meta().Protocol, ProtocolPumpSwap)
		}
	})

	t.Run("decoder rejects short payload", func(t *testing.T) {
		if ev := DispatchInstruction(ProtocolPumpSwap, []byte{1}, nil, nil, meta); ev != nil {
			t.Errorf("expected nil for short payload, got %+v", ev)
		}
	})

	t.Run("unregistered protocol yields nil", func(t *testing.T) {
		if ev := DispatchInstruction(ProtocolMeteoraDlmm, []byte{1}, []byte{9}, nil, meta); ev != nil {
			t.Errorf("expected nil for unregistered protocol, got %+v", ev)
		}
	})

	t.Run("IsSwapInstruction delegates", func(t *testing.T) {
		if !IsSwapInstruction(ProtocolPumpSwap, []byte{1}) {
			t.Errorf("expected disc 1 to be a swap")
		}
		if IsSwapInstruction(ProtocolPumpSwap, []byte{0}) {
			t.Errorf("expected disc 0 to not be a swap")
		}
	})
}

func TestDispatchInnerInstruction(t *testing.T) {
	withStubProtocol(t, ProtocolPumpSwap, ProtocolHandlers{
		DiscLen: 8,
		ParseInner: func(disc, data []byte, outer DexEvent) (DexEvent, bool) {
			if disc[0] != 0xAB {
				return outer, false
			}
			ev := outer.(*stubEvent)
			ev.Tag = "merged"
			return ev, true
		},
	})

	outer := &stubEvent{Tag: "outer"}

	t.Run("recognized disc merges and reports ok", func(t *testing.T) {
		ev, ok := DispatchInnerInstruction(ProtocolPumpSwap, []byte{0xAB}, nil, outer)
		if !ok {
			t.Fatalf("expected ok=true")
		}
		if ev.(*stubEvent).Tag != "merged" {
			t.Errorf("Tag = %q, want merged", ev.(*stubEvent).Tag)
		}
	})

	t.Run("unrecognized disc returns outer unchanged", func(t *testing.T) {
		fresh := &stubEvent{Tag: "outer"}
		ev, ok := DispatchInnerInstruction(ProtocolPumpSwap, []byte{0x00}, nil, fresh)
		if ok {
			t.Errorf("expected ok=false")
		}
		if ev != fresh {
			t.Errorf("expected the same outer event back")
		}
	})

	t.Run("unregistered protocol is not ok", func(t *testing.T) {
		ev, ok := DispatchInnerInstruction(ProtocolBonk, []byte{0xAB}, nil, outer)
		if ok || ev != outer {
			t.Errorf("expected (outer, false) for unregistered protocol")
		}
	})
}

func TestMatchProtocolByProgramID(t *testing.T) {
	p, ok := MatchProtocolByProgramID(common.PumpFunProgramID)
	if !ok || p != ProtocolPumpFun {
		t.Errorf("MatchProtocolByProgramID(PumpFun) = (%v, %v), want (PumpFun, true)", p, ok)
	}
	if _, ok := MatchProtocolByProgramID(common.SystemProgramID); ok {
		t.Errorf("expected system program id to not match any protocol")
	}
}

func TestIsComputeBudgetProgram(t *testing.T) {
	if !IsComputeBudgetProgram(common.ComputeBudgetProgramID) {
		t.Errorf("expected compute-budget program id to match")
	}
	if IsComputeBudgetProgram(common.SystemProgramID) {
		t.Errorf("expected system program id to not match")
	}
}

func TestNewProtocolAllowListAndEventTypeFilter(t *testing.T) {
	allow := NewProtocolAllowList(ProtocolPumpFun, ProtocolBonk)
	if !allow.Contains(common.PumpFunProgramID) || !allow.Contains(common.BonkProgramID) {
		t.Errorf("expected allow-list to contain both program ids")
	}
	if allow.Contains(common.WhirlpoolProgramID) {
		t.Errorf("expected allow-list to exclude Whirlpool")
	}

	filter := NewEventTypeFilter(EventPumpFunBuy, EventPumpFunSell)
	if !filter.Contains(EventPumpFunBuy) || filter.Contains(EventPumpFunMigrate) {
		t.Errorf("event-type filter membership mismatch")
	}
}
