// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
)

func TestNewProcessor_NilLoggerDiscards(t *testing.T) {
	p := NewProcessor(nil)
	if p.Logger == nil {
		t.Fatalf("expected NewProcessor(nil) to install a discarding logger")
	}
	p.Logger.Printf("this should go nowhere")
}

func TestProcessor_CheckLatency_SlowProcessingLogs(t *testing.T) {
	var buf bytes.Buffer
	p := &Processor{Logger: log.New(&buf, "", 0), Metrics: &Metrics{}}

	meta := &EventMetadata{EventType: EventPumpFunBuy, HandleUs: slowProcessingThresholdUs + 1}
	p.checkLatency(meta)

	if !strings.Contains(buf.String(), "slow processing") {
		t.Errorf("expected a slow-processing log line, got %q", buf.String())
	}
}

func TestProcessor_CheckLatency_FastProcessingIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := &Processor{Logger: log.New(&buf, "", 0), Metrics: &Metrics{}}

	meta := &EventMetadata{EventType: EventPumpFunBuy, HandleUs: 10}
	p.checkLatency(meta)

	if buf.Len() != 0 {
		t.Errorf("expected no log output for fast processing, got %q", buf.String())
	}
}

func TestProcessor_CheckLatency_HighGrpcLatencyLogs(t *testing.T) {
	var buf bytes.Buffer
	p := &Processor{Logger: log.New(&buf, "", 0), Metrics: &Metrics{}}

	blockTimeMs := int64(1_000_000)
	// recvMs - (blockTimeMs + 500) must exceed 2000ms.
	recvUs := (blockTimeMs + blockTimeAdjustmentMs + maxLatencyThresholdMs + 1) * 1000
	meta := &EventMetadata{EventType: EventPumpFunSell, BlockTimeMs: &blockTimeMs, RecvUs: recvUs}
	p.checkLatency(meta)

	if !strings.Contains(buf.String(), "high latency") {
		t.Errorf("expected a high-latency log line, got %q", buf.String())
	}
}

func TestProcessor_CheckLatency_NoBlockTimeSkipsLatencyCheck(t *testing.T) {
	var buf bytes.Buffer
	p := &Processor{Logger: log.New(&buf, "", 0), Metrics: &Metrics{}}
	meta := &EventMetadata{EventType: EventPumpFunSell, RecvUs: 999_999_999_999}
	p.checkLatency(meta)
	if buf.Len() != 0 {
		t.Errorf("expected no log output when BlockTimeMs is nil, got %q", buf.String())
	}
}

func TestProcessor_ProcessAccountFrame_ProtocolDecoderWins(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		ParseAccount: func(acc AccountInfo, meta EventMetadata) DexEvent {
			meta.EventType = EventPumpFunBondingCurveAccount
			return &stubEvent{Metadata: meta, Tag: "account"}
		},
	})

	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: &Metrics{}}
	acc := AccountInfo{Pubkey: mintAddr(0x01), Owner: common.PumpFunProgramID, Data: make([]byte, 8)}

	ev := p.ProcessAccountFrame(acc, common.Signature{1}, 0, nil, nil)
	se, ok := ev.(*stubEvent)
	if !ok {
		t.Fatalf("expected *stubEvent from the registered protocol decoder, got %T", ev)
	}
	if se.Meta().Protocol != ProtocolPumpFun {
		t.Errorf("Protocol = %v, want PumpFun", se.Meta().Protocol)
	}
}

func TestProcessor_ProcessAccountFrame_FallsBackToGenericTokenAccount(t *testing.T) {
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: &Metrics{}}
	data := make([]byte, splAccountLen)
	acc := AccountInfo{Pubkey: mintAddr(0x02), Owner: mintAddr(0x99), Data: data}

	ev := p.ProcessAccountFrame(acc, common.Signature{2}, 0, nil, nil)
	if _, ok := ev.(*TokenAccountEvent); !ok {
		t.Fatalf("expected the generic token-account fallback, got %T", ev)
	}
}

func TestProcessor_ProcessAccountFrame_AllowListExcludesOwner(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		ParseAccount: func(acc AccountInfo, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta}
		},
	})
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: &Metrics{}}
	acc := AccountInfo{Pubkey: mintAddr(0x03), Owner: common.PumpFunProgramID, Data: make([]byte, 8)}

	allow := NewProtocolAllowList(ProtocolBonk) // excludes PumpFun
	ev := p.ProcessAccountFrame(acc, common.Signature{3}, 0, allow, nil)
	if _, ok := ev.(*stubEvent); ok {
		t.Errorf("expected the allow-list to block the PumpFun-specific decoder")
	}
}

func TestProcessor_ProcessAccountFrame_NothingRecognizesReturnsNil(t *testing.T) {
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: &Metrics{}}
	acc := AccountInfo{Pubkey: mintAddr(0x04), Owner: mintAddr(0x98), Data: make([]byte, 4)}
	if ev := p.ProcessAccountFrame(acc, common.Signature{4}, 0, nil, nil); ev != nil {
		t.Errorf("expected nil when no decoder recognizes the account, got %+v", ev)
	}
}

func TestProcessor_ProcessAccountFrame_EventFilterExcludes(t *testing.T) {
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: &Metrics{}}
	data := make([]byte, splAccountLen)
	acc := AccountInfo{Pubkey: mintAddr(0x05), Owner: mintAddr(0x97), Data: data}

	filter := NewEventTypeFilter(EventNonceAccount) // excludes TokenAccount
	if ev := p.ProcessAccountFrame(acc, common.Signature{5}, 0, nil, filter); ev != nil {
		t.Errorf("expected the event filter to exclude TokenAccount, got %+v", ev)
	}
}

func TestProcessor_ProcessTransactionFrame_RecordsMetrics(t *testing.T) {
	withStubProtocol(t, ProtocolPumpFun, ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc, data []byte, accounts []common.Address, meta EventMetadata) DexEvent {
			return &stubEvent{Metadata: meta}
		},
	})

	m := &Metrics{}
	m.SetEnabled(true)
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: m}

	in := TransactionInput{
		Signature:    common.Signature{6},
		AccountKeys:  []common.Address{common.PumpFunProgramID},
		Instructions: []CompiledInstruction{{ProgramIDIndex: 0, Data: make([]byte, 8)}},
	}

	var got []DexEvent
	p.ProcessTransactionFrame(in, func(ev DexEvent) { got = append(got, ev) })

	if len(got) != 1 {
		t.Fatalf("expected 1 emitted event, got %d", len(got))
	}
	snap := m.Snapshot()
	if snap.Frames[FrameTransaction].ProcessCount != 1 {
		t.Errorf("ProcessCount = %d, want 1", snap.Frames[FrameTransaction].ProcessCount)
	}
	if snap.Frames[FrameTransaction].EventsProcessed != 1 {
		t.Errorf("EventsProcessed = %d, want 1", snap.Frames[FrameTransaction].EventsProcessed)
	}
}

func TestProcessor_ProcessBlockMetaFrame(t *testing.T) {
	m := &Metrics{}
	m.SetEnabled(true)
	p := &Processor{Logger: log.New(bytes.NewBuffer(nil), "", 0), Metrics: m}

	ev := p.ProcessBlockMetaFrame(77, "abc123", 1_700_000_000_000, 0)
	bm, ok := ev.(*BlockMetaEvent)
	if !ok || bm.Slot != 77 || bm.BlockHash != "abc123" {
		t.Fatalf("unexpected block-meta event: %+v ok=%v", ev, ok)
	}
	snap := m.Snapshot()
	if snap.Frames[FrameBlockMeta].ProcessCount != 1 || snap.Frames[FrameBlockMeta].EventsProcessed != 1 {
		t.Errorf("expected BlockMeta frame counters to be recorded, got %+v", snap.Frames[FrameBlockMeta])
	}
}
