// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"io"
	"log"
	"time"

	"github.com/cielu/solana-dex-streamer/common"
	mapset "github.com/deckarep/golang-set/v2"
)

// Latency thresholds grounded on original_source's metrics module
// (SLOW_PROCESSING_THRESHOLD_US, SOLANA_BLOCK_TIME_ADJUSTMENT_MS,
// MAX_LATENCY_THRESHOLD_MS).
const (
	slowProcessingThresholdUs = 5_000
	blockTimeAdjustmentMs     = 500
	maxLatencyThresholdMs     = 2_000
)

// Processor is the event processor (C7): one entry point per upstream frame
// kind, feeding the shared metrics accumulator and emitting debug log lines
// when a frame's processing or gRPC latency crosses a threshold.
type Processor struct {
	Logger  *log.Logger
	Metrics *Metrics
}

// NewProcessor builds a Processor. A nil logger defaults to a discarding
// logger, so logging stays strictly opt-in.
func NewProcessor(logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Processor{Logger: logger, Metrics: DefaultMetrics()}
}

func nowUs() int64 { return time.Now().UnixMicro() }

// ProcessAccountFrame is the account-frame entry point (§4.7). allowList
// restricts which program ids are even attempted against a protocol-specific
// decoder; nil allows every registered protocol. Falls back to the generic
// token-account and nonce-account decoders when no protocol-specific decoder
// claims the account. Returns nil if nothing recognized it or the event
// filter excludes it.
func (p *Processor) ProcessAccountFrame(acc AccountInfo, sig common.Signature, recvUs int64, allowList mapset.Set[common.Address], filter mapset.Set[EventType]) DexEvent {
	p.Metrics.RecordProcess(FrameAccount)

	meta := EventMetadata{Slot: acc.Slot, Signature: sig, RecvUs: recvUs, ProgramID: acc.Owner}

	var ev DexEvent
	if len(acc.Data) >= 8 && (allowList == nil || allowList.Contains(acc.Owner)) {
		if protocol, ok := MatchProtocolByProgramID(acc.Owner); ok {
			ev = DispatchAccount(protocol, acc, meta)
		}
	}
	if ev == nil {
		ev = ParseNonceAccountEvent(acc, meta)
	}
	if ev == nil {
		ev = ParseTokenAccountEvent(acc, meta)
	}
	if ev == nil {
		return nil
	}

	ev.Meta().HandleUs = nowUs() - recvUs
	if filter != nil && !filter.Contains(ev.Meta().EventType) {
		return nil
	}

	p.Metrics.RecordEvents(FrameAccount, 1, ev.Meta().HandleUs)
	p.checkLatency(ev.Meta())
	return ev
}

// ProcessTransactionFrame is the transaction-frame entry point: it drives
// the walker (§4.4) and stamps handle_us / runs the latency check on every
// emitted event before delivering it to emit.
func (p *Processor) ProcessTransactionFrame(in TransactionInput, emit func(DexEvent)) {
	p.Metrics.RecordProcess(FrameTransaction)
	start := nowUs()
	var count uint64
	WalkTransaction(in, func(ev DexEvent) {
		count++
		ev.Meta().HandleUs = nowUs() - ev.Meta().RecvUs
		p.checkLatency(ev.Meta())
		emit(ev)
	})
	p.Metrics.RecordEvents(FrameTransaction, count, nowUs()-start)
}

// ProcessBlockMetaFrame is the block-meta-frame entry point: it synthesizes
// a BlockMetaEvent directly, without going through the dispatcher.
func (p *Processor) ProcessBlockMetaFrame(slot uint64, blockHash string, blockTimeMs, recvUs int64) DexEvent {
	p.Metrics.RecordProcess(FrameBlockMeta)
	ev := NewBlockMetaEvent(slot, blockHash, blockTimeMs, recvUs)
	ev.Metadata.HandleUs = nowUs() - recvUs
	p.Metrics.RecordEvents(FrameBlockMeta, 1, ev.Metadata.HandleUs)
	return ev
}

// checkLatency logs at debug level when handle_us exceeds the slow-path
// threshold, or when the calibrated gRPC latency (recv_us adjusted for
// Solana's ~500ms block-time lag) exceeds its own threshold.
func (p *Processor) checkLatency(meta *EventMetadata) {
	if meta.HandleUs > slowProcessingThresholdUs {
		p.Logger.Printf("slow processing: %dus event_type=%s", meta.HandleUs, meta.EventType)
	}
	if meta.BlockTimeMs == nil {
		return
	}
	recvMs := meta.RecvUs / 1000
	adjustedLatencyMs := recvMs - (*meta.BlockTimeMs + blockTimeAdjustmentMs)
	if adjustedLatencyMs > maxLatencyThresholdMs {
		p.Logger.Printf("high latency: %dms event_type=%s", adjustedLatencyMs, meta.EventType)
	}
}
