// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// SwapData is the optional swap summary attached to trade events once the
// enricher (C5) or program-data enrichment (§4.4.1.b) has filled it in.
type SwapData struct {
	FromMint    common.Address
	ToMint      common.Address
	FromAmount  uint64
	ToAmount    uint64
	Description string
}

// Filled reports whether both legs of the swap have been deduced.
func (s *SwapData) Filled() bool {
	return s != nil && s.FromAmount != 0 && s.ToAmount != 0
}

// EventMetadata is attached to every emitted event (§3).
type EventMetadata struct {
	Signature        common.Signature
	Slot             uint64
	TransactionIndex *uint64

	BlockTime   *int64
	BlockTimeMs *int64

	RecvUs   int64
	HandleUs int64

	Protocol  Protocol
	EventType EventType
	ProgramID common.Address

	// OuterIndex is the index of the outer instruction that produced (or
	// was enriched by) this event.
	OuterIndex int64
	// InnerIndex is the position within OuterIndex's inner-instruction
	// group, or nil for an outer-level event.
	InnerIndex *int64

	SwapData *SwapData

	// IsArbLeg is set when the event participates in a detected
	// arbitrage cycle (§4.4.2).
	IsArbLeg bool
}

// NewEventMetadata builds a metadata value for an event originating at
// outerIndex/innerIndex of the given transaction. protocol/eventType are
// filled by the dispatcher immediately afterward.
func NewEventMetadata(
	signature common.Signature,
	slot uint64,
	txIndex *uint64,
	blockTime, blockTimeMs *int64,
	recvUs int64,
	programID common.Address,
	outerIndex int64,
	innerIndex *int64,
) EventMetadata {
	return EventMetadata{
		Signature:        signature,
		Slot:             slot,
		TransactionIndex: txIndex,
		BlockTime:        blockTime,
		BlockTimeMs:      blockTimeMs,
		RecvUs:           recvUs,
		ProgramID:        programID,
		OuterIndex:       outerIndex,
		InnerIndex:       innerIndex,
	}
}

// SetSwapData installs the swap summary, replacing any previous value.
func (m *EventMetadata) SetSwapData(from, to common.Address, fromAmount, toAmount uint64) {
	m.SwapData = &SwapData{FromMint: from, ToMint: to, FromAmount: fromAmount, ToAmount: toAmount}
}

// IsOuter reports whether the event originates directly from an outer
// instruction (no inner index).
func (m EventMetadata) IsOuter() bool { return m.InnerIndex == nil }
