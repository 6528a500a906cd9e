// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package computebudget decodes the Solana Compute Budget program's
// instructions, the one non-DEX "protocol" the dispatcher (C2) special-cases
// as dispatch_compute_budget_instruction, grounded on
// original_source/streaming/event_parser/core/dispatcher.rs's
// is_compute_budget_program/dispatch_compute_budget_instruction pair (the
// concrete CommonEventParser implementation was not present in the
// retrieved source; the two instruction layouts below are the Compute
// Budget program's own public Borsh-enum encoding).
package computebudget

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/dex"
)

// Instruction tags, the Compute Budget program's Borsh enum discriminant.
const (
	SetComputeUnitLimitIx byte = 2
	SetComputeUnitPriceIx byte = 3
)

// SetComputeUnitLimitEvent records a transaction's requested compute-unit
// ceiling.
type SetComputeUnitLimitEvent struct {
	Metadata dex.EventMetadata
	Units    uint32
}

func (e *SetComputeUnitLimitEvent) Meta() *dex.EventMetadata { return &e.Metadata }

// SetComputeUnitPriceEvent records a transaction's priority fee, in
// micro-lamports per compute unit.
type SetComputeUnitPriceEvent struct {
	Metadata    dex.EventMetadata
	MicroLamports uint64
}

func (e *SetComputeUnitPriceEvent) Meta() *dex.EventMetadata { return &e.Metadata }

func init() {
	dex.RegisterComputeBudgetParser(ParseInstruction)
}

// ParseInstruction decodes the two recognized compute-budget ops; any other
// tag (RequestUnits, RequestHeapFrame, SetLoadedAccountsDataSizeLimit) is
// left undecoded, matching the dispatcher's "two recognized ops" scope.
func ParseInstruction(data []byte, meta dex.EventMetadata) dex.DexEvent {
	if len(data) < 1 {
		return nil
	}
	switch data[0] {
	case SetComputeUnitLimitIx:
		if len(data) < 5 {
			return nil
		}
		meta.Protocol = dex.ProtocolCommon
		return &SetComputeUnitLimitEvent{Metadata: meta, Units: binary.LittleEndian.Uint32(data[1:5])}
	case SetComputeUnitPriceIx:
		if len(data) < 9 {
			return nil
		}
		meta.Protocol = dex.ProtocolCommon
		return &SetComputeUnitPriceEvent{Metadata: meta, MicroLamports: binary.LittleEndian.Uint64(data[1:9])}
	default:
		return nil
	}
}
