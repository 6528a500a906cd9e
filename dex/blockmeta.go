// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// BlockMetaEvent is synthesized directly from a block-meta frame (§4.7),
// without going through the dispatcher.
type BlockMetaEvent struct {
	Metadata  EventMetadata
	Slot      uint64
	BlockHash string
}

func (e *BlockMetaEvent) Meta() *EventMetadata { return &e.Metadata }

// NewBlockMetaEvent builds a BlockMetaEvent for the given slot/blockhash.
func NewBlockMetaEvent(slot uint64, blockHash string, blockTimeMs, recvUs int64) *BlockMetaEvent {
	blockTime := blockTimeMs / 1000
	meta := NewEventMetadata(common.Signature{}, slot, nil, &blockTime, &blockTimeMs, recvUs, common.Address{}, 0, nil)
	meta.Protocol = ProtocolCommon
	meta.EventType = EventBlockMeta
	return &BlockMetaEvent{Metadata: meta, Slot: slot, BlockHash: blockHash}
}
