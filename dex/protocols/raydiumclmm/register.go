// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package raydiumclmm

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

func init() {
	dex.RegisterProtocol(dex.ProtocolRaydiumCLMM, dex.ProtocolHandlers{
		DiscLen: 8,
		ParseInstruction: func(disc []byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
			var d [8]byte
			copy(d[:], disc)
			return ParseInstruction(d, data, accounts, meta)
		},
		ParseInner: func(disc []byte, data []byte, outer dex.DexEvent) (dex.DexEvent, bool) {
			var d [16]byte
			copy(d[:], disc)
			return ParseInnerInstruction(d, data, outer), false
		},
		ParseProgramDataLog: MergeSwapLog,
		IsSwap: func(disc []byte) bool {
			var d [8]byte
			copy(d[:], disc)
			return IsSwapInstruction(d)
		},
	})
}
