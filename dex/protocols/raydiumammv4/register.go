// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package raydiumammv4

import (
	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

func init() {
	dex.RegisterProtocol(dex.ProtocolRaydiumAmmV4, dex.ProtocolHandlers{
		DiscLen: 1,
		ParseInstruction: func(disc []byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
			return ParseInstruction(disc[0], data, accounts, meta)
		},
		ParseInner: func(disc []byte, data []byte, outer dex.DexEvent) (dex.DexEvent, bool) {
			var d [16]byte
			copy(d[:], disc)
			return ParseInnerInstruction(d, data, outer), false
		},
		IsSwap: func(disc []byte) bool {
			return IsSwapInstruction(disc[0])
		},
	})
}
