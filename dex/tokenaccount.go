// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
)

// TokenAccountEvent is the generic fallback for an SPL Token / Token-2022
// token account, produced when no protocol-specific decoder claims the
// account (§4.7).
type TokenAccountEvent struct {
	Metadata   EventMetadata
	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	Amount     uint64
	TokenOwner common.Address
}

func (e *TokenAccountEvent) Meta() *EventMetadata { return &e.Metadata }

// TokenInfoEvent is the generic fallback for an SPL Token / Token-2022 mint
// account.
type TokenInfoEvent struct {
	Metadata   EventMetadata
	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	Supply     uint64
	Decimals   uint8
}

func (e *TokenInfoEvent) Meta() *EventMetadata { return &e.Metadata }

// NonceAccountEvent is the generic fallback for a System Program durable
// nonce account.
type NonceAccountEvent struct {
	Metadata   EventMetadata
	Pubkey     common.Address
	Executable bool
	Lamports   uint64
	Owner      common.Address
	RentEpoch  uint64
	Nonce      common.Address
	Authority  common.Address
}

func (e *NonceAccountEvent) Meta() *EventMetadata { return &e.Metadata }

// Packed lengths of the SPL Token program's two account kinds. Token-2022
// accounts carry the same base layout followed by TLV extensions, so a
// length >= splAccountLen still decodes the base fields correctly.
const (
	splMintLen    = 82
	splAccountLen = 165
	nonceStateLen = 80
)

// ParseTokenAccountEvent recognizes a raw SPL Token / Token-2022 mint or
// token account by its packed length. Returns nil if data matches neither
// layout.
func ParseTokenAccountEvent(acc AccountInfo, meta EventMetadata) DexEvent {
	data := acc.Data
	switch {
	case len(data) == splMintLen:
		meta.EventType = EventTokenInfo
		return &TokenInfoEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			Supply:   binary.LittleEndian.Uint64(data[36:44]),
			Decimals: data[44],
		}
	case len(data) >= splAccountLen:
		meta.EventType = EventTokenAccount
		return &TokenAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			Amount:     binary.LittleEndian.Uint64(data[64:72]),
			TokenOwner: common.BytesToAddress(data[32:64]),
		}
	default:
		return nil
	}
}

// ParseNonceAccountEvent recognizes an initialized System Program durable
// nonce account. Returns nil for an uninitialized or undersized account.
func ParseNonceAccountEvent(acc AccountInfo, meta EventMetadata) DexEvent {
	data := acc.Data
	if len(data) < nonceStateLen {
		return nil
	}
	const stateInitialized = 1
	if binary.LittleEndian.Uint32(data[4:8]) != stateInitialized {
		return nil
	}
	meta.EventType = EventNonceAccount
	return &NonceAccountEvent{
		Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
		Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
		Authority: common.BytesToAddress(data[8:40]),
		Nonce:     common.BytesToAddress(data[40:72]),
	}
}
