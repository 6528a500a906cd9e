// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import "github.com/cielu/solana-dex-streamer/common"

// AccountInfo is the account-snapshot shape the dispatcher (C2) hands to a
// protocol's ParseAccount: a gRPC/geyser account update plus the slot and
// signature context needed to build an EventMetadata.
type AccountInfo struct {
	Pubkey    common.Address
	Owner     common.Address
	Lamports  uint64
	Data      []byte
	Executable bool
	RentEpoch uint64
	Slot      uint64
}
