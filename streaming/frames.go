// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package streaming holds the upstream frame shapes and the subscription
// controller (C6) that drives a single bidirectional event stream.
package streaming

import "github.com/cielu/solana-dex-streamer/common"

// CompiledInstructionFrame is one instruction exactly as it appears on the
// wire (§6): account/program references are indices into the transaction's
// account-key list.
type CompiledInstructionFrame struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// InnerInstructionGroupFrame groups one outer instruction's CPI call list.
type InnerInstructionGroupFrame struct {
	Index        uint32
	Instructions []CompiledInstructionFrame
}

// TransactionMessageFrame is the wire shape of a transaction's message.
type TransactionMessageFrame struct {
	AccountKeys  []common.Address
	Instructions []CompiledInstructionFrame
}

// TransactionMetaFrame is the wire shape of a transaction's execution
// metadata.
type TransactionMetaFrame struct {
	InnerInstructions       []InnerInstructionGroupFrame
	LogMessages             []string
	LoadedWritableAddresses []common.Address
	LoadedReadonlyAddresses []common.Address
}

// TransactionInfoFrame wraps one transaction's signature, index, message and
// meta.
type TransactionInfoFrame struct {
	Signature common.Signature
	Index     uint64
	Message   TransactionMessageFrame
	Meta      TransactionMetaFrame
}

// AccountFrame is the upstream Account frame shape (§6).
type AccountFrame struct {
	Slot         uint64
	Pubkey       common.Address
	Owner        common.Address
	Lamports     uint64
	RentEpoch    uint64
	Executable   bool
	Data         []byte
	TxnSignature *common.Signature
}

// TransactionFrame is the upstream Transaction frame shape (§6).
type TransactionFrame struct {
	Slot            uint64
	TransactionInfo TransactionInfoFrame
}

// BlockTime is the wire shape of a block's timestamp.
type BlockTime struct {
	Seconds int64
	Nanos   int32
}

// BlockMetaFrame is the upstream BlockMeta frame shape (§6).
type BlockMetaFrame struct {
	Slot      uint64
	BlockHash string
	BlockTime *BlockTime
}

// AccountFilter is one entry of a subscription's `accounts` filter list.
type AccountFilter struct {
	Account []common.Address
	Owner   []common.Address
	Filters []string
}

// TransactionFilter is one entry of a subscription's `transactions` filter
// list.
type TransactionFilter struct {
	AccountInclude  []common.Address
	AccountExclude  []common.Address
	AccountRequired []common.Address
}

// SubscribeRequest is the write-half filter-request shape (§4.6, §6). The
// controller clones and partially overwrites this on update_subscription,
// and re-sends the full request so the upstream never loses the
// untouched half.
type SubscribeRequest struct {
	Transactions []TransactionFilter
	Accounts     []AccountFilter
	Commitment   string
}

// Clone returns a deep-enough copy of req for update_subscription to mutate
// without aliasing the caller's slices.
func (req SubscribeRequest) Clone() SubscribeRequest {
	out := req
	out.Transactions = append([]TransactionFilter(nil), req.Transactions...)
	out.Accounts = append([]AccountFilter(nil), req.Accounts...)
	return out
}

// DefaultCommitment is used when a subscription request does not specify one
// (§4.6).
const DefaultCommitment = "confirmed"
