// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package streaming

import (
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
)

func TestSubscribeRequest_CloneIsIndependent(t *testing.T) {
	orig := SubscribeRequest{
		Transactions: []TransactionFilter{{AccountInclude: []common.Address{{1}}}},
		Accounts:     []AccountFilter{{Owner: []common.Address{{2}}}},
		Commitment:   DefaultCommitment,
	}

	clone := orig.Clone()
	clone.Transactions = append(clone.Transactions, TransactionFilter{})
	clone.Accounts = append(clone.Accounts, AccountFilter{})

	if len(orig.Transactions) != 1 {
		t.Errorf("expected appending to the clone to not grow the original's slice, got len %d", len(orig.Transactions))
	}
	if len(orig.Accounts) != 1 {
		t.Errorf("expected appending to the clone's Accounts to not grow the original, got len %d", len(orig.Accounts))
	}
	if clone.Commitment != DefaultCommitment {
		t.Errorf("expected Clone to preserve Commitment")
	}
}

func TestSubscribeRequest_CloneOfEmptyRequest(t *testing.T) {
	var req SubscribeRequest
	clone := req.Clone()
	if clone.Transactions != nil && len(clone.Transactions) != 0 {
		t.Errorf("expected cloning an empty request to yield an empty (not nil-panicking) slice")
	}
	clone.Transactions = append(clone.Transactions, TransactionFilter{})
	if len(req.Transactions) != 0 {
		t.Errorf("expected the original's nil slice to remain untouched")
	}
}
