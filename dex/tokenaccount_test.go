// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

import (
	"encoding/binary"
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
)

func TestParseTokenAccountEvent_Mint(t *testing.T) {
	data := make([]byte, splMintLen)
	binary.LittleEndian.PutUint64(data[36:44], 1_000_000_000)
	data[44] = 6

	acc := AccountInfo{Pubkey: mintAddr(0x01), Owner: common.TokenProgramID, Data: data}
	ev := ParseTokenAccountEvent(acc, EventMetadata{})

	info, ok := ev.(*TokenInfoEvent)
	if !ok {
		t.Fatalf("expected *TokenInfoEvent, got %T", ev)
	}
	if info.Supply != 1_000_000_000 || info.Decimals != 6 {
		t.Errorf("Supply=%d Decimals=%d, want 1000000000/6", info.Supply, info.Decimals)
	}
	if info.Meta().EventType != EventTokenInfo {
		t.Errorf("EventType = %v, want EventTokenInfo", info.Meta().EventType)
	}
}

func TestParseTokenAccountEvent_Account(t *testing.T) {
	data := make([]byte, splAccountLen)
	owner := mintAddr(0x77)
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], 42)

	acc := AccountInfo{Pubkey: mintAddr(0x02), Owner: common.TokenProgramID, Data: data}
	ev := ParseTokenAccountEvent(acc, EventMetadata{})

	ta, ok := ev.(*TokenAccountEvent)
	if !ok {
		t.Fatalf("expected *TokenAccountEvent, got %T", ev)
	}
	if ta.Amount != 42 {
		t.Errorf("Amount = %d, want 42", ta.Amount)
	}
	if ta.TokenOwner != owner {
		t.Errorf("TokenOwner = %v, want %v", ta.TokenOwner, owner)
	}
}

func TestParseTokenAccountEvent_Token2022ExtensionsStillDecode(t *testing.T) {
	// A Token-2022 account is the base 165-byte layout plus TLV extensions.
	data := make([]byte, splAccountLen+40)
	binary.LittleEndian.PutUint64(data[64:72], 7)

	acc := AccountInfo{Pubkey: mintAddr(0x03), Data: data}
	ev := ParseTokenAccountEvent(acc, EventMetadata{})
	ta, ok := ev.(*TokenAccountEvent)
	if !ok || ta.Amount != 7 {
		t.Errorf("expected the base layout to still decode with trailing TLV bytes present, got %+v ok=%v", ev, ok)
	}
}

func TestParseTokenAccountEvent_UnrecognizedLength(t *testing.T) {
	acc := AccountInfo{Pubkey: mintAddr(0x04), Data: make([]byte, 10)}
	if ev := ParseTokenAccountEvent(acc, EventMetadata{}); ev != nil {
		t.Errorf("expected nil for data matching neither known layout, got %+v", ev)
	}
}

func TestParseNonceAccountEvent_Initialized(t *testing.T) {
	data := make([]byte, nonceStateLen)
	binary.LittleEndian.PutUint32(data[4:8], 1)
	authority := mintAddr(0x11)
	nonce := mintAddr(0x22)
	copy(data[8:40], authority[:])
	copy(data[40:72], nonce[:])

	acc := AccountInfo{Pubkey: mintAddr(0x05), Data: data}
	ev := ParseNonceAccountEvent(acc, EventMetadata{})
	na, ok := ev.(*NonceAccountEvent)
	if !ok {
		t.Fatalf("expected *NonceAccountEvent, got %T", ev)
	}
	if na.Authority != authority || na.Nonce != nonce {
		t.Errorf("Authority/Nonce mismatch: got %v/%v, want %v/%v", na.Authority, na.Nonce, authority, nonce)
	}
	if na.Meta().EventType != EventNonceAccount {
		t.Errorf("EventType = %v, want EventNonceAccount", na.Meta().EventType)
	}
}

func TestParseNonceAccountEvent_UninitializedIsNil(t *testing.T) {
	data := make([]byte, nonceStateLen) // state word defaults to 0 (uninitialized)
	acc := AccountInfo{Pubkey: mintAddr(0x06), Data: data}
	if ev := ParseNonceAccountEvent(acc, EventMetadata{}); ev != nil {
		t.Errorf("expected nil for an uninitialized nonce account, got %+v", ev)
	}
}

func TestParseNonceAccountEvent_TooShortIsNil(t *testing.T) {
	acc := AccountInfo{Pubkey: mintAddr(0x07), Data: make([]byte, 10)}
	if ev := ParseNonceAccountEvent(acc, EventMetadata{}); ev != nil {
		t.Errorf("expected nil for undersized data, got %+v", ev)
	}
}
