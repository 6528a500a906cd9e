package whirlpool

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

func addrN(b byte) common.Address {
	var a common.Address
	a[31] = b
	return a
}

func accountsN(n int) []common.Address {
	out := make([]common.Address, n)
	for i := range out {
		out[i] = addrN(byte(i + 1))
	}
	return out
}

func u64le(v uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, v)
	return out
}

func u128le(lo, hi uint64) []byte {
	return append(u64le(lo), u64le(hi)...)
}

func TestParseInstruction_Swap(t *testing.T) {
	var data []byte
	data = append(data, u64le(100)...)
	data = append(data, u64le(95)...)
	data = append(data, u128le(3, 0)...)
	data = append(data, 1, 1) // amountSpecifiedIsInput, aToB
	accounts := accountsN(13)
	ev := ParseInstruction(SwapIx, data, accounts, dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.Amount != 100 || sw.OtherAmountThreshold != 95 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
	if !sw.AmountSpecifiedIsInput || !sw.AToB {
		t.Errorf("expected both flags true: %+v", sw)
	}
	if sw.Oracle != accounts[10] {
		t.Errorf("account wiring mismatch: %+v", sw)
	}
	if len(sw.RemainingAccounts) != 2 {
		t.Errorf("expected 2 remaining accounts, got %+v", sw.RemainingAccounts)
	}
}

func TestParseInstruction_SwapFlagsFalse(t *testing.T) {
	var data []byte
	data = append(data, u64le(1)...)
	data = append(data, u64le(1)...)
	data = append(data, u128le(0, 0)...)
	data = append(data, 0, 0)
	ev := ParseInstruction(SwapIx, data, accountsN(11), dex.EventMetadata{})
	sw := ev.(*SwapEvent)
	if sw.AmountSpecifiedIsInput || sw.AToB {
		t.Errorf("expected both flags false: %+v", sw)
	}
}

func TestParseInstruction_SwapV2(t *testing.T) {
	var data []byte
	data = append(data, u64le(1)...)
	data = append(data, u64le(1)...)
	data = append(data, u128le(0, 2)...)
	data = append(data, 1, 0)
	accounts := accountsN(17)
	ev := ParseInstruction(SwapV2Ix, data, accounts, dex.EventMetadata{})
	sw, ok := ev.(*SwapV2Event)
	if !ok {
		t.Fatalf("expected *SwapV2Event, got %T", ev)
	}
	if sw.SqrtPriceLimit.Hi != 2 {
		t.Errorf("SqrtPriceLimit = %+v", sw.SqrtPriceLimit)
	}
	if sw.MemoProgram != accounts[2] || sw.Oracle != accounts[14] {
		t.Errorf("account wiring mismatch: %+v", sw)
	}
}

func TestParseInstruction_SwapShortDataIsNil(t *testing.T) {
	if ev := ParseInstruction(SwapIx, make([]byte, 10), accountsN(11), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestParseInstruction_SwapTooFewAccountsIsNil(t *testing.T) {
	var data []byte
	data = append(data, u64le(1)...)
	data = append(data, u64le(1)...)
	data = append(data, u128le(0, 0)...)
	data = append(data, 0, 0)
	if ev := ParseInstruction(SwapIx, data, accountsN(3), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestParseInstruction_UnrecognizedDiscIsNil(t *testing.T) {
	var disc [8]byte
	if ev := ParseInstruction(disc, nil, accountsN(11), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestIsSwapInstruction(t *testing.T) {
	if !IsSwapInstruction(SwapIx) || !IsSwapInstruction(SwapV2Ix) {
		t.Errorf("expected both swap discriminators to report true")
	}
	var other [8]byte
	if IsSwapInstruction(other) {
		t.Errorf("expected an arbitrary discriminator to report false")
	}
}

func buildTradedLog(whirlpool common.Address, aToB bool) string {
	var raw []byte
	raw = append(raw, TradedEventLogDisc[:]...)
	raw = append(raw, whirlpool[:]...)
	if aToB {
		raw = append(raw, 1)
	} else {
		raw = append(raw, 0)
	}
	raw = append(raw, u128le(10, 0)...) // preSqrtPrice
	raw = append(raw, u128le(20, 0)...) // postSqrtPrice
	raw = append(raw, u64le(100)...)    // inputAmount
	raw = append(raw, u64le(90)...)     // outputAmount
	raw = append(raw, u64le(1)...)      // inputTransferFee
	raw = append(raw, u64le(2)...)      // outputTransferFee
	raw = append(raw, u64le(3)...)      // lpFee
	raw = append(raw, u64le(4)...)      // protocolFee
	return base64.StdEncoding.EncodeToString(raw)
}

func TestMergeTradedLog_MatchingWhirlpoolMerges(t *testing.T) {
	pool := addrN(0x33)
	outer := &SwapEvent{Whirlpool: pool}
	ev := MergeTradedLog(outer, buildTradedLog(pool, true))
	sw := ev.(*SwapEvent)
	if sw.InputAmount != 100 || sw.OutputAmount != 90 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
	if sw.PreSqrtPrice.Lo != 10 || sw.PostSqrtPrice.Lo != 20 {
		t.Errorf("unexpected sqrt prices: %+v %+v", sw.PreSqrtPrice, sw.PostSqrtPrice)
	}
	if sw.LpFee != 3 || sw.ProtocolFee != 4 {
		t.Errorf("unexpected fees: %+v", sw)
	}
}

func TestMergeTradedLog_MismatchedWhirlpoolLeavesOuterUnchanged(t *testing.T) {
	outer := &SwapEvent{Whirlpool: addrN(1), InputAmount: 55}
	ev := MergeTradedLog(outer, buildTradedLog(addrN(2), true))
	sw := ev.(*SwapEvent)
	if sw.InputAmount != 55 {
		t.Errorf("expected outer fields untouched, got %+v", sw)
	}
}

func TestMergeTradedLog_SwapV2Event(t *testing.T) {
	pool := addrN(0x44)
	outer := &SwapV2Event{Whirlpool: pool}
	ev := MergeTradedLog(outer, buildTradedLog(pool, false))
	sw, ok := ev.(*SwapV2Event)
	if !ok {
		t.Fatalf("expected *SwapV2Event, got %T", ev)
	}
	if sw.InputAmount != 100 {
		t.Errorf("expected merge to apply to SwapV2Event, got %+v", sw)
	}
}

func TestMergeTradedLog_WrongDiscReturnsOuterUnchanged(t *testing.T) {
	outer := &SwapEvent{InputAmount: 1}
	raw := append(make([]byte, 8), make([]byte, 100)...)
	ev := MergeTradedLog(outer, base64.StdEncoding.EncodeToString(raw))
	if ev != outer {
		t.Errorf("expected outer unchanged on mismatched discriminator, got %+v", ev)
	}
}

func TestParseInnerInstruction_AlwaysPassesOuterThrough(t *testing.T) {
	outer := &SwapEvent{Amount: 1}
	var disc [16]byte
	if ev := ParseInnerInstruction(disc, nil, outer); ev != outer {
		t.Errorf("expected outer unchanged, got %+v", ev)
	}
}
