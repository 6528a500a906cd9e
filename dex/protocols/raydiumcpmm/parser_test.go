package raydiumcpmm

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

func TestParseInstruction_SwapBaseIn(t *testing.T) {
	data := append(u64le(100), u64le(90)...)
	accounts := accountsN(13)
	ev := ParseInstruction(SwapBaseInIx, data, accounts, dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.AmountIn != 100 || sw.MinimumAmountOut != 90 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
	if sw.ObservationState != accounts[12] {
		t.Errorf("account wiring mismatch: %+v", sw)
	}
}

func TestParseInstruction_SwapBaseOut(t *testing.T) {
	data := append(u64le(5), u64le(6)...)
	ev := ParseInstruction(SwapBaseOutIx, data, accountsN(13), dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.MaxAmountIn != 5 || sw.AmountOut != 6 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
}

func TestParseInstruction_SwapTooFewAccountsIsNil(t *testing.T) {
	data := append(u64le(1), u64le(1)...)
	if ev := ParseInstruction(SwapBaseInIx, data, accountsN(3), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestParseInstruction_Deposit(t *testing.T) {
	data := append(append(u64le(1), u64le(2)...), u64le(3)...)
	accounts := accountsN(13)
	ev := ParseInstruction(DepositIx, data, accounts, dex.EventMetadata{})
	dep, ok := ev.(*DepositEvent)
	if !ok {
		t.Fatalf("expected *DepositEvent, got %T", ev)
	}
	if dep.LpTokenAmount != 1 || dep.MaximumToken0Amount != 2 || dep.MaximumToken1Amount != 3 {
		t.Errorf("unexpected fields: %+v", dep)
	}
	if dep.LpMint != accounts[12] {
		t.Errorf("account wiring mismatch: %+v", dep)
	}
}

func TestParseInstruction_Withdraw(t *testing.T) {
	data := append(append(u64le(7), u64le(8)...), u64le(9)...)
	accounts := accountsN(14)
	ev := ParseInstruction(WithdrawIx, data, accounts, dex.EventMetadata{})
	w, ok := ev.(*WithdrawEvent)
	if !ok {
		t.Fatalf("expected *WithdrawEvent, got %T", ev)
	}
	if w.LpTokenAmount != 7 || w.MinimumToken0Amount != 8 || w.MinimumToken1Amount != 9 {
		t.Errorf("unexpected fields: %+v", w)
	}
	if w.MemoProgram != accounts[13] {
		t.Errorf("account wiring mismatch: %+v", w)
	}
}

func TestParseInstruction_Initialize(t *testing.T) {
	data := append(append(u64le(11), u64le(22)...), u64le(33)...)
	accounts := accountsN(20)
	ev := ParseInstruction(InitializeIx, data, accounts, dex.EventMetadata{})
	in, ok := ev.(*InitializeEvent)
	if !ok {
		t.Fatalf("expected *InitializeEvent, got %T", ev)
	}
	if in.InitAmount0 != 11 || in.InitAmount1 != 22 || in.OpenTime != 33 {
		t.Errorf("unexpected fields: %+v", in)
	}
	if in.Rent != accounts[19] {
		t.Errorf("account wiring mismatch: %+v", in)
	}
}

func TestParseInstruction_UnrecognizedDiscIsNil(t *testing.T) {
	var disc [8]byte
	if ev := ParseInstruction(disc, nil, accountsN(20), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestIsSwapInstruction(t *testing.T) {
	if !IsSwapInstruction(SwapBaseInIx) || !IsSwapInstruction(SwapBaseOutIx) {
		t.Errorf("expected swap discriminators to report true")
	}
	if IsSwapInstruction(DepositIx) {
		t.Errorf("expected Deposit to not be a swap instruction")
	}
}

func buildSwapLog() string {
	var raw []byte
	raw = append(raw, SwapEventLogDisc[:]...)
	raw = append(raw, make([]byte, 32)...) // pool_id
	raw = append(raw, u64le(100)...)       // input_vault_before
	raw = append(raw, u64le(200)...)       // output_vault_before
	raw = append(raw, u64le(50)...)        // input_amount
	raw = append(raw, u64le(45)...)        // output_amount
	raw = append(raw, u64le(1)...)         // input_transfer_fee
	raw = append(raw, u64le(2)...)         // output_transfer_fee
	raw = append(raw, 1)                   // base_input
	raw = append(raw, make([]byte, 64)...) // input_mint, output_mint
	raw = append(raw, u64le(3)...)         // trade_fee
	raw = append(raw, u64le(4)...)         // creator_fee
	raw = append(raw, 1)                   // creator_fee_on_input
	return base64.StdEncoding.EncodeToString(raw)
}

func TestMergeSwapLog_DecodesOntoSwapEvent(t *testing.T) {
	outer := &SwapEvent{AmountIn: 50}
	ev := MergeSwapLog(outer, buildSwapLog())
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.InputVaultBefore != 100 || sw.OutputVaultBefore != 200 {
		t.Errorf("unexpected vault-before fields: %+v", sw)
	}
	if sw.InputAmount != 50 || sw.OutputAmount != 45 {
		t.Errorf("unexpected amount fields: %+v", sw)
	}
	if !sw.BaseInput || !sw.CreatorFeeOnInput {
		t.Errorf("expected both boolean flags set, got %+v", sw)
	}
	if sw.TradeFee != 3 || sw.CreatorFee != 4 {
		t.Errorf("unexpected fee fields: %+v", sw)
	}
}

func TestMergeSwapLog_WrongDiscReturnsOuterUnchanged(t *testing.T) {
	outer := &SwapEvent{AmountIn: 7}
	raw := append(make([]byte, 8), make([]byte, 200)...)
	ev := MergeSwapLog(outer, base64.StdEncoding.EncodeToString(raw))
	if ev != outer {
		t.Errorf("expected outer unchanged for a mismatched discriminator, got %+v", ev)
	}
}

func TestMergeSwapLog_NonSwapEventPassesThrough(t *testing.T) {
	outer := &DepositEvent{LpTokenAmount: 9}
	ev := MergeSwapLog(outer, buildSwapLog())
	if ev != outer {
		t.Errorf("expected non-SwapEvent outer passed through unchanged, got %+v", ev)
	}
}

func TestMergeSwapLog_InvalidBase64ReturnsOuter(t *testing.T) {
	outer := &SwapEvent{AmountIn: 1}
	ev := MergeSwapLog(outer, "not-valid-base64!!")
	if ev != outer {
		t.Errorf("expected outer unchanged on invalid base64, got %+v", ev)
	}
}

func TestParseInnerInstruction_AlwaysPassesOuterThrough(t *testing.T) {
	outer := &SwapEvent{AmountIn: 1}
	var disc [16]byte
	if ev := ParseInnerInstruction(disc, nil, outer); ev != outer {
		t.Errorf("expected outer unchanged, got %+v", ev)
	}
}
