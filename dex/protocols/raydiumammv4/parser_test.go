package raydiumammv4

import (
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

func TestParseInstruction_SwapBaseIn_WithTargetOrders(t *testing.T) {
	data := append(u64le(100), u64le(90)...)
	accounts := accountsN(18)
	ev := ParseInstruction(SwapBaseInIx, data, accounts, dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if !sw.HasTargetOrders {
		t.Errorf("expected HasTargetOrders = true for an 18-account swap")
	}
	if sw.AmountIn != 100 || sw.MinimumAmountOut != 90 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
	if sw.UserSourceOwner != accounts[17] {
		t.Errorf("expected final account to be UserSourceOwner, got %v", sw.UserSourceOwner)
	}
}

func TestParseInstruction_SwapBaseIn_WithoutTargetOrdersInsertsPlaceholder(t *testing.T) {
	data := append(u64le(1), u64le(1)...)
	accounts := accountsN(17)
	ev := ParseInstruction(SwapBaseInIx, data, accounts, dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.HasTargetOrders {
		t.Errorf("expected HasTargetOrders = false when the 17-account list omits it")
	}
	if sw.AmmTargetOrders != (common.Address{}) {
		t.Errorf("expected a zero-value placeholder for AmmTargetOrders, got %v", sw.AmmTargetOrders)
	}
	if sw.PoolCoinTokenAccount != accounts[4] {
		t.Errorf("expected accounts to shift past the placeholder, got %v", sw.PoolCoinTokenAccount)
	}
}

func TestParseInstruction_SwapBaseOut(t *testing.T) {
	data := append(u64le(50), u64le(40)...)
	ev := ParseInstruction(SwapBaseOutIx, data, accountsN(18), dex.EventMetadata{})
	sw, ok := ev.(*SwapEvent)
	if !ok {
		t.Fatalf("expected *SwapEvent, got %T", ev)
	}
	if sw.MaxAmountIn != 50 || sw.AmountOut != 40 {
		t.Errorf("unexpected amounts: %+v", sw)
	}
	if sw.Meta().EventType != dex.EventRaydiumAmmV4SwapBaseOut {
		t.Errorf("EventType = %v, want EventRaydiumAmmV4SwapBaseOut", sw.Meta().EventType)
	}
}

func TestParseInstruction_SwapTooFewAccountsIsNil(t *testing.T) {
	data := append(u64le(1), u64le(1)...)
	if ev := ParseInstruction(SwapBaseInIx, data, accountsN(5), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestParseInstruction_SwapShortDataIsNil(t *testing.T) {
	if ev := ParseInstruction(SwapBaseInIx, []byte{1, 2}, accountsN(18), dex.EventMetadata{}); ev != nil {
		t.Errorf("expected nil, got %+v", ev)
	}
}

func TestParseInstruction_Deposit(t *testing.T) {
	data := append(append(u64le(1), u64le(2)...), u64le(3)...)
	accounts := accountsN(14)
	ev := ParseInstruction(DepositIx, data, accounts, dex.EventMetadata{})
	dep, ok := ev.(*DepositEvent)
	if !ok {
		t.Fatalf("expected *DepositEvent, got %T", ev)
	}
	if dep.MaxCoinAmount != 1 || dep.MaxPcAmount != 2 || dep.BaseSide != 3 {
		t.Errorf("unexpected fields: %+v", dep)
	}
	if dep.UserOwner != accounts[12] {
		t.Errorf("account wiring mismatch: %+v", dep)
	}
}

func TestParseInstruction_Initialize2(t *testing.T) {
	var data []byte
	data = append(data, 5) // nonce
	data = append(data, u64le(1000)...)
	data = append(data, u64le(2000)...)
	data = append(data, u64le(3000)...)
	accounts := accountsN(21)
	ev := ParseInstruction(Initialize2Ix, data, accounts, dex.EventMetadata{})
	in, ok := ev.(*Initialize2Event)
	if !ok {
		t.Fatalf("expected *Initialize2Event, got %T", ev)
	}
	if in.Nonce != 5 || in.OpenTime != 1000 || in.InitPcAmount != 2000 || in.InitCoinAmount != 3000 {
		t.Errorf("unexpected fields: %+v", in)
	}
	if in.UserLpTokenAccount != accounts[20] {
		t.Errorf("account wiring mismatch: %+v", in)
	}
}

func TestParseInstruction_Withdraw(t *testing.T) {
	data := u64le(777)
	accounts := accountsN(22)
	ev := ParseInstruction(WithdrawIx, data, accounts, dex.EventMetadata{})
	w, ok := ev.(*WithdrawEvent)
	if !ok {
		t.Fatalf("expected *WithdrawEvent, got %T", ev)
	}
	if w.Amount != 777 {
		t.Errorf("Amount = %d, want 777", w.Amount)
	}
	if w.SerumAsks != accounts[21] {
		t.Errorf("account wiring mismatch: %+v", w)
	}
}

func TestParseInstruction_UnrecognizedDiscIsNil(t *testing.T) {
	if ev := ParseInstruction(99, nil, accountsN(22), dex.EventMetadata{}); ev != nil {
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

func TestParseInnerInstruction_AlwaysPassesOuterThrough(t *testing.T) {
	outer := &SwapEvent{AmountIn: 42}
	var disc [16]byte
	ev := ParseInnerInstruction(disc, []byte{1, 2, 3}, outer)
	if ev != outer {
		t.Errorf("expected the outer event unchanged, got %+v", ev)
	}
}
