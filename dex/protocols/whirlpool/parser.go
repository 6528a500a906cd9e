package whirlpool

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator prefix. Whirlpool never carries its Traded event through an
// inner self-CPI instruction; enrichment comes from the program-data log
// instead (see MergeTradedLog).
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case SwapIx:
		return parseSwap(data, accounts, meta)
	case SwapV2Ix:
		return parseSwapV2(data, accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names a swap variant, the signal
// the walker uses to decide a program-data index is worth building.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == SwapIx || disc == SwapV2Ix
}

func parseSwap(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventWhirlpoolSwap
	if len(data) < 34 || len(accounts) < 11 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	threshold := binary.LittleEndian.Uint64(data[8:16])
	limit, _ := encodbin.ReadU128LE(data, 16)
	return &SwapEvent{
		Metadata:               meta,
		Amount:                 amount,
		OtherAmountThreshold:   threshold,
		SqrtPriceLimit:         limit,
		AmountSpecifiedIsInput: data[32] != 0,
		AToB:                   data[33] != 0,
		TokenProgram:           accounts[0],
		TokenAuthority:         accounts[1],
		Whirlpool:              accounts[2],
		TokenOwnerAccountA:     accounts[3],
		TokenVaultA:            accounts[4],
		TokenOwnerAccountB:     accounts[5],
		TokenVaultB:            accounts[6],
		TickArray0:             accounts[7],
		TickArray1:             accounts[8],
		TickArray2:             accounts[9],
		Oracle:                 accounts[10],
		RemainingAccounts:      append([]common.Address(nil), accounts[11:]...),
	}
}

func parseSwapV2(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventWhirlpoolSwapV2
	if len(data) < 34 || len(accounts) < 15 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	threshold := binary.LittleEndian.Uint64(data[8:16])
	limit, _ := encodbin.ReadU128LE(data, 16)
	return &SwapV2Event{
		Metadata:               meta,
		Amount:                 amount,
		OtherAmountThreshold:   threshold,
		SqrtPriceLimit:         limit,
		AmountSpecifiedIsInput: data[32] != 0,
		AToB:                   data[33] != 0,
		TokenProgramA:          accounts[0],
		TokenProgramB:          accounts[1],
		MemoProgram:            accounts[2],
		TokenAuthority:         accounts[3],
		Whirlpool:              accounts[4],
		TokenMintA:             accounts[5],
		TokenMintB:             accounts[6],
		TokenOwnerAccountA:     accounts[7],
		TokenVaultA:            accounts[8],
		TokenOwnerAccountB:     accounts[9],
		TokenVaultB:            accounts[10],
		TickArray0:             accounts[11],
		TickArray1:             accounts[12],
		TickArray2:             accounts[13],
		Oracle:                 accounts[14],
		RemainingAccounts:      append([]common.Address(nil), accounts[15:]...),
	}
}

type tradedLogData struct {
	whirlpool         common.Address
	aToB              bool
	preSqrtPrice      encodbin.Uint128
	postSqrtPrice     encodbin.Uint128
	inputAmount       uint64
	outputAmount      uint64
	inputTransferFee  uint64
	outputTransferFee uint64
	lpFee             uint64
	protocolFee       uint64
}

func decodeTradedLog(base64Data string) (tradedLogData, bool) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil || len(raw) < 8 {
		return tradedLogData{}, false
	}
	var disc [8]byte
	copy(disc[:], raw[:8])
	if disc != TradedEventLogDisc {
		return tradedLogData{}, false
	}
	const need = 8 + 32 + 1 + 16 + 16 + 8*6
	if len(raw) < need {
		return tradedLogData{}, false
	}
	off := 8
	var out tradedLogData
	out.whirlpool.SetBytes(raw[off : off+32])
	off += 32
	out.aToB = raw[off] != 0
	off++
	out.preSqrtPrice, _ = encodbin.ReadU128LE(raw, off)
	off += 16
	out.postSqrtPrice, _ = encodbin.ReadU128LE(raw, off)
	off += 16
	out.inputAmount = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.outputAmount = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.inputTransferFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.outputTransferFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.lpFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.protocolFee = binary.LittleEndian.Uint64(raw[off : off+8])
	return out, true
}

// MergeTradedLog decodes a base64 "Program data:" log payload and, if its
// whirlpool pubkey matches the outer swap event's own whirlpool account,
// copies the log-only fields onto it.
func MergeTradedLog(outer dex.DexEvent, base64Data string) dex.DexEvent {
	logData, ok := decodeTradedLog(base64Data)
	if !ok {
		return outer
	}
	switch ev := outer.(type) {
	case *SwapEvent:
		if ev.Whirlpool != logData.whirlpool {
			return outer
		}
		applyTradedLog(&ev.PreSqrtPrice, &ev.PostSqrtPrice, &ev.InputAmount, &ev.OutputAmount,
			&ev.InputTransferFee, &ev.OutputTransferFee, &ev.LpFee, &ev.ProtocolFee, logData)
	case *SwapV2Event:
		if ev.Whirlpool != logData.whirlpool {
			return outer
		}
		applyTradedLog(&ev.PreSqrtPrice, &ev.PostSqrtPrice, &ev.InputAmount, &ev.OutputAmount,
			&ev.InputTransferFee, &ev.OutputTransferFee, &ev.LpFee, &ev.ProtocolFee, logData)
	}
	return outer
}

func applyTradedLog(preSqrt, postSqrt *encodbin.Uint128, inAmt, outAmt, inFee, outFee, lpFee, protoFee *uint64, d tradedLogData) {
	*preSqrt = d.preSqrtPrice
	*postSqrt = d.postSqrtPrice
	*inAmt = d.inputAmount
	*outAmt = d.outputAmount
	*inFee = d.inputTransferFee
	*outFee = d.outputTransferFee
	*lpFee = d.lpFee
	*protoFee = d.protocolFee
}

// ParseInnerInstruction exists for dispatcher symmetry; Whirlpool never
// emits a self-CPI inner event.
func ParseInnerInstruction(_ [16]byte, _ []byte, outer dex.DexEvent) dex.DexEvent {
	return outer
}
