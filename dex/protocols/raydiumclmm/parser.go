package raydiumclmm

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator prefix. CLMM has no inner "self-CPI" events; the swap
// variants are enriched later from the program-data log line instead (see
// MergeSwapLog).
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case SwapIx:
		return parseSwap(data, accounts, meta)
	case SwapV2Ix:
		return parseSwapV2(data, accounts, meta)
	case CreatePoolIx:
		return parseCreatePool(data, accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names one of the two swap
// variants, the signal the walker uses to decide a program-data index is
// worth building for this transaction.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == SwapIx || disc == SwapV2Ix
}

func parseSwap(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumClmmSwap
	if len(data) < 33 || len(accounts) < 10 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	threshold := binary.LittleEndian.Uint64(data[8:16])
	limit, _ := encodbin.ReadU128LE(data, 16)
	return &SwapEvent{
		Metadata:             meta,
		Amount:               amount,
		OtherAmountThreshold: threshold,
		SqrtPriceLimitX64:    limit,
		IsBaseInput:          data[32] == 1,
		Payer:                accounts[0],
		AmmConfig:            accounts[1],
		PoolState:            accounts[2],
		InputTokenAccount:    accounts[3],
		OutputTokenAccount:   accounts[4],
		InputVault:           accounts[5],
		OutputVault:          accounts[6],
		ObservationState:     accounts[7],
		TokenProgram:         accounts[8],
		TickArray:            accounts[9],
		RemainingAccounts:    append([]common.Address(nil), accounts[10:]...),
	}
}

func parseSwapV2(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumClmmSwapV2
	if len(data) < 33 || len(accounts) < 13 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	threshold := binary.LittleEndian.Uint64(data[8:16])
	limit, _ := encodbin.ReadU128LE(data, 16)
	return &SwapV2Event{
		Metadata:             meta,
		Amount:               amount,
		OtherAmountThreshold: threshold,
		SqrtPriceLimitX64:    limit,
		IsBaseInput:          data[32] == 1,
		Payer:                accounts[0],
		AmmConfig:            accounts[1],
		PoolState:            accounts[2],
		InputTokenAccount:    accounts[3],
		OutputTokenAccount:   accounts[4],
		InputVault:           accounts[5],
		OutputVault:          accounts[6],
		ObservationState:     accounts[7],
		TokenProgram:         accounts[8],
		TokenProgram2022:     accounts[9],
		MemoProgram:          accounts[10],
		InputVaultMint:       accounts[11],
		OutputVaultMint:      accounts[12],
		RemainingAccounts:    append([]common.Address(nil), accounts[13:]...),
	}
}

func parseCreatePool(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumClmmCreatePool
	if len(data) < 24 || len(accounts) < 13 {
		return nil
	}
	sqrtPrice, _ := encodbin.ReadU128LE(data, 0)
	openTime := binary.LittleEndian.Uint64(data[16:24])
	return &CreatePoolEvent{
		Metadata:         meta,
		SqrtPriceX64:     sqrtPrice,
		OpenTime:         openTime,
		PoolCreator:      accounts[0],
		AmmConfig:        accounts[1],
		PoolState:        accounts[2],
		TokenMint0:       accounts[3],
		TokenMint1:       accounts[4],
		TokenVault0:      accounts[5],
		TokenVault1:      accounts[6],
		ObservationState: accounts[7],
		TickArrayBitmap:  accounts[8],
		TokenProgram0:    accounts[9],
		TokenProgram1:    accounts[10],
		SystemProgram:    accounts[11],
		Rent:             accounts[12],
	}
}

// swapLogData is the Anchor event payload CLMM emits via "Program data:" in
// its log messages, decoded independently of any instruction's account
// list.
type swapLogData struct {
	poolState     common.Address
	sender        common.Address
	tokenAccount0 common.Address
	tokenAccount1 common.Address
	amount0       uint64
	transferFee0  uint64
	amount1       uint64
	transferFee1  uint64
	zeroForOne    bool
	sqrtPriceX64  encodbin.Uint128
	liquidity     encodbin.Uint128
	tick          int32
}

func decodeSwapLog(base64Data string) (swapLogData, bool) {
	raw, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil || len(raw) < 8 {
		return swapLogData{}, false
	}
	var disc [8]byte
	copy(disc[:], raw[:8])
	if disc != SwapEventLogDisc {
		return swapLogData{}, false
	}
	const need = 8 + 32*4 + 8*4 + 1 + 16 + 16 + 4
	if len(raw) < need {
		return swapLogData{}, false
	}
	off := 8
	var out swapLogData
	out.poolState.SetBytes(raw[off : off+32])
	off += 32
	out.sender.SetBytes(raw[off : off+32])
	off += 32
	out.tokenAccount0.SetBytes(raw[off : off+32])
	off += 32
	out.tokenAccount1.SetBytes(raw[off : off+32])
	off += 32
	out.amount0 = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.transferFee0 = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.amount1 = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.transferFee1 = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.zeroForOne = raw[off] != 0
	off++
	out.sqrtPriceX64, _ = encodbin.ReadU128LE(raw, off)
	off += 16
	out.liquidity, _ = encodbin.ReadU128LE(raw, off)
	off += 16
	out.tick = int32(binary.LittleEndian.Uint32(raw[off : off+4]))
	return out, true
}

// MergeSwapLog decodes a base64 "Program data:" log payload and, if its
// pool_state matches the outer swap event's own pool state, copies the
// log-only fields onto it. Mismatched pool state or a malformed/foreign
// payload leaves outer untouched.
func MergeSwapLog(outer dex.DexEvent, base64Data string) dex.DexEvent {
	logData, ok := decodeSwapLog(base64Data)
	if !ok {
		return outer
	}
	switch ev := outer.(type) {
	case *SwapEvent:
		if ev.PoolState != logData.poolState {
			return outer
		}
		applySwapLog(ev, logData)
	case *SwapV2Event:
		if ev.PoolState != logData.poolState {
			return outer
		}
		applySwapV2Log(ev, logData)
	}
	return outer
}

func applySwapLog(ev *SwapEvent, d swapLogData) {
	ev.Sender = d.sender
	ev.TokenAccount0 = d.tokenAccount0
	ev.TokenAccount1 = d.tokenAccount1
	ev.Amount0 = d.amount0
	ev.TransferFee0 = d.transferFee0
	ev.Amount1 = d.amount1
	ev.TransferFee1 = d.transferFee1
	ev.ZeroForOne = d.zeroForOne
	ev.SqrtPriceX64 = d.sqrtPriceX64
	ev.Liquidity = d.liquidity
	ev.Tick = d.tick
}

func applySwapV2Log(ev *SwapV2Event, d swapLogData) {
	ev.Sender = d.sender
	ev.TokenAccount0 = d.tokenAccount0
	ev.TokenAccount1 = d.tokenAccount1
	ev.Amount0 = d.amount0
	ev.TransferFee0 = d.transferFee0
	ev.Amount1 = d.amount1
	ev.TransferFee1 = d.transferFee1
	ev.ZeroForOne = d.zeroForOne
	ev.SqrtPriceX64 = d.sqrtPriceX64
	ev.Liquidity = d.liquidity
	ev.Tick = d.tick
}

// ParseInnerInstruction exists for dispatcher symmetry with the other
// protocol packages; Raydium CLMM never emits a self-CPI inner event.
func ParseInnerInstruction(_ [16]byte, _ []byte, outer dex.DexEvent) dex.DexEvent {
	return outer
}
