package raydiumcpmm

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

func readU64LE(data []byte, offset int) (uint64, bool) {
	if offset < 0 || offset+8 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), true
}

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator prefix. Like CLMM, CPMM has no inner self-CPI event; swap
// enrichment comes from the program-data log line (see MergeSwapLog).
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case SwapBaseInIx:
		return parseSwapBaseIn(data, accounts, meta)
	case SwapBaseOutIx:
		return parseSwapBaseOut(data, accounts, meta)
	case DepositIx:
		return parseDeposit(data, accounts, meta)
	case InitializeIx:
		return parseInitialize(data, accounts, meta)
	case WithdrawIx:
		return parseWithdraw(data, accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names a swap variant, the signal
// the walker uses to decide a program-data index is worth building.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == SwapBaseInIx || disc == SwapBaseOutIx
}

func parseSwapBaseIn(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumCpmmSwapBaseIn
	if len(data) < 16 || len(accounts) < 13 {
		return nil
	}
	amountIn, _ := readU64LE(data, 0)
	minOut, _ := readU64LE(data, 8)
	return &SwapEvent{
		Metadata:           meta,
		AmountIn:           amountIn,
		MinimumAmountOut:   minOut,
		Payer:              accounts[0],
		Authority:          accounts[1],
		AmmConfig:          accounts[2],
		PoolState:          accounts[3],
		InputTokenAccount:  accounts[4],
		OutputTokenAccount: accounts[5],
		InputVault:         accounts[6],
		OutputVault:        accounts[7],
		InputTokenProgram:  accounts[8],
		OutputTokenProgram: accounts[9],
		InputTokenMint:     accounts[10],
		OutputTokenMint:    accounts[11],
		ObservationState:   accounts[12],
	}
}

func parseSwapBaseOut(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumCpmmSwapBaseOut
	if len(data) < 16 || len(accounts) < 13 {
		return nil
	}
	maxIn, _ := readU64LE(data, 0)
	amountOut, _ := readU64LE(data, 8)
	return &SwapEvent{
		Metadata:           meta,
		MaxAmountIn:        maxIn,
		AmountOut:          amountOut,
		Payer:              accounts[0],
		Authority:          accounts[1],
		AmmConfig:          accounts[2],
		PoolState:          accounts[3],
		InputTokenAccount:  accounts[4],
		OutputTokenAccount: accounts[5],
		InputVault:         accounts[6],
		OutputVault:        accounts[7],
		InputTokenProgram:  accounts[8],
		OutputTokenProgram: accounts[9],
		InputTokenMint:     accounts[10],
		OutputTokenMint:    accounts[11],
		ObservationState:   accounts[12],
	}
}

func parseDeposit(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumCpmmDeposit
	if len(data) < 24 || len(accounts) < 13 {
		return nil
	}
	lp, _ := readU64LE(data, 0)
	max0, _ := readU64LE(data, 8)
	max1, _ := readU64LE(data, 16)
	return &DepositEvent{
		Metadata:            meta,
		LpTokenAmount:       lp,
		MaximumToken0Amount: max0,
		MaximumToken1Amount: max1,
		Owner:               accounts[0],
		Authority:           accounts[1],
		PoolState:           accounts[2],
		OwnerLpToken:        accounts[3],
		Token0Account:       accounts[4],
		Token1Account:       accounts[5],
		Token0Vault:         accounts[6],
		Token1Vault:         accounts[7],
		TokenProgram:        accounts[8],
		TokenProgram2022:    accounts[9],
		Vault0Mint:          accounts[10],
		Vault1Mint:          accounts[11],
		LpMint:              accounts[12],
	}
}

func parseWithdraw(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumCpmmWithdraw
	if len(data) < 24 || len(accounts) < 14 {
		return nil
	}
	lp, _ := readU64LE(data, 0)
	min0, _ := readU64LE(data, 8)
	min1, _ := readU64LE(data, 16)
	return &WithdrawEvent{
		Metadata:            meta,
		LpTokenAmount:       lp,
		MinimumToken0Amount: min0,
		MinimumToken1Amount: min1,
		Owner:               accounts[0],
		Authority:           accounts[1],
		PoolState:           accounts[2],
		OwnerLpToken:        accounts[3],
		Token0Account:       accounts[4],
		Token1Account:       accounts[5],
		Token0Vault:         accounts[6],
		Token1Vault:         accounts[7],
		TokenProgram:        accounts[8],
		TokenProgram2022:    accounts[9],
		Vault0Mint:          accounts[10],
		Vault1Mint:          accounts[11],
		LpMint:              accounts[12],
		MemoProgram:         accounts[13],
	}
}

func parseInitialize(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumCpmmInitialize
	if len(data) < 24 || len(accounts) < 20 {
		return nil
	}
	a0, _ := readU64LE(data, 0)
	a1, _ := readU64LE(data, 8)
	openTime, _ := readU64LE(data, 16)
	return &InitializeEvent{
		Metadata:               meta,
		InitAmount0:            a0,
		InitAmount1:            a1,
		OpenTime:               openTime,
		Creator:                accounts[0],
		AmmConfig:              accounts[1],
		Authority:              accounts[2],
		PoolState:              accounts[3],
		Token0Mint:             accounts[4],
		Token1Mint:             accounts[5],
		LpMint:                 accounts[6],
		CreatorToken0:          accounts[7],
		CreatorToken1:          accounts[8],
		CreatorLpToken:         accounts[9],
		Token0Vault:            accounts[10],
		Token1Vault:            accounts[11],
		CreatePoolFee:          accounts[12],
		ObservationState:       accounts[13],
		TokenProgram:           accounts[14],
		Token0Program:          accounts[15],
		Token1Program:          accounts[16],
		AssociatedTokenProgram: accounts[17],
		SystemProgram:          accounts[18],
		Rent:                   accounts[19],
	}
}

// swapLogData is the Anchor SwapEvent payload carried by a "Program data:"
// log line, independent of any instruction's account list.
type swapLogData struct {
	inputVaultBefore  uint64
	outputVaultBefore uint64
	inputAmount       uint64
	outputAmount      uint64
	inputTransferFee  uint64
	outputTransferFee uint64
	baseInput         bool
	tradeFee          uint64
	creatorFee        uint64
	creatorFeeOnInput bool
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
	// Layout: disc(8) pool_id(32) then the six u64 fields, base_input(1),
	// input_mint(32) output_mint(32), trade_fee(8) creator_fee(8)
	// creator_fee_on_input(1).
	off := 8 + 32
	need := off + 6*8 + 1 + 64 + 8 + 8 + 1
	if len(raw) < need {
		return swapLogData{}, false
	}
	var out swapLogData
	out.inputVaultBefore = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.outputVaultBefore = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.inputAmount = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.outputAmount = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.inputTransferFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.outputTransferFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.baseInput = raw[off] != 0
	off++
	off += 64 // input_mint, output_mint
	out.tradeFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.creatorFee = binary.LittleEndian.Uint64(raw[off : off+8])
	off += 8
	out.creatorFeeOnInput = raw[off] != 0
	return out, true
}

// MergeSwapLog decodes a base64 "Program data:" log payload and copies the
// log-only fields onto outer if it is a SwapEvent. Unlike CLMM/Whirlpool,
// CPMM's SwapEvent carries no pool_id field usable for a positive match
// against the outer instruction beyond discriminator + ordering, so the
// program-data index's own positional attribution is what ties the two
// together; this function trusts whatever item the index handed it.
func MergeSwapLog(outer dex.DexEvent, base64Data string) dex.DexEvent {
	ev, ok := outer.(*SwapEvent)
	if !ok {
		return outer
	}
	logData, ok := decodeSwapLog(base64Data)
	if !ok {
		return outer
	}
	ev.InputVaultBefore = logData.inputVaultBefore
	ev.OutputVaultBefore = logData.outputVaultBefore
	ev.InputAmount = logData.inputAmount
	ev.OutputAmount = logData.outputAmount
	ev.InputTransferFee = logData.inputTransferFee
	ev.OutputTransferFee = logData.outputTransferFee
	ev.BaseInput = logData.baseInput
	ev.TradeFee = logData.tradeFee
	ev.CreatorFee = logData.creatorFee
	ev.CreatorFeeOnInput = logData.creatorFeeOnInput
	return ev
}

// ParseInnerInstruction exists for dispatcher symmetry; Raydium CPMM never
// emits a self-CPI inner event.
func ParseInnerInstruction(_ [16]byte, _ []byte, outer dex.DexEvent) dex.DexEvent {
	return outer
}
