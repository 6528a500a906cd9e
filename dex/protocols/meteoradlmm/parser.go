package meteoradlmm

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
)

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator prefix.
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case SwapIx:
		return parseSwap(data, accounts, meta)
	case Swap2Ix:
		return parseSwap2(data, accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names a swap variant.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == SwapIx || disc == Swap2Ix
}

// swapPrefix is the variable-length leading account group every DLMM swap
// instruction carries, before the fixed user/token-program/event-authority
// suffix. bin_array_bitmap_extension and host_fee_in are both optional
// remaining_accounts-style slots; the original parser tells the two apart
// by the prefix's total length (8, 9 or 10 accounts). This port locates the
// suffix by scanning for the adjacent (event_authority, program) pair
// instead of replicating the PDA derivation the original uses to confirm
// event_authority: the program id is a known constant, so the account
// immediately preceding it is taken as event_authority without an
// independent PDA check.
type swapPrefix struct {
	lbPair                  common.Address
	binArrayBitmapExtension common.Address
	reserveX                common.Address
	reserveY                common.Address
	userTokenIn             common.Address
	userTokenOut            common.Address
	tokenXMint              common.Address
	tokenYMint              common.Address
	oracle                  common.Address
	hostFeeIn               common.Address
}

func parseSwapPrefix(accounts []common.Address) (swapPrefix, bool) {
	var p swapPrefix
	switch len(accounts) {
	case 8:
		p.lbPair, p.reserveX, p.reserveY = accounts[0], accounts[1], accounts[2]
		p.userTokenIn, p.userTokenOut = accounts[3], accounts[4]
		p.tokenXMint, p.tokenYMint, p.oracle = accounts[5], accounts[6], accounts[7]
	case 9:
		p.lbPair, p.binArrayBitmapExtension = accounts[0], accounts[1]
		p.reserveX, p.reserveY = accounts[2], accounts[3]
		p.userTokenIn, p.userTokenOut = accounts[4], accounts[5]
		p.tokenXMint, p.tokenYMint, p.oracle = accounts[6], accounts[7], accounts[8]
	case 10:
		p.lbPair, p.binArrayBitmapExtension = accounts[0], accounts[1]
		p.reserveX, p.reserveY = accounts[2], accounts[3]
		p.userTokenIn, p.userTokenOut = accounts[4], accounts[5]
		p.tokenXMint, p.tokenYMint, p.oracle = accounts[6], accounts[7], accounts[8]
		p.hostFeeIn = accounts[9]
	default:
		return swapPrefix{}, false
	}
	return p, true
}

// findEventAuthority returns the index of the account immediately before
// ProgramID, the event_authority/program pair every Anchor instruction's
// account list ends with once remaining_accounts are stripped off.
func findEventAuthority(accounts []common.Address) int {
	for i := 0; i+1 < len(accounts); i++ {
		if accounts[i+1] == ProgramID {
			return i
		}
	}
	return -1
}

func parseSwap(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventMeteoraDlmmSwap
	if len(data) < 16 {
		return nil
	}
	amountIn := binary.LittleEndian.Uint64(data[0:8])
	minOut := binary.LittleEndian.Uint64(data[8:16])

	ea := findEventAuthority(accounts)
	const trailing = 3 // user, token_x_program, token_y_program
	if ea < trailing {
		return nil
	}
	prefixEnd := ea - trailing
	prefix, ok := parseSwapPrefix(accounts[:prefixEnd])
	if !ok {
		return nil
	}
	return &SwapEvent{
		Metadata:                meta,
		AmountIn:                amountIn,
		MinAmountOut:            minOut,
		LbPair:                  prefix.lbPair,
		BinArrayBitmapExtension: prefix.binArrayBitmapExtension,
		ReserveX:                prefix.reserveX,
		ReserveY:                prefix.reserveY,
		UserTokenIn:             prefix.userTokenIn,
		UserTokenOut:            prefix.userTokenOut,
		TokenXMint:              prefix.tokenXMint,
		TokenYMint:              prefix.tokenYMint,
		Oracle:                  prefix.oracle,
		HostFeeIn:               prefix.hostFeeIn,
		User:                    accounts[prefixEnd],
		TokenXProgram:           accounts[prefixEnd+1],
		TokenYProgram:           accounts[prefixEnd+2],
		EventAuthority:          accounts[ea],
		Program:                 accounts[ea+1],
		RemainingAccounts:       append([]common.Address(nil), accounts[ea+2:]...),
	}
}

func parseSwap2(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventMeteoraDlmmSwap2
	if len(data) < 16 {
		return nil
	}
	amountIn := binary.LittleEndian.Uint64(data[0:8])
	minOut := binary.LittleEndian.Uint64(data[8:16])

	ea := findEventAuthority(accounts)
	const trailing = 4 // user, token_x_program, token_y_program, memo_program
	if ea < trailing {
		return nil
	}
	prefixEnd := ea - trailing
	prefix, ok := parseSwapPrefix(accounts[:prefixEnd])
	if !ok {
		return nil
	}
	return &Swap2Event{
		Metadata:                meta,
		AmountIn:                amountIn,
		MinAmountOut:            minOut,
		LbPair:                  prefix.lbPair,
		BinArrayBitmapExtension: prefix.binArrayBitmapExtension,
		ReserveX:                prefix.reserveX,
		ReserveY:                prefix.reserveY,
		UserTokenIn:             prefix.userTokenIn,
		UserTokenOut:            prefix.userTokenOut,
		TokenXMint:              prefix.tokenXMint,
		TokenYMint:              prefix.tokenYMint,
		Oracle:                  prefix.oracle,
		HostFeeIn:               prefix.hostFeeIn,
		User:                    accounts[prefixEnd],
		TokenXProgram:           accounts[prefixEnd+1],
		TokenYProgram:           accounts[prefixEnd+2],
		MemoProgram:             accounts[prefixEnd+3],
		EventAuthority:          accounts[ea],
		Program:                 accounts[ea+1],
		RemainingAccounts:       append([]common.Address(nil), accounts[ea+2:]...),
	}
}

// ParseInnerInstruction decodes the 16-byte composite self-CPI event
// discriminator (the 8-byte Anchor CPI-log prefix followed by the event's
// own 8-byte id) and merges its fields onto the matching outer swap event.
func ParseInnerInstruction(disc [16]byte, data []byte, outer dex.DexEvent) dex.DexEvent {
	switch disc {
	case SwapEventDisc:
		ev, ok := outer.(*SwapEvent)
		if !ok {
			return outer
		}
		applyInnerSwap(data, &ev.AmountOut, &ev.SwapForY, &ev.Fee, &ev.ProtocolFee,
			&ev.FeeBps, &ev.HostFee, &ev.StartBinID, &ev.EndBinID)
		return ev
	case Swap2EventDisc:
		ev, ok := outer.(*Swap2Event)
		if !ok {
			return outer
		}
		applyInnerSwap(data, &ev.AmountOut, &ev.SwapForY, &ev.Fee, &ev.ProtocolFee,
			&ev.FeeBps, &ev.HostFee, &ev.StartBinID, &ev.EndBinID)
		return ev
	default:
		return outer
	}
}

// applyInnerSwap unmarshals the fixed-layout tail of a Meteora DLMM swap
// CPI event: amount_out(8) swap_for_y(1) fee(8) protocol_fee(8) fee_bps(8)
// host_fee(8) start_bin_id(4) end_bin_id(4).
func applyInnerSwap(data []byte, amountOut *uint64, swapForY *bool, fee, protocolFee, feeBps, hostFee *uint64, startBin, endBin *int32) {
	if len(data) < 8+1+8+8+8+8+4+4 {
		return
	}
	off := 0
	*amountOut = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	*swapForY = data[off] != 0
	off++
	*fee = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	*protocolFee = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	*feeBps = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	*hostFee = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	*startBin = int32(binary.LittleEndian.Uint32(data[off : off+4]))
	off += 4
	*endBin = int32(binary.LittleEndian.Uint32(data[off : off+4]))
}
