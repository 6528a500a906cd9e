package pumpswap

import (
	"bytes"
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

func readU64LE(data []byte, offset int) (uint64, bool) {
	if offset < 0 || offset+8 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), true
}

func accountAt(accounts []common.Address, i int) common.Address {
	if i < 0 || i >= len(accounts) {
		return common.Address{}
	}
	return accounts[i]
}

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator prefix, filling the account fields from the instruction's
// own account list. Amount fields stay zero until a matching inner event
// merges in (see ParseInnerInstruction).
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case BuyIx, BuyExactQuoteInIx:
		return parseBuy(data, accounts, meta)
	case SellIx:
		return parseSell(data, accounts, meta)
	case CreatePoolIx:
		return parseCreatePool(data, accounts, meta)
	case DepositIx:
		return parseDeposit(data, accounts, meta)
	case WithdrawIx:
		return parseWithdraw(data, accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names a swap variant.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == BuyIx || disc == BuyExactQuoteInIx || disc == SellIx
}

// ParseAccount decodes a gRPC account-snapshot update by its own 8-byte
// discriminator prefix (distinct from the instruction/event discriminator
// spaces), grounded on original_source/.../pumpswap/types.rs's
// global_config_parser/pool_parser.
func ParseAccount(acc dex.AccountInfo, meta dex.EventMetadata) dex.DexEvent {
	if len(acc.Data) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], acc.Data[:8])
	switch disc {
	case GlobalConfigAccountDisc:
		meta.EventType = dex.EventPumpSwapGlobalConfigAccount
		var cfg GlobalConfig
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&cfg); err != nil {
			return nil
		}
		return &GlobalConfigAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			GlobalConfig: cfg,
		}
	case PoolAccountDisc:
		meta.EventType = dex.EventPumpSwapPoolAccount
		var pool Pool
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&pool); err != nil {
			return nil
		}
		return &PoolAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			Pool: pool,
		}
	default:
		return nil
	}
}

func parseBuy(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpSwapBuy
	if len(data) < 16 || len(accounts) < 13 {
		return nil
	}
	baseOut, _ := readU64LE(data, 0)
	maxQuoteIn, _ := readU64LE(data, 8)
	return &BuyEvent{
		Metadata:                         meta,
		BaseAmountOut:                    baseOut,
		MaxQuoteAmountIn:                 maxQuoteIn,
		Pool:                             accounts[0],
		User:                             accounts[1],
		BaseMint:                         accounts[3],
		QuoteMint:                        accounts[4],
		UserBaseTokenAccount:             accounts[5],
		UserQuoteTokenAccount:            accounts[6],
		PoolBaseTokenAccount:             accounts[7],
		PoolQuoteTokenAccount:            accounts[8],
		ProtocolFeeRecipient:             accounts[9],
		ProtocolFeeRecipientTokenAccount: accounts[10],
		BaseTokenProgram:                 accounts[11],
		QuoteTokenProgram:                accounts[12],
		CoinCreatorVaultAta:              accountAt(accounts, 17),
		CoinCreatorVaultAuthority:        accountAt(accounts, 18),
	}
}

func parseSell(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpSwapSell
	if len(data) < 16 || len(accounts) < 13 {
		return nil
	}
	baseIn, _ := readU64LE(data, 0)
	minQuoteOut, _ := readU64LE(data, 8)
	return &SellEvent{
		Metadata:                         meta,
		BaseAmountIn:                     baseIn,
		MinQuoteAmountOut:                minQuoteOut,
		Pool:                             accounts[0],
		User:                             accounts[1],
		BaseMint:                         accounts[3],
		QuoteMint:                        accounts[4],
		UserBaseTokenAccount:             accounts[5],
		UserQuoteTokenAccount:            accounts[6],
		PoolBaseTokenAccount:             accounts[7],
		PoolQuoteTokenAccount:            accounts[8],
		ProtocolFeeRecipient:             accounts[9],
		ProtocolFeeRecipientTokenAccount: accounts[10],
		BaseTokenProgram:                 accounts[11],
		QuoteTokenProgram:                accounts[12],
		CoinCreatorVaultAta:              accountAt(accounts, 17),
		CoinCreatorVaultAuthority:        accountAt(accounts, 18),
	}
}

func parseCreatePool(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpSwapCreatePool
	if len(data) < 18 || len(accounts) < 11 {
		return nil
	}
	index := binary.LittleEndian.Uint16(data[0:2])
	baseIn, _ := readU64LE(data, 2)
	quoteIn, _ := readU64LE(data, 10)
	var creator common.Address
	if len(data) >= 50 {
		creator.SetBytes(data[18:50])
	}
	return &CreatePoolEvent{
		Metadata:              meta,
		Index:                 index,
		BaseAmountIn:          baseIn,
		QuoteAmountIn:         quoteIn,
		Pool:                  accounts[0],
		Creator:               accounts[2],
		BaseMint:              accounts[3],
		QuoteMint:             accounts[4],
		LpMint:                accounts[5],
		UserBaseTokenAccount:  accounts[6],
		UserQuoteTokenAccount: accounts[7],
		UserPoolTokenAccount:  accounts[8],
		PoolBaseTokenAccount:  accounts[9],
		PoolQuoteTokenAccount: accounts[10],
		CoinCreator:           creator,
	}
}

func parseDeposit(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpSwapDeposit
	if len(data) < 24 || len(accounts) < 11 {
		return nil
	}
	lpOut, _ := readU64LE(data, 0)
	maxBaseIn, _ := readU64LE(data, 8)
	maxQuoteIn, _ := readU64LE(data, 16)
	return &DepositEvent{
		Metadata:              meta,
		LpTokenAmountOut:      lpOut,
		MaxBaseAmountIn:       maxBaseIn,
		MaxQuoteAmountIn:      maxQuoteIn,
		Pool:                  accounts[0],
		User:                  accounts[2],
		BaseMint:              accounts[3],
		QuoteMint:             accounts[4],
		UserBaseTokenAccount:  accounts[6],
		UserQuoteTokenAccount: accounts[7],
		UserPoolTokenAccount:  accounts[8],
		PoolBaseTokenAccount:  accounts[9],
		PoolQuoteTokenAccount: accounts[10],
	}
}

func parseWithdraw(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpSwapWithdraw
	if len(data) < 24 || len(accounts) < 11 {
		return nil
	}
	lpIn, _ := readU64LE(data, 0)
	minBaseOut, _ := readU64LE(data, 8)
	minQuoteOut, _ := readU64LE(data, 16)
	return &WithdrawEvent{
		Metadata:              meta,
		LpTokenAmountIn:       lpIn,
		MinBaseAmountOut:      minBaseOut,
		MinQuoteAmountOut:     minQuoteOut,
		Pool:                  accounts[0],
		User:                  accounts[2],
		BaseMint:              accounts[3],
		QuoteMint:             accounts[4],
		UserBaseTokenAccount:  accounts[6],
		UserQuoteTokenAccount: accounts[7],
		UserPoolTokenAccount:  accounts[8],
		PoolBaseTokenAccount:  accounts[9],
		PoolQuoteTokenAccount: accounts[10],
	}
}

// ParseInnerInstruction decodes a self-CPI "event" log by its 16-byte
// composite discriminator and merges it onto the outer event produced by
// ParseInstruction, preserving that outer event's account-derived fields.
func ParseInnerInstruction(disc [16]byte, data []byte, outer dex.DexEvent) dex.DexEvent {
	switch disc {
	case BuyEventDisc:
		ev, ok := outer.(*BuyEvent)
		if !ok {
			ev = &BuyEvent{}
		}
		return mergeBuy(ev, data)
	case SellEventDisc:
		ev, ok := outer.(*SellEvent)
		if !ok {
			ev = &SellEvent{}
		}
		return mergeSell(ev, data)
	case CreatePoolEventDisc:
		ev, ok := outer.(*CreatePoolEvent)
		if !ok {
			ev = &CreatePoolEvent{}
		}
		return mergeCreatePool(ev, data)
	case DepositEventDisc:
		ev, ok := outer.(*DepositEvent)
		if !ok {
			ev = &DepositEvent{}
		}
		return mergeDeposit(ev, data)
	case WithdrawEventDisc:
		ev, ok := outer.(*WithdrawEvent)
		if !ok {
			ev = &WithdrawEvent{}
		}
		return mergeWithdraw(ev, data)
	default:
		return outer
	}
}

// mergeBuy decodes the 385-byte BUY_EVENT log payload directly onto ev's
// non-skipped fields, leaving the `bin:"-"` account fields from the outer
// instruction untouched.
func mergeBuy(ev *BuyEvent, data []byte) dex.DexEvent {
	if len(data) < 385 {
		return ev
	}
	dec := encodbin.NewBinDecoder(data[:385])
	if err := dec.Decode(ev); err != nil {
		return ev
	}
	return ev
}

func mergeSell(ev *SellEvent, data []byte) dex.DexEvent {
	if len(data) < 352 {
		return ev
	}
	dec := encodbin.NewBinDecoder(data[:352])
	if err := dec.Decode(ev); err != nil {
		return ev
	}
	return ev
}

func mergeCreatePool(ev *CreatePoolEvent, data []byte) dex.DexEvent {
	if len(data) < 325 {
		return ev
	}
	dec := encodbin.NewBinDecoder(data[:325])
	if err := dec.Decode(ev); err != nil {
		return ev
	}
	return ev
}

func mergeDeposit(ev *DepositEvent, data []byte) dex.DexEvent {
	if len(data) < 248 {
		return ev
	}
	dec := encodbin.NewBinDecoder(data[:248])
	if err := dec.Decode(ev); err != nil {
		return ev
	}
	return ev
}

func mergeWithdraw(ev *WithdrawEvent, data []byte) dex.DexEvent {
	if len(data) < 248 {
		return ev
	}
	dec := encodbin.NewBinDecoder(data[:248])
	if err := dec.Decode(ev); err != nil {
		return ev
	}
	return ev
}

// MatchDiscriminator reports whether data is prefixed by disc, the common
// shape every protocol's dispatcher uses before slicing off the remainder
// as instruction payload.
func MatchDiscriminator(data []byte, disc []byte) bool {
	return len(data) >= len(disc) && bytes.Equal(data[:len(disc)], disc)
}
