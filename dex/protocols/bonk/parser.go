package bonk

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

func readU8(data []byte, off int) (uint8, bool) {
	if off < 0 || off >= len(data) {
		return 0, false
	}
	return data[off], true
}

func readU32LE(data []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[off : off+4]), true
}

func readU64LE(data []byte, off int) (uint64, bool) {
	if off < 0 || off+8 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[off : off+8]), true
}

func accountAt(accounts []common.Address, i int) common.Address {
	if i < 0 || i >= len(accounts) {
		return common.Address{}
	}
	return accounts[i]
}

// parseMintParams replicates parse_mint_params: 1-byte decimals followed by
// three Borsh length-prefixed strings.
func parseMintParams(data []byte, offset *int) (MintParams, bool) {
	decimals, ok := readU8(data, *offset)
	if !ok {
		return MintParams{}, false
	}
	*offset++

	readStr := func() (string, bool) {
		n, ok := readU32LE(data, *offset)
		if !ok {
			return "", false
		}
		*offset += 4
		end := *offset + int(n)
		if end > len(data) {
			return "", false
		}
		s := string(data[*offset:end])
		*offset = end
		return s, true
	}
	name, ok := readStr()
	if !ok {
		return MintParams{}, false
	}
	symbol, ok := readStr()
	if !ok {
		return MintParams{}, false
	}
	uri, ok := readStr()
	if !ok {
		return MintParams{}, false
	}
	return MintParams{Decimals: decimals, Name: name, Symbol: symbol, Uri: uri}, true
}

// parseCurveParams replicates parse_curve_params: a 1-byte variant tag
// (0=Constant, 1=Fixed, 2=Linear) followed by that variant's fields.
func parseCurveParams(data []byte, offset *int) (CurveParams, bool) {
	tag, ok := readU8(data, *offset)
	if !ok {
		return CurveParams{}, false
	}
	*offset++

	switch tag {
	case 0:
		supply, ok1 := readU64LE(data, *offset)
		totalBaseSell, ok2 := readU64LE(data, *offset+8)
		totalQuote, ok3 := readU64LE(data, *offset+16)
		migrateType, ok4 := readU8(data, *offset+24)
		if !(ok1 && ok2 && ok3 && ok4) {
			return CurveParams{}, false
		}
		*offset += 25
		return CurveParams{Kind: "constant", Supply: supply, TotalBaseSell: totalBaseSell, TotalQuoteFundRaising: totalQuote, MigrateType: migrateType}, true
	case 1, 2:
		supply, ok1 := readU64LE(data, *offset)
		totalQuote, ok2 := readU64LE(data, *offset+8)
		migrateType, ok3 := readU8(data, *offset+16)
		if !(ok1 && ok2 && ok3) {
			return CurveParams{}, false
		}
		*offset += 17
		kind := "fixed"
		if tag == 2 {
			kind = "linear"
		}
		return CurveParams{Kind: kind, Supply: supply, TotalQuoteFundRaising: totalQuote, MigrateType: migrateType}, true
	default:
		return CurveParams{}, false
	}
}

func parseVestingParams(data []byte, offset *int) (VestingParams, bool) {
	locked, ok1 := readU64LE(data, *offset)
	cliff, ok2 := readU64LE(data, *offset+8)
	unlock, ok3 := readU64LE(data, *offset+16)
	if !(ok1 && ok2 && ok3) {
		return VestingParams{}, false
	}
	*offset += 24
	return VestingParams{TotalLockedAmount: locked, CliffPeriod: cliff, UnlockPeriod: unlock}, true
}

// IsSwapInstruction reports whether disc names a trade variant.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == BuyExactInIx || disc == BuyExactOutIx || disc == SellExactInIx || disc == SellExactOutIx
}

// ParseAccount decodes a gRPC account-snapshot update by its own 8-byte
// discriminator prefix, grounded on original_source/.../bonk/types.rs's
// pool_state_parser/global_config_parser/platform_config_parser.
func ParseAccount(acc dex.AccountInfo, meta dex.EventMetadata) dex.DexEvent {
	if len(acc.Data) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], acc.Data[:8])
	switch disc {
	case PoolStateAccountDisc:
		meta.EventType = dex.EventBonkPoolStateAccount
		var ps PoolState
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&ps); err != nil {
			return nil
		}
		return &PoolStateAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			PoolState: ps,
		}
	case GlobalConfigAccountDisc:
		meta.EventType = dex.EventBonkGlobalConfigAccount
		var cfg GlobalConfigAccount
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&cfg); err != nil {
			return nil
		}
		return &GlobalConfigAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			GlobalConfig: cfg,
		}
	case PlatformConfigAccountDisc:
		meta.EventType = dex.EventBonkPlatformConfigAccount
		var cfg PlatformConfigAccount
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&cfg); err != nil {
			return nil
		}
		return &PlatformConfigAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			PlatformConfig: cfg,
		}
	default:
		return nil
	}
}

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator, grounded on parse_bonk_instruction_data.
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case BuyExactInIx:
		return parseTrade(data, accounts, meta, dex.EventBonkBuyExactIn, TradeDirectionBuy, true)
	case BuyExactOutIx:
		return parseTrade(data, accounts, meta, dex.EventBonkBuyExactOut, TradeDirectionBuy, false)
	case SellExactInIx:
		return parseTrade(data, accounts, meta, dex.EventBonkSellExactIn, TradeDirectionSell, true)
	case SellExactOutIx:
		return parseTrade(data, accounts, meta, dex.EventBonkSellExactOut, TradeDirectionSell, false)
	case InitializeIx:
		return parseInitialize(data, accounts, meta, dex.EventBonkInitialize, false)
	case InitializeV2Ix:
		return parseInitialize(data, accounts, meta, dex.EventBonkInitializeV2, true)
	case InitializeWithToken2022Ix:
		return parseInitialize(data, accounts, meta, dex.EventBonkInitializeWithToken2022, true)
	case MigrateToAmmIx:
		return parseMigrateToAmm(data, accounts, meta)
	case MigrateToCpSwapIx:
		return parseMigrateToCpswap(accounts, meta)
	default:
		return nil
	}
}

func parseTrade(data []byte, accounts []common.Address, meta dex.EventMetadata, et dex.EventType, dir TradeDirection, exactIn bool) dex.DexEvent {
	meta.EventType = et
	if len(data) < 16 || len(accounts) < 18 {
		return nil
	}
	first, _ := readU64LE(data, 0)
	second, _ := readU64LE(data, 8)
	shareFeeRate, _ := readU64LE(data, 16)

	ev := &TradeEvent{
		Metadata:                  meta,
		ShareFeeRate:              shareFeeRate,
		Payer:                     accounts[0],
		GlobalConfig:              accounts[2],
		PlatformConfig:            accounts[3],
		PoolState:                 accounts[4],
		UserBaseToken:             accounts[5],
		UserQuoteToken:            accounts[6],
		BaseVault:                 accounts[7],
		QuoteVault:                accounts[8],
		BaseTokenMint:             accounts[9],
		QuoteTokenMint:            accounts[10],
		BaseTokenProgram:          accounts[11],
		QuoteTokenProgram:         accounts[12],
		SystemProgram:             accounts[15],
		PlatformAssociatedAccount: accounts[16],
		CreatorAssociatedAccount:  accounts[17],
		TradeDirection:            dir,
		ExactIn:                   exactIn,
	}
	if exactIn {
		ev.AmountIn, ev.MinimumAmountOut = first, second
	} else {
		ev.AmountOut, ev.MaximumAmountIn = first, second
	}
	return ev
}

func parseInitialize(data []byte, accounts []common.Address, meta dex.EventMetadata, et dex.EventType, hasFeeOn bool) dex.DexEvent {
	meta.EventType = et
	if len(data) < 24 || len(accounts) < 10 {
		return nil
	}
	offset := 0
	mintParam, ok := parseMintParams(data, &offset)
	if !ok {
		return nil
	}
	curveParam, ok := parseCurveParams(data, &offset)
	if !ok {
		return nil
	}
	vestingParam, ok := parseVestingParams(data, &offset)
	if !ok {
		return nil
	}
	ev := &PoolCreateEvent{
		Metadata:      meta,
		Payer:         accounts[0],
		Creator:       accounts[1],
		GlobalConfig:  accounts[2],
		PlatformConfig: accounts[3],
		PoolState:     accounts[5],
		BaseMint:      accounts[6],
		QuoteMint:     accounts[7],
		BaseVault:     accounts[8],
		QuoteVault:    accounts[9],
		BaseMintParam: mintParam,
		CurveParam:    curveParam,
		VestingParam:  vestingParam,
	}
	if hasFeeOn {
		if b, ok := readU8(data, offset); ok {
			fee := AmmFeeOnBothToken
			if b == 0 {
				fee = AmmFeeOnQuoteToken
			}
			ev.AmmFeeOn = &fee
		}
	}
	return ev
}

func parseMigrateToAmm(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventBonkMigrateToAmm
	if len(data) < 17 || len(accounts) < 32 {
		return nil
	}
	baseLotSize, _ := readU64LE(data, 0)
	quoteLotSize, _ := readU64LE(data, 8)
	nonce, _ := readU8(data, 16)
	return &MigrateToAmmEvent{
		Metadata:               meta,
		BaseLotSize:            baseLotSize,
		QuoteLotSize:           quoteLotSize,
		MarketVaultSignerNonce: nonce,
		Payer:                  accounts[0],
		BaseMint:               accounts[1],
		QuoteMint:              accounts[2],
		OpenbookProgram:        accounts[3],
		Market:                 accounts[4],
		AmmPool:                accounts[13],
		AmmConfig:              accounts[20],
		PoolState:              accounts[23],
		GlobalConfig:           accounts[24],
		BaseVault:              accounts[25],
		QuoteVault:             accounts[26],
	}
}

func parseMigrateToCpswap(accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventBonkMigrateToCpSwap
	if len(accounts) < 21 {
		return nil
	}
	return &MigrateToCpswapEvent{
		Metadata:       meta,
		Payer:          accounts[0],
		BaseMint:       accounts[1],
		QuoteMint:      accounts[2],
		PlatformConfig: accounts[3],
		CpswapProgram:  accounts[4],
		CpswapPool:     accounts[5],
		PoolState:      accounts[17],
		GlobalConfig:   accounts[18],
		BaseVault:      accounts[19],
		QuoteVault:     accounts[20],
	}
}

// ParseInnerInstruction merges a self-CPI "event" log onto outer, grounded
// on parse_bonk_inner_instruction_data. A trade-direction mismatch against
// the already-known instruction kind is treated as a decode failure, same
// as parse_trade_inner_instruction's explicit direction check.
func ParseInnerInstruction(disc [16]byte, data []byte, outer dex.DexEvent) dex.DexEvent {
	switch disc {
	case TradeEventDisc:
		return mergeTrade(data, outer)
	case PoolCreateEventDisc:
		return mergePoolCreate(data, outer)
	default:
		return outer
	}
}

const tradeEventLogSize = 32 + 8*13 + 1 + 1 + 1

func mergeTrade(data []byte, outer dex.DexEvent) dex.DexEvent {
	if len(data) < tradeEventLogSize {
		return outer
	}
	ev, ok := outer.(*TradeEvent)
	if !ok {
		ev = &TradeEvent{}
	}
	off := 0
	var pool common.Address
	pool.SetBytes(data[off : off+32])
	off += 32
	vals := make([]uint64, 13)
	for i := range vals {
		vals[i], _ = readU64LE(data, off)
		off += 8
	}
	dir, _ := readU8(data, off)
	off++
	status, _ := readU8(data, off)
	off++
	exactIn, _ := readU8(data, off)

	direction := TradeDirection(dir)
	expectBuy := ev.Metadata.EventType == dex.EventBonkBuyExactIn || ev.Metadata.EventType == dex.EventBonkBuyExactOut
	expectSell := ev.Metadata.EventType == dex.EventBonkSellExactIn || ev.Metadata.EventType == dex.EventBonkSellExactOut
	if expectBuy && direction != TradeDirectionBuy {
		return outer
	}
	if expectSell && direction != TradeDirectionSell {
		return outer
	}

	ev.PoolState = pool
	ev.TotalBaseSell = vals[0]
	ev.VirtualBase = vals[1]
	ev.VirtualQuote = vals[2]
	ev.RealBaseBefore = vals[3]
	ev.RealQuoteBefore = vals[4]
	ev.RealBaseAfter = vals[5]
	ev.RealQuoteAfter = vals[6]
	ev.AmountIn = vals[7]
	ev.AmountOut = vals[8]
	ev.ProtocolFee = vals[9]
	ev.PlatformFee = vals[10]
	ev.CreatorFee = vals[11]
	ev.ShareFee = vals[12]
	ev.TradeDirection = direction
	ev.PoolStatus = PoolStatus(status)
	ev.ExactIn = exactIn != 0
	return ev
}

// PoolCreateEvent's log carries three variable-length strings inside
// MintParams, so unlike the fixed trade/migrate logs it has no constant
// byte size; only a lower bound (three pubkeys) is enforced up front.
func mergePoolCreate(data []byte, outer dex.DexEvent) dex.DexEvent {
	if len(data) < 96 {
		return outer
	}
	payload := data
	ev, ok := outer.(*PoolCreateEvent)
	if !ok {
		ev = &PoolCreateEvent{}
	}
	off := 0
	if off+96 > len(payload) {
		return outer
	}
	var pool, creator, config common.Address
	pool.SetBytes(payload[off : off+32])
	off += 32
	creator.SetBytes(payload[off : off+32])
	off += 32
	config.SetBytes(payload[off : off+32])
	off += 32

	mintParam, ok := parseMintParams(payload, &off)
	if !ok {
		return outer
	}
	curveParam, ok := parseCurveParams(payload, &off)
	if !ok {
		return outer
	}
	vestingParam, ok := parseVestingParams(payload, &off)
	if !ok {
		return outer
	}

	var feeOn *AmmFeeOn
	if hasFlag, ok := readU8(payload, off); ok {
		off++
		if hasFlag == 1 {
			if tag, ok := readU8(payload, off); ok {
				off++
				v := AmmFeeOn(tag)
				feeOn = &v
			}
		}
	}

	ev.PoolState, ev.Creator, ev.Config = pool, creator, config
	ev.BaseMintParam, ev.CurveParam, ev.VestingParam = mintParam, curveParam, vestingParam
	ev.AmmFeeOn = feeOn
	return ev
}
