package pumpfun

import (
	"encoding/binary"

	"github.com/cielu/solana-dex-streamer/common"
	"github.com/cielu/solana-dex-streamer/dex"
	"github.com/cielu/solana-dex-streamer/pkg/encodbin"
)

func accountAt(accounts []common.Address, i int) common.Address {
	if i < 0 || i >= len(accounts) {
		return common.Address{}
	}
	return accounts[i]
}

func readLenPrefixedString(data []byte, offset int) (string, int, bool) {
	if offset+4 > len(data) {
		return "", offset, false
	}
	n := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if offset+n > len(data) {
		return "", offset, false
	}
	return string(data[offset : offset+n]), offset + n, true
}

// ParseInstruction routes an outer-instruction payload by its 8-byte
// discriminator, grounded on parse_pumpfun_instruction_data.
func ParseInstruction(disc [8]byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case CreateTokenIx:
		return parseCreateToken(data, accounts, meta)
	case CreateV2TokenIx:
		return parseCreateV2Token(data, accounts, meta)
	case BuyIx:
		return parseBuy(data, accounts, meta)
	case SellIx:
		return parseSell(data, accounts, meta)
	case MigrateIx:
		return parseMigrate(accounts, meta)
	default:
		return nil
	}
}

// IsSwapInstruction reports whether disc names a swap variant.
func IsSwapInstruction(disc [8]byte) bool {
	return disc == BuyIx || disc == SellIx
}

// ParseAccount decodes a gRPC account-snapshot update by its own 8-byte
// discriminator prefix, grounded on original_source/.../pumpfun/types.rs's
// bonding_curve_parser/global_parser.
func ParseAccount(acc dex.AccountInfo, meta dex.EventMetadata) dex.DexEvent {
	if len(acc.Data) < 8 {
		return nil
	}
	var disc [8]byte
	copy(disc[:], acc.Data[:8])
	switch disc {
	case BondingCurveAccountDisc:
		meta.EventType = dex.EventPumpFunBondingCurveAccount
		var curve BondingCurve
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&curve); err != nil {
			return nil
		}
		return &BondingCurveAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			BondingCurve: curve,
		}
	case GlobalAccountDisc:
		meta.EventType = dex.EventPumpFunGlobalAccount
		var g Global
		if err := encodbin.NewBinDecoder(acc.Data[8:]).Decode(&g); err != nil {
			return nil
		}
		return &GlobalAccountEvent{
			Metadata: meta, Pubkey: acc.Pubkey, Executable: acc.Executable,
			Lamports: acc.Lamports, Owner: acc.Owner, RentEpoch: acc.RentEpoch,
			Global: g,
		}
	default:
		return nil
	}
}

func parseCreateToken(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpFunCreateToken
	if len(data) < 16 || len(accounts) < 11 {
		return nil
	}
	name, off, ok := readLenPrefixedString(data, 0)
	if !ok {
		return nil
	}
	symbol, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return nil
	}
	uri, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return nil
	}
	var creator common.Address
	if off+32 <= len(data) {
		creator.SetBytes(data[off : off+32])
	}
	return &CreateTokenEvent{
		Metadata:     meta,
		Name:         name,
		Symbol:       symbol,
		Uri:          uri,
		Creator:      creator,
		Mint:         accounts[0],
		MintAuthority: accounts[1],
		BondingCurve: accounts[2],
		AssociatedBondingCurve: accounts[3],
		User:         accounts[7],
	}
}

func parseCreateV2Token(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpFunCreateV2Token
	if len(data) < 16 || len(accounts) < 11 {
		return nil
	}
	name, off, ok := readLenPrefixedString(data, 0)
	if !ok {
		return nil
	}
	symbol, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return nil
	}
	uri, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return nil
	}
	var creator common.Address
	if off+32 <= len(data) {
		creator.SetBytes(data[off : off+32])
	}
	return &CreateV2TokenEvent{
		Metadata:     meta,
		Name:         name,
		Symbol:       symbol,
		Uri:          uri,
		Creator:      creator,
		Mint:         accounts[0],
		MintAuthority: accounts[1],
		BondingCurve: accounts[2],
		AssociatedBondingCurve: accounts[3],
		User:         accounts[7],
	}
}

func parseBuy(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpFunBuy
	if len(data) < 16 || len(accounts) < 16 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	maxSolCost := binary.LittleEndian.Uint64(data[8:16])
	return &TradeEvent{
		Metadata:               meta,
		Global:                 accounts[0],
		FeeRecipient:           accounts[1],
		Mint:                   accounts[2],
		BondingCurve:           accounts[3],
		AssociatedBondingCurve: accounts[4],
		AssociatedUser:         accounts[5],
		User:                   accounts[6],
		SystemProgram:          accounts[7],
		TokenProgram:           accounts[8],
		CreatorVault:           accounts[9],
		EventAuthority:         accounts[10],
		Program:                accounts[11],
		GlobalVolumeAccumulator: accounts[12],
		UserVolumeAccumulator:   accounts[13],
		FeeConfig:               accounts[14],
		FeeProgram:              accounts[15],
		MaxSolCost:              maxSolCost,
		Amount:                  amount,
		IsBuy:                   true,
	}
}

func parseSell(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpFunSell
	if len(data) < 16 || len(accounts) < 14 {
		return nil
	}
	amount := binary.LittleEndian.Uint64(data[0:8])
	minSolOutput := binary.LittleEndian.Uint64(data[8:16])
	return &TradeEvent{
		Metadata:               meta,
		Global:                 accounts[0],
		FeeRecipient:           accounts[1],
		Mint:                   accounts[2],
		BondingCurve:           accounts[3],
		AssociatedBondingCurve: accounts[4],
		AssociatedUser:         accounts[5],
		User:                   accounts[6],
		SystemProgram:          accounts[7],
		CreatorVault:           accounts[8],
		TokenProgram:           accounts[9],
		EventAuthority:         accounts[10],
		Program:                accounts[11],
		FeeConfig:              accounts[12],
		FeeProgram:             accounts[13],
		MinSolOutput:           minSolOutput,
		Amount:                 amount,
		IsBuy:                  false,
	}
}

func parseMigrate(accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventPumpFunMigrate
	if len(accounts) < 24 {
		return nil
	}
	return &MigrateEvent{
		Metadata:                 meta,
		Global:                   accounts[0],
		WithdrawAuthority:        accounts[1],
		Mint:                     accounts[2],
		BondingCurve:             accounts[3],
		AssociatedBondingCurve:   accounts[4],
		User:                     accounts[5],
		SystemProgram:            accounts[6],
		TokenProgram:             accounts[7],
		PumpAmm:                  accounts[8],
		Pool:                     accounts[9],
		PoolAuthority:            accounts[10],
		PoolAuthorityMintAccount: accounts[11],
		PoolAuthorityWsolAccount: accounts[12],
		AmmGlobalConfig:          accounts[13],
		WsolMint:                 accounts[14],
		LpMint:                   accounts[15],
		UserPoolTokenAccount:     accounts[16],
		PoolBaseTokenAccount:     accounts[17],
		PoolQuoteTokenAccount:    accounts[18],
		Token2022Program:         accounts[19],
		AssociatedTokenProgram:   accounts[20],
		PumpAmmEventAuthority:    accounts[21],
		EventAuthority:           accounts[22],
		Program:                  accounts[23],
	}
}

// ParseInnerInstruction merges a self-CPI "event" log onto outer, grounded
// on parse_pumpfun_inner_instruction_data. The trade-event log never sets
// its own EventType (Buy vs Sell is only known from the outer instruction),
// matching the Rust comment at parse_trade_inner_instruction.
func ParseInnerInstruction(disc [16]byte, data []byte, outer dex.DexEvent) dex.DexEvent {
	switch disc {
	case CreateTokenEventDisc:
		return decodeCreateV2TokenLog(data, outer)
	case TradeEventDisc:
		return mergeTrade(data, outer)
	case CompletePumpAmmMigrationEventDisc:
		return mergeMigrate(data, outer)
	default:
		return outer
	}
}

// decodeCreateV2TokenLog replicates pumpfun_create_v2_token_event_log_decode:
// three length-prefixed strings, four pubkeys, five u64s, then an optional
// trailing token_program (32 bytes) + is_mayhem_mode (1 byte) pair.
func decodeCreateV2TokenLog(data []byte, outer dex.DexEvent) dex.DexEvent {
	off := 0
	name, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return outer
	}
	symbol, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return outer
	}
	uri, off, ok := readLenPrefixedString(data, off)
	if !ok {
		return outer
	}
	if off+32*4+8*5 > len(data) {
		return outer
	}
	var mint, bondingCurve, user, creator common.Address
	mint.SetBytes(data[off : off+32])
	off += 32
	bondingCurve.SetBytes(data[off : off+32])
	off += 32
	user.SetBytes(data[off : off+32])
	off += 32
	creator.SetBytes(data[off : off+32])
	off += 32

	timestamp := int64(binary.LittleEndian.Uint64(data[off : off+8]))
	off += 8
	virtualTokenReserves := binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	virtualSolReserves := binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	realTokenReserves := binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	tokenTotalSupply := binary.LittleEndian.Uint64(data[off : off+8])
	off += 8

	var tokenProgram common.Address
	var mayhem bool
	if off+33 <= len(data) {
		tokenProgram.SetBytes(data[off : off+32])
		mayhem = data[off+32] == 1
	}

	ev, ok := outer.(*CreateV2TokenEvent)
	if !ok {
		ev = &CreateV2TokenEvent{}
	}
	ev.Name, ev.Symbol, ev.Uri = name, symbol, uri
	ev.Mint, ev.BondingCurve, ev.User, ev.Creator = mint, bondingCurve, user, creator
	ev.Timestamp = timestamp
	ev.VirtualTokenReserves, ev.VirtualSolReserves = virtualTokenReserves, virtualSolReserves
	ev.RealTokenReserves, ev.TokenTotalSupply = realTokenReserves, tokenTotalSupply
	ev.TokenProgram, ev.IsMayhemMode = tokenProgram, mayhem
	return ev
}

// mergeTrade decodes the fixed 250-byte TRADE_EVENT payload.
func mergeTrade(data []byte, outer dex.DexEvent) dex.DexEvent {
	const logSize = 250
	if len(data) < logSize {
		return outer
	}
	ev, ok := outer.(*TradeEvent)
	if !ok {
		ev = &TradeEvent{}
	}
	dec := encodbin.NewBinDecoder(data[:logSize])
	if err := dec.Decode(ev); err != nil {
		return outer
	}
	return ev
}

// mergeMigrate decodes the fixed 160-byte COMPLETE_PUMP_AMM_MIGRATION_EVENT
// payload.
func mergeMigrate(data []byte, outer dex.DexEvent) dex.DexEvent {
	const logSize = 160
	if len(data) < logSize {
		return outer
	}
	ev, ok := outer.(*MigrateEvent)
	if !ok {
		ev = &MigrateEvent{}
	}
	dec := encodbin.NewBinDecoder(data[:logSize])
	if err := dec.Decode(ev); err != nil {
		return outer
	}
	return ev
}
