package raydiumammv4

import (
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

// ParseInstruction routes an outer-instruction payload by its single-byte
// discriminator. Raydium AMM V4 has no self-CPI inner events and no
// program-data log enrichment; every field a decoder produces comes from
// the instruction's own data and account list.
func ParseInstruction(disc byte, data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	switch disc {
	case SwapBaseInIx:
		return parseSwapBaseIn(data, accounts, meta)
	case SwapBaseOutIx:
		return parseSwapBaseOut(data, accounts, meta)
	case DepositIx:
		return parseDeposit(data, accounts, meta)
	case Initialize2Ix:
		return parseInitialize2(data, accounts, meta)
	case WithdrawIx:
		return parseWithdraw(data, accounts, meta)
	default:
		return nil
	}
}

// withTargetOrdersPlaceholder inserts a zero-value placeholder at index 4
// when the account list omits amm_target_orders, mirroring a pool
// configuration where that account is optional.
func withTargetOrdersPlaceholder(accounts []common.Address) ([]common.Address, bool) {
	if len(accounts) != 17 {
		return accounts, len(accounts) > 17
	}
	out := make([]common.Address, 0, 18)
	out = append(out, accounts[:4]...)
	out = append(out, common.Address{})
	out = append(out, accounts[4:]...)
	return out, false
}

func parseSwapBaseIn(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumAmmV4SwapBaseIn
	if len(data) < 16 || len(accounts) < 17 {
		return nil
	}
	amountIn, _ := readU64LE(data, 0)
	minOut, _ := readU64LE(data, 8)
	acc, hadTarget := withTargetOrdersPlaceholder(accounts)
	if len(acc) < 18 {
		return nil
	}
	return &SwapEvent{
		Metadata:                    meta,
		AmountIn:                    amountIn,
		MinimumAmountOut:            minOut,
		TokenProgram:                acc[0],
		Amm:                         acc[1],
		AmmAuthority:                acc[2],
		AmmOpenOrders:               acc[3],
		AmmTargetOrders:             acc[4],
		HasTargetOrders:             hadTarget,
		PoolCoinTokenAccount:        acc[5],
		PoolPcTokenAccount:          acc[6],
		SerumProgram:                acc[7],
		SerumMarket:                 acc[8],
		SerumBids:                   acc[9],
		SerumAsks:                   acc[10],
		SerumEventQueue:             acc[11],
		SerumCoinVaultAccount:       acc[12],
		SerumPcVaultAccount:         acc[13],
		SerumVaultSigner:            acc[14],
		UserSourceTokenAccount:      acc[15],
		UserDestinationTokenAccount: acc[16],
		UserSourceOwner:             acc[17],
	}
}

func parseSwapBaseOut(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumAmmV4SwapBaseOut
	if len(data) < 16 || len(accounts) < 17 {
		return nil
	}
	maxIn, _ := readU64LE(data, 0)
	amountOut, _ := readU64LE(data, 8)
	acc, hadTarget := withTargetOrdersPlaceholder(accounts)
	if len(acc) < 18 {
		return nil
	}
	return &SwapEvent{
		Metadata:                    meta,
		MaxAmountIn:                 maxIn,
		AmountOut:                   amountOut,
		TokenProgram:                acc[0],
		Amm:                         acc[1],
		AmmAuthority:                acc[2],
		AmmOpenOrders:               acc[3],
		AmmTargetOrders:             acc[4],
		HasTargetOrders:             hadTarget,
		PoolCoinTokenAccount:        acc[5],
		PoolPcTokenAccount:          acc[6],
		SerumProgram:                acc[7],
		SerumMarket:                 acc[8],
		SerumBids:                   acc[9],
		SerumAsks:                   acc[10],
		SerumEventQueue:             acc[11],
		SerumCoinVaultAccount:       acc[12],
		SerumPcVaultAccount:         acc[13],
		SerumVaultSigner:            acc[14],
		UserSourceTokenAccount:      acc[15],
		UserDestinationTokenAccount: acc[16],
		UserSourceOwner:             acc[17],
	}
}

func parseDeposit(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumAmmV4Deposit
	if len(data) < 24 || len(accounts) < 14 {
		return nil
	}
	maxCoin, _ := readU64LE(data, 0)
	maxPc, _ := readU64LE(data, 8)
	baseSide, _ := readU64LE(data, 16)
	return &DepositEvent{
		Metadata:             meta,
		MaxCoinAmount:        maxCoin,
		MaxPcAmount:          maxPc,
		BaseSide:             baseSide,
		TokenProgram:         accounts[0],
		Amm:                  accounts[1],
		AmmAuthority:         accounts[2],
		AmmOpenOrders:        accounts[3],
		AmmTargetOrders:      accounts[4],
		LpMintAddress:        accounts[5],
		PoolCoinTokenAccount: accounts[6],
		PoolPcTokenAccount:   accounts[7],
		SerumMarket:          accounts[8],
		UserCoinTokenAccount: accounts[9],
		UserPcTokenAccount:   accounts[10],
		UserLpTokenAccount:   accounts[11],
		UserOwner:            accounts[12],
		SerumEventQueue:      accounts[13],
	}
}

func parseInitialize2(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumAmmV4Initialize2
	if len(data) < 25 || len(accounts) < 21 {
		return nil
	}
	nonce := data[0]
	openTime, _ := readU64LE(data, 1)
	initPc, _ := readU64LE(data, 9)
	initCoin, _ := readU64LE(data, 17)
	return &Initialize2Event{
		Metadata:                  meta,
		Nonce:                     nonce,
		OpenTime:                  openTime,
		InitPcAmount:              initPc,
		InitCoinAmount:            initCoin,
		TokenProgram:              accounts[0],
		SplAssociatedTokenAccount: accounts[1],
		SystemProgram:             accounts[2],
		Rent:                      accounts[3],
		Amm:                       accounts[4],
		AmmAuthority:              accounts[5],
		AmmOpenOrders:             accounts[6],
		LpMint:                    accounts[7],
		CoinMint:                  accounts[8],
		PcMint:                    accounts[9],
		PoolCoinTokenAccount:      accounts[10],
		PoolPcTokenAccount:        accounts[11],
		PoolWithdrawQueue:         accounts[12],
		AmmTargetOrders:           accounts[13],
		PoolTempLp:                accounts[14],
		SerumProgram:              accounts[15],
		SerumMarket:               accounts[16],
		UserWallet:                accounts[17],
		UserTokenCoin:             accounts[18],
		UserTokenPc:               accounts[19],
		UserLpTokenAccount:        accounts[20],
	}
}

func parseWithdraw(data []byte, accounts []common.Address, meta dex.EventMetadata) dex.DexEvent {
	meta.EventType = dex.EventRaydiumAmmV4Withdraw
	if len(data) < 8 || len(accounts) < 22 {
		return nil
	}
	amount, _ := readU64LE(data, 0)
	return &WithdrawEvent{
		Metadata:               meta,
		Amount:                 amount,
		TokenProgram:           accounts[0],
		Amm:                    accounts[1],
		AmmAuthority:           accounts[2],
		AmmOpenOrders:          accounts[3],
		AmmTargetOrders:        accounts[4],
		LpMintAddress:          accounts[5],
		PoolCoinTokenAccount:   accounts[6],
		PoolPcTokenAccount:     accounts[7],
		PoolWithdrawQueue:      accounts[8],
		PoolTempLpTokenAccount: accounts[9],
		SerumProgram:           accounts[10],
		SerumMarket:            accounts[11],
		SerumCoinVaultAccount:  accounts[12],
		SerumPcVaultAccount:    accounts[13],
		SerumVaultSigner:       accounts[14],
		UserLpTokenAccount:     accounts[15],
		UserCoinTokenAccount:   accounts[16],
		UserPcTokenAccount:     accounts[17],
		UserOwner:              accounts[18],
		SerumEventQueue:        accounts[19],
		SerumBids:              accounts[20],
		SerumAsks:              accounts[21],
	}
}

// ParseInnerInstruction exists for dispatcher symmetry; Raydium AMM V4 never
// emits a self-CPI inner event.
func ParseInnerInstruction(_ [16]byte, _ []byte, outer dex.DexEvent) dex.DexEvent {
	return outer
}

// IsSwapInstruction reports whether disc names a swap variant. Raydium AMM
// V4 never needs the program-data index (no log enrichment), so the
// walker's lazy-build trigger never fires for it, but the symbol is kept
// for dispatcher symmetry with the Anchor-based protocols.
func IsSwapInstruction(disc byte) bool {
	return disc == SwapBaseInIx || disc == SwapBaseOutIx
}
