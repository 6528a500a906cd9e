// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package dex

// EventType is the closed enumeration of concrete event kinds. It covers
// instruction-level events, account-level snapshots, and infrastructure
// events (compute budget, block meta).
type EventType uint16

const (
	EventUnknown EventType = iota

	// Infrastructure
	EventBlockMeta
	EventSetComputeUnitLimit
	EventSetComputeUnitPrice
	EventTokenAccount
	EventNonceAccount
	EventTokenInfo

	// PumpFun
	EventPumpFunCreateToken
	EventPumpFunCreateV2Token
	EventPumpFunBuy
	EventPumpFunSell
	EventPumpFunMigrate
	EventPumpFunBondingCurveAccount
	EventPumpFunGlobalAccount

	// PumpSwap
	EventPumpSwapBuy
	EventPumpSwapBuyExactQuoteIn
	EventPumpSwapSell
	EventPumpSwapCreatePool
	EventPumpSwapDeposit
	EventPumpSwapWithdraw
	EventPumpSwapGlobalConfigAccount
	EventPumpSwapPoolAccount

	// Bonk
	EventBonkBuyExactIn
	EventBonkBuyExactOut
	EventBonkSellExactIn
	EventBonkSellExactOut
	EventBonkInitialize
	EventBonkInitializeV2
	EventBonkInitializeWithToken2022
	EventBonkMigrateToAmm
	EventBonkMigrateToCpSwap
	EventBonkPoolStateAccount
	EventBonkGlobalConfigAccount
	EventBonkPlatformConfigAccount

	// Raydium AMM V4 (legacy, 1-byte discriminator)
	EventRaydiumAmmV4SwapBaseIn
	EventRaydiumAmmV4SwapBaseOut
	EventRaydiumAmmV4Deposit
	EventRaydiumAmmV4Withdraw
	EventRaydiumAmmV4Initialize2

	// Raydium CLMM
	EventRaydiumClmmSwap
	EventRaydiumClmmSwapV2
	EventRaydiumClmmCreatePool

	// Raydium CPMM
	EventRaydiumCpmmSwapBaseIn
	EventRaydiumCpmmSwapBaseOut
	EventRaydiumCpmmDeposit
	EventRaydiumCpmmWithdraw
	EventRaydiumCpmmInitialize

	// Whirlpool
	EventWhirlpoolSwap
	EventWhirlpoolSwapV2

	// Meteora DLMM
	EventMeteoraDlmmSwap
	EventMeteoraDlmmSwap2
)

func (t EventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

var eventTypeNames = map[EventType]string{
	EventBlockMeta:                   "BlockMeta",
	EventSetComputeUnitLimit:         "SetComputeUnitLimit",
	EventSetComputeUnitPrice:         "SetComputeUnitPrice",
	EventTokenAccount:                "TokenAccount",
	EventNonceAccount:                "NonceAccount",
	EventTokenInfo:                   "TokenInfo",
	EventPumpFunCreateToken:          "PumpFunCreateToken",
	EventPumpFunCreateV2Token:        "PumpFunCreateV2Token",
	EventPumpFunBuy:                  "PumpFunBuy",
	EventPumpFunSell:                 "PumpFunSell",
	EventPumpFunMigrate:              "PumpFunMigrate",
	EventPumpFunBondingCurveAccount:  "PumpFunBondingCurveAccount",
	EventPumpFunGlobalAccount:        "PumpFunGlobalAccount",
	EventPumpSwapBuy:                 "PumpSwapBuy",
	EventPumpSwapBuyExactQuoteIn:     "PumpSwapBuyExactQuoteIn",
	EventPumpSwapSell:                "PumpSwapSell",
	EventPumpSwapCreatePool:          "PumpSwapCreatePool",
	EventPumpSwapDeposit:             "PumpSwapDeposit",
	EventPumpSwapWithdraw:            "PumpSwapWithdraw",
	EventPumpSwapGlobalConfigAccount: "PumpSwapGlobalConfigAccount",
	EventPumpSwapPoolAccount:         "PumpSwapPoolAccount",
	EventBonkBuyExactIn:              "BonkBuyExactIn",
	EventBonkBuyExactOut:             "BonkBuyExactOut",
	EventBonkSellExactIn:             "BonkSellExactIn",
	EventBonkSellExactOut:            "BonkSellExactOut",
	EventBonkInitialize:              "BonkInitialize",
	EventBonkInitializeV2:            "BonkInitializeV2",
	EventBonkInitializeWithToken2022: "BonkInitializeWithToken2022",
	EventBonkMigrateToAmm:            "BonkMigrateToAmm",
	EventBonkMigrateToCpSwap:         "BonkMigrateToCpSwap",
	EventBonkPoolStateAccount:        "BonkPoolStateAccount",
	EventBonkGlobalConfigAccount:     "BonkGlobalConfigAccount",
	EventBonkPlatformConfigAccount:   "BonkPlatformConfigAccount",
	EventRaydiumAmmV4SwapBaseIn:      "RaydiumAmmV4SwapBaseIn",
	EventRaydiumAmmV4SwapBaseOut:     "RaydiumAmmV4SwapBaseOut",
	EventRaydiumAmmV4Deposit:         "RaydiumAmmV4Deposit",
	EventRaydiumAmmV4Withdraw:        "RaydiumAmmV4Withdraw",
	EventRaydiumAmmV4Initialize2:     "RaydiumAmmV4Initialize2",
	EventRaydiumClmmSwap:             "RaydiumClmmSwap",
	EventRaydiumClmmSwapV2:           "RaydiumClmmSwapV2",
	EventRaydiumClmmCreatePool:       "RaydiumClmmCreatePool",
	EventRaydiumCpmmSwapBaseIn:       "RaydiumCpmmSwapBaseIn",
	EventRaydiumCpmmSwapBaseOut:      "RaydiumCpmmSwapBaseOut",
	EventRaydiumCpmmDeposit:          "RaydiumCpmmDeposit",
	EventRaydiumCpmmWithdraw:         "RaydiumCpmmWithdraw",
	EventRaydiumCpmmInitialize:       "RaydiumCpmmInitialize",
	EventWhirlpoolSwap:               "WhirlpoolSwap",
	EventWhirlpoolSwapV2:             "WhirlpoolSwapV2",
	EventMeteoraDlmmSwap:             "MeteoraDlmmSwap",
	EventMeteoraDlmmSwap2:            "MeteoraDlmmSwap2",
}

// swapEventTypes is consulted by the swap-data enricher and the arbitrage
// marker to decide whether an event is a swap leg at all.
var swapEventTypes = map[EventType]bool{
	EventPumpFunBuy:              true,
	EventPumpFunSell:             true,
	EventPumpSwapBuy:             true,
	EventPumpSwapBuyExactQuoteIn: true,
	EventPumpSwapSell:            true,
	EventBonkBuyExactIn:          true,
	EventBonkBuyExactOut:         true,
	EventBonkSellExactIn:         true,
	EventBonkSellExactOut:        true,
	EventRaydiumAmmV4SwapBaseIn:  true,
	EventRaydiumAmmV4SwapBaseOut: true,
	EventRaydiumClmmSwap:         true,
	EventRaydiumClmmSwapV2:       true,
	EventRaydiumCpmmSwapBaseIn:   true,
	EventRaydiumCpmmSwapBaseOut:  true,
	EventWhirlpoolSwap:           true,
	EventWhirlpoolSwapV2:         true,
	EventMeteoraDlmmSwap:         true,
	EventMeteoraDlmmSwap2:        true,
}

// IsSwap reports whether t denotes a trade/swap leg, as opposed to a
// pool-management or infrastructure event.
func (t EventType) IsSwap() bool { return swapEventTypes[t] }
