package common

var (
	SystemProgramID                    = StrToAddress("11111111111111111111111111111111")
	ConfigProgramID                    = StrToAddress("Config1111111111111111111111111111111111111")
	StakeProgramID                     = StrToAddress("Stake11111111111111111111111111111111111111")
	VoteProgramID                      = StrToAddress("Vote111111111111111111111111111111111111111")
	BPFLoaderProgramID                 = StrToAddress("BPFLoader1111111111111111111111111111111111")
	Secp256k1ProgramID                 = StrToAddress("KeccakSecp256k11111111111111111111111111111")
	TokenProgramID                     = StrToAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	MemoProgramID                      = StrToAddress("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	SPLAssociatedTokenAccountProgramID = StrToAddress("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	SPLNameServiceProgramID            = StrToAddress("namesLPneVptA9Z5rqUDD9tMTWEJwofgaYwp8cawRkX")
	MetaplexTokenMetaProgramID         = StrToAddress("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	ComputeBudgetProgramID             = StrToAddress("ComputeBudget111111111111111111111111111111")
	AddressLookupTableProgramID        = StrToAddress("AddressLookupTab1e1111111111111111111111111")
	Token2022ProgramID                 = StrToAddress("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	BPFLoaderUpgradeableProgramID      = StrToAddress("BPFLoaderUpgradeab1e11111111111111111111111")
)

// DEX program ids recognized by the dispatcher (C2). One entry per
// supported Protocol.
var (
	PumpFunProgramID       = StrToAddress("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	PumpSwapProgramID      = StrToAddress("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	BonkProgramID          = StrToAddress("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")
	RaydiumAmmV4ProgramID  = StrToAddress("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	RaydiumCLMMProgramID   = StrToAddress("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	RaydiumCPMMProgramID   = StrToAddress("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	WhirlpoolProgramID     = StrToAddress("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	MeteoraDlmmProgramID   = StrToAddress("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
)

// WSOLMint is the canonical wrapped-SOL mint address, used by the swap-data
// enricher to recognize native-SOL legs of a trade.
var WSOLMint = StrToAddress("So11111111111111111111111111111111111111112")
