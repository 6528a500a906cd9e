package common

var (
	SysVarPubkey                 = StrToAddress("Sysvar1111111111111111111111111111111111111")
	SysVarClockPubkey            = StrToAddress("SysvarC1ock11111111111111111111111111111111")
	SysVarRecentBlockhashsPubkey = StrToAddress("SysvarRecentB1ockHashes11111111111111111111")
	SysVarRentPubkey             = StrToAddress("SysvarRent111111111111111111111111111111111")
	SysVarRewardsPubkey          = StrToAddress("SysvarRewards111111111111111111111111111111")
	SysVarStakeHistoryPubkey     = StrToAddress("SysvarStakeHistory1111111111111111111111111")
	SysVarInstructionsPubkey     = StrToAddress("Sysvar1nstructions1111111111111111111111111")
	SysVarSlotHashesPubkey       = StrToAddress("SysvarS1otHashes111111111111111111111111111")
	StakeConfigPubkey            = StrToAddress("StakeConfig11111111111111111111111111111111")
)
