package raydiumammv4

// Instruction discriminators are a single byte, pre-dating Anchor's 8-byte
// sighash convention, grounded on original_source/.../raydium_amm_v4/events.rs.
const (
	SwapBaseInIx  byte = 9
	SwapBaseOutIx byte = 11
	DepositIx     byte = 3
	Initialize2Ix byte = 1
	WithdrawIx    byte = 4
)
