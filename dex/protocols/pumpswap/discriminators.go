package pumpswap

// Instruction discriminators (8-byte Anchor sighash), grounded byte-for-byte
// on original_source/.../pumpswap/events.rs's discriminators module. BuyIx
// and BuyEvent are the two values spec.md's concrete Scenario #2 matches
// against.
var (
	BuyIx             = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	BuyExactQuoteInIx = [8]byte{198, 46, 21, 82, 180, 217, 232, 112}
	SellIx            = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}
	CreatePoolIx      = [8]byte{233, 146, 209, 142, 207, 104, 64, 188}
	DepositIx         = [8]byte{242, 35, 198, 137, 82, 225, 242, 182}
	WithdrawIx        = [8]byte{183, 18, 70, 156, 148, 109, 161, 34}
)

// Inner "self-CPI" event discriminators: 16 bytes = the fixed 8-byte Anchor
// event-log prefix (e4 45 a5 2e 51 cb 9a 1d) followed by the 8-byte event id.
var (
	BuyEventDisc        = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 103, 244, 82, 31, 44, 245, 119, 119}
	SellEventDisc       = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 62, 47, 55, 10, 165, 3, 220, 42}
	CreatePoolEventDisc = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 177, 49, 12, 210, 160, 118, 167, 116}
	DepositEventDisc    = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 120, 248, 61, 83, 31, 142, 107, 144}
	WithdrawEventDisc   = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 22, 9, 133, 26, 160, 44, 71, 192}
)

// Account discriminators (8-byte, for the account-snapshot decode path).
var (
	GlobalConfigAccountDisc = [8]byte{149, 8, 156, 202, 160, 252, 176, 217}
	PoolAccountDisc         = [8]byte{241, 154, 109, 4, 17, 177, 109, 188}
)
