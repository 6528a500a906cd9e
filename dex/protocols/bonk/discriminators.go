package bonk

// Discriminators, grounded byte-for-byte on
// original_source/.../bonk/events.rs's discriminators module. TradeEvent
// and GlobalConfigAccount collide with PumpFun/PumpSwap's own
// discriminators of the same name — Anchor sighashes only hash the
// struct/method name, so dispatch must resolve protocol from program id
// before matching on these bytes.
var (
	TradeEventDisc      = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 189, 219, 127, 211, 78, 230, 97, 238}
	PoolCreateEventDisc = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 151, 215, 226, 9, 118, 161, 115, 174}
)

var (
	BuyExactInIx             = [8]byte{250, 234, 13, 123, 213, 156, 19, 236}
	BuyExactOutIx            = [8]byte{24, 211, 116, 40, 105, 3, 153, 56}
	SellExactInIx            = [8]byte{149, 39, 222, 155, 211, 124, 152, 26}
	SellExactOutIx           = [8]byte{95, 200, 71, 34, 8, 9, 11, 166}
	InitializeIx             = [8]byte{175, 175, 109, 31, 13, 152, 155, 237}
	InitializeV2Ix           = [8]byte{67, 153, 175, 39, 218, 16, 38, 32}
	InitializeWithToken2022Ix = [8]byte{37, 190, 126, 222, 44, 154, 171, 17}
	MigrateToAmmIx           = [8]byte{207, 82, 192, 145, 254, 207, 145, 223}
	MigrateToCpSwapIx        = [8]byte{136, 92, 200, 103, 28, 218, 144, 140}
)

var (
	PoolStateAccountDisc     = [8]byte{247, 237, 227, 245, 215, 195, 222, 70}
	GlobalConfigAccountDisc  = [8]byte{149, 8, 156, 202, 160, 252, 176, 217}
	PlatformConfigAccountDisc = [8]byte{160, 78, 128, 0, 248, 83, 230, 160}
)
