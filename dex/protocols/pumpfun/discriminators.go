package pumpfun

// Instruction, inner-event, and account discriminators, grounded
// byte-for-byte on original_source/.../pumpfun/events.rs's discriminators
// module. BUY_IX and SELL_IX collide with PumpSwap's own Buy/Sell
// discriminators because Anchor sighashes only hash the method name
// ("global:buy"/"global:sell"), never the program id — dispatch always
// resolves the owning protocol from the instruction's program id first.
var (
	CreateTokenIx   = [8]byte{24, 30, 200, 40, 5, 28, 7, 119}
	CreateV2TokenIx = [8]byte{214, 144, 76, 236, 95, 139, 49, 180}
	BuyIx           = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	SellIx          = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}
	MigrateIx       = [8]byte{155, 234, 231, 146, 236, 158, 162, 30}
)

var (
	CreateTokenEventDisc          = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 27, 114, 169, 77, 222, 235, 99, 118}
	TradeEventDisc                = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 189, 219, 127, 211, 78, 230, 97, 238}
	CompletePumpAmmMigrationEventDisc = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 189, 233, 93, 185, 92, 148, 234, 148}
)

var (
	BondingCurveAccountDisc = [8]byte{23, 183, 248, 55, 96, 216, 172, 96}
	GlobalAccountDisc       = [8]byte{167, 232, 232, 177, 200, 108, 114, 127}
)
