package whirlpool

// Instruction discriminators are Anchor's sha256("global:<method>")[:8]. They
// depend only on the method name, not the program id, which is why these
// bytes are identical to Raydium CLMM's SWAP/SWAP_V2 (same method names,
// different program) — grounded on original_source/.../whirlpool/parser.rs
// referencing discriminators::SWAP / SWAP_V2 without the constants ever
// being listed in events.rs; recomputed here from the Anchor hash scheme.
var (
	SwapIx   = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	SwapV2Ix = [8]byte{43, 4, 237, 11, 26, 201, 30, 98}
)

// TradedEventLogDisc is sha256("event:Traded")[:8], the discriminator on the
// base64 "Program data:" log line Whirlpool emits after a swap.
var TradedEventLogDisc = [8]byte{225, 202, 73, 175, 147, 43, 160, 150}
