package meteoradlmm

// Instruction discriminators, Anchor's sha256("global:<method>")[:8].
// SwapIx is identical to every other protocol's "swap" method (the hash
// depends only on the method name), grounded on
// original_source/.../meteora_dlmm/parser.rs's SWAP_IX/SWAP2_IX routing;
// the events.rs retrieved for this protocol lists only its two account
// discriminators, so the instruction and event bytes below are
// recomputed from the Anchor hash scheme rather than copied verbatim.
var (
	SwapIx  = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	Swap2Ix = [8]byte{65, 75, 63, 76, 235, 91, 91, 136}
)

// Inner "self-CPI" event discriminators: 16 bytes = the fixed 8-byte Anchor
// event-log prefix (e4 45 a5 2e 51 cb 9a 1d) followed by the 8-byte
// sha256("event:<Name>")[:8] event id.
var (
	SwapEventDisc  = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 81, 108, 227, 190, 205, 208, 10, 196}
	Swap2EventDisc = [16]byte{228, 69, 165, 46, 81, 203, 154, 29, 49, 22, 214, 181, 97, 215, 44, 123}
)
